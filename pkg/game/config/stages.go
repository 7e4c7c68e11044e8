package config

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/spawn"
)

var initialBuilders = map[string]func(hcl.Body) (generator.InitialBuilder, error){
	"rooms_and_corridors": func(body hcl.Body) (generator.InitialBuilder, error) {
		var args struct {
			MaxRooms int `hcl:"max_rooms"`
			MinSize  int `hcl:"min_size"`
			MaxSize  int `hcl:"max_size"`
		}
		if err := decodeArgs(body, &args); err != nil {
			return nil, err
		}
		return generator.NewRoomsAndCorridors(args.MaxRooms, args.MinSize, args.MaxSize), nil
	},
	"cellular_automata": func(body hcl.Body) (generator.InitialBuilder, error) {
		var args struct {
			Iterations       int     `hcl:"iterations"`
			FloorLikelihood  float64 `hcl:"floor_likelihood"`
			NeighborsForWall []int   `hcl:"neighbors_for_wall,optional"`
		}
		if err := decodeArgs(body, &args); err != nil {
			return nil, err
		}
		if args.NeighborsForWall == nil {
			args.NeighborsForWall = generator.DefaultNeighborsForWall
		}
		return generator.NewCellularAutomata(args.Iterations, args.FloorLikelihood, args.NeighborsForWall), nil
	},
	"bsp_rooms": func(body hcl.Body) (generator.InitialBuilder, error) {
		var args struct {
			MinNodeSize int `hcl:"min_node_size,optional"`
		}
		if err := decodeArgs(body, &args); err != nil {
			return nil, err
		}
		return generator.NewBSPRooms(args.MinNodeSize), nil
	},
	"line_walker": func(body hcl.Body) (generator.InitialBuilder, error) {
		var args struct {
			BranchProbability float64 `hcl:"branch_probability"`
			MinRun            int     `hcl:"min_run"`
			MaxRun            int     `hcl:"max_run"`
			ExtraWalks        int     `hcl:"extra_walks,optional"`
		}
		if err := decodeArgs(body, &args); err != nil {
			return nil, err
		}
		return generator.NewLineWalker(args.BranchProbability, args.MinRun, args.MaxRun, args.ExtraWalks), nil
	},
}

var modifiers = map[string]func(hcl.Body) (generator.Modifier, error){
	"arbitrary_starting_point": func(body hcl.Body) (generator.Modifier, error) {
		return generator.ArbitraryStartingPoint{}, decodeArgs(body, &struct{}{})
	},
	"cull_unreachable": func(body hcl.Body) (generator.Modifier, error) {
		return generator.CullUnreachable{}, decodeArgs(body, &struct{}{})
	},
	"general_objective_spawner": func(body hcl.Body) (generator.Modifier, error) {
		var args struct {
			Kind *string `hcl:"kind,optional"`
		}
		if err := decodeArgs(body, &args); err != nil {
			return nil, err
		}
		kind, err := kindOr(args.Kind, spawn.ObjectiveKind)
		if err != nil {
			return nil, err
		}
		return generator.GeneralObjectiveSpawner{Kind: kind}, nil
	},
	"voronoi_regions": func(body hcl.Body) (generator.Modifier, error) {
		var args struct {
			Count    int     `hcl:"count"`
			Distance *string `hcl:"distance,optional"`
		}
		if err := decodeArgs(body, &args); err != nil {
			return nil, err
		}
		v := generator.VoronoiRegions{Count: args.Count, Distance: generator.DistanceSquaredEuclidean}
		if args.Distance != nil {
			d, err := generator.ParseDistanceFunc(*args.Distance)
			if err != nil {
				return nil, err
			}
			v.Distance = d
		}
		return v, nil
	},
	"region_based_spawner": func(body hcl.Body) (generator.Modifier, error) {
		var args spawnerArgs
		if err := decodeArgs(body, &args); err != nil {
			return nil, err
		}
		s := generator.RegionBasedSpawner{MaxSpawns: args.MaxSpawns}
		table, err := args.table()
		if err != nil {
			return nil, err
		}
		s.Table = table
		return s, nil
	},
	"room_based_spawner": func(body hcl.Body) (generator.Modifier, error) {
		var args spawnerArgs
		if err := decodeArgs(body, &args); err != nil {
			return nil, err
		}
		s := generator.RoomBasedSpawner{MaxSpawns: args.MaxSpawns}
		table, err := args.table()
		if err != nil {
			return nil, err
		}
		s.Table = table
		return s, nil
	},
	"room_based_starting_position": func(body hcl.Body) (generator.Modifier, error) {
		var args selectionArgs
		if err := decodeArgs(body, &args); err != nil {
			return nil, err
		}
		room, pos, err := args.resolve()
		if err != nil {
			return nil, err
		}
		return generator.RoomBasedStartingPosition{Room: room, Position: pos}, nil
	},
	"room_based_objective_spawner": func(body hcl.Body) (generator.Modifier, error) {
		var args struct {
			Room     *string `hcl:"room,optional"`
			Position *string `hcl:"position,optional"`
			Kind     *string `hcl:"kind,optional"`
		}
		if err := decodeArgs(body, &args); err != nil {
			return nil, err
		}
		room, pos, err := selectionArgs{Room: args.Room, Position: args.Position}.resolve()
		if err != nil {
			return nil, err
		}
		kind, err := kindOr(args.Kind, spawn.ObjectiveKind)
		if err != nil {
			return nil, err
		}
		return generator.RoomBasedObjectiveSpawner{Room: room, Position: pos, Kind: kind}, nil
	},
}

// StageTypes returns the stage names accepted in initial and modifier blocks
func StageTypes() (initial, modifier []string) {
	for name := range initialBuilders {
		initial = append(initial, name)
	}
	for name := range modifiers {
		modifier = append(modifier, name)
	}
	slices.Sort(initial)
	slices.Sort(modifier)
	return initial, modifier
}

func decodeArgs(body hcl.Body, args any) error {
	if diags := gohcl.DecodeBody(body, evalCtx, args); diags.HasErrors() {
		return diags
	}
	return nil
}

func kindOr(name *string, fallback spawn.Kind) (spawn.Kind, error) {
	if name == nil {
		return fallback, nil
	}
	return spawn.ParseKind(*name)
}

type spawnerArgs struct {
	MaxSpawns int            `hcl:"max_spawns"`
	Table     map[string]int `hcl:"table,optional"`
}

// table converts the optional kind weights; nil means the default table
func (a spawnerArgs) table() (*random.Table[spawn.Kind], error) {
	if a.Table == nil {
		return nil, nil
	}
	weights := make(map[spawn.Kind]int, len(a.Table))
	for name, w := range a.Table {
		kind, err := spawn.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: weight %d for %s", generator.ErrInvalidParameters, w, kind)
		}
		weights[kind] = w
	}
	return spawn.TableFromWeights(weights), nil
}

type selectionArgs struct {
	Room     *string `hcl:"room,optional"`
	Position *string `hcl:"position,optional"`
}

func (a selectionArgs) resolve() (generator.RoomSelection, generator.PositionSelection, error) {
	room, pos := generator.RoomFirst, generator.PositionCenter
	if a.Room != nil {
		r, err := generator.ParseRoomSelection(*a.Room)
		if err != nil {
			return room, pos, err
		}
		room = r
	}
	if a.Position != nil {
		p, err := generator.ParsePositionSelection(*a.Position)
		if err != nil {
			return room, pos, err
		}
		pos = p
	}
	return room, pos, nil
}
