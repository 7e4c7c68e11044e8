package generator

import (
	"fmt"
	"math/rand"

	"darkdelve/pkg/engine/world"
)

// BSPRooms generates rooms using Binary Space Partitioning: the interior is
// split recursively, one room is placed per leaf, and sibling subtrees are
// joined with L-shaped corridors.
type BSPRooms struct {
	MinNodeSize int
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *world.Rect
}

// Constants for BSP generation
const (
	defaultMinNodeSize = 8
	minRoomSize        = 4 // Minimum carved size of a room
	roomPadding        = 2 // Padding between room and node edge
)

// NewBSPRooms creates a BSP builder. A zero minNodeSize uses the default.
func NewBSPRooms(minNodeSize int) *BSPRooms {
	return &BSPRooms{MinNodeSize: minNodeSize}
}

// Name returns the name of this builder
func (b *BSPRooms) Name() string {
	return "bsp_rooms"
}

// Build partitions the map, carves the rooms and connects them
func (b *BSPRooms) Build(rng *rand.Rand, ctx *BuildContext) error {
	grid := ctx.Grid
	minSize := b.MinNodeSize
	if minSize == 0 {
		minSize = defaultMinNodeSize
	}
	if minSize < minRoomSize+roomPadding {
		return fmt.Errorf("%w: min_node_size=%d is below %d", ErrInvalidParameters, minSize, minRoomSize+roomPadding)
	}

	// Leave a 1 cell border for perimeter walls
	root := &bspNode{
		x:      1,
		y:      1,
		width:  grid.Width() - 2,
		height: grid.Height() - 2,
	}
	if root.width < minSize || root.height < minSize {
		return fmt.Errorf("%w: %dx%d cannot hold a %d tile node", ErrGridTooSmall, grid.Width(), grid.Height(), minSize)
	}

	splitBSP(rng, root, minSize)
	createRooms(rng, root)

	rooms := collectRooms(root)
	for _, room := range rooms {
		carveRoom(ctx, room)
	}
	ctx.Metadata.Rooms = rooms
	ctx.TakeSnapshot()

	connectRooms(rng, ctx, root)
	ctx.TakeSnapshot()

	ctx.Logger().Debug("bsp rooms placed", "rooms", len(rooms), "min_node_size", minSize)
	return nil
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	switch {
	case node.width > node.height && node.width >= minSize*2:
		splitHorizontal = false
	case node.height > node.width && node.height >= minSize*2:
		splitHorizontal = true
	case node.width >= minSize*2 && node.height >= minSize*2:
		splitHorizontal = rng.Intn(2) == 0
	case node.width >= minSize*2:
		splitHorizontal = false
	default:
		splitHorizontal = true
	}

	if splitHorizontal {
		// Top and bottom
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Left and right
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// createRooms creates rooms in leaf nodes. A room's border sits one tile
// outside the area it carves, so the carved area stays inside the leaf.
func createRooms(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(rng, node.left)
		}
		if node.right != nil {
			createRooms(rng, node.right)
		}
		return
	}

	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)

	roomX := node.x + rng.Intn(node.width-roomWidth)
	roomY := node.y + rng.Intn(node.height-roomHeight)

	room := world.NewRect(roomX-1, roomY-1, roomWidth+1, roomHeight+1)
	node.room = &room
}

// connectRooms connects a room of each subtree, then recurses
func connectRooms(rng *rand.Rand, ctx *BuildContext, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(rng, node.left)
	rightRoom := getRoom(rng, node.right)
	if leftRoom != nil && rightRoom != nil {
		carveCorridor(ctx, leftRoom.Center(), rightRoom.Center(), rng.Intn(2) == 0)
	}

	connectRooms(rng, ctx, node.left)
	connectRooms(rng, ctx, node.right)
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(rng *rand.Rand, node *bspNode) *world.Rect {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *world.Rect
	if node.left != nil {
		leftRoom = getRoom(rng, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(rng, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree, left to right
func collectRooms(node *bspNode) []world.Rect {
	var rooms []world.Rect

	if node.room != nil {
		rooms = append(rooms, *node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}
