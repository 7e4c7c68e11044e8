package generator

import "errors"

var (
	// ErrStageFailed wraps every error returned by a stage; the stage name is in the message.
	ErrStageFailed = errors.New("generator: stage failed")
	// ErrNoInitialBuilder indicates a chain started with a nil initial builder.
	ErrNoInitialBuilder = errors.New("generator: chain has no initial builder")
	// ErrNilModifier indicates a nil modifier was appended to a chain.
	ErrNilModifier = errors.New("generator: nil modifier in chain")
	// ErrNoRooms indicates a room-based stage ran without rooms from the initial builder.
	ErrNoRooms = errors.New("generator: stage requires rooms but none were generated")
	// ErrNoStartingPosition indicates a stage ran before any starting position was chosen.
	ErrNoStartingPosition = errors.New("generator: stage requires a starting position")
	// ErrNoRegions indicates a region-based stage ran before the map was partitioned.
	ErrNoRegions = errors.New("generator: stage requires regions")
	// ErrNoFloor indicates the map contains no floor tile at all.
	ErrNoFloor = errors.New("generator: map has no floor tile")
	// ErrInvalidParameters indicates stage parameters that can never produce a map.
	ErrInvalidParameters = errors.New("generator: invalid stage parameters")
	// ErrGridTooSmall indicates the grid cannot geometrically hold what a stage asks for.
	ErrGridTooSmall = errors.New("generator: grid too small for stage")
	// ErrUnknownPreset indicates a preset name that is not defined.
	ErrUnknownPreset = errors.New("generator: unknown preset")
)
