package generator

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"darkdelve/pkg/engine/world"
)

// Chain is a pipeline that has not been given its initial builder yet.
// The only thing it can do is StartWith, so a chain without an initial
// builder cannot be built.
type Chain struct {
	width, height int
}

// NewChain creates an empty pipeline for a width x height map
func NewChain(width, height int) *Chain {
	return &Chain{width: width, height: height}
}

// StartWith sets the initial builder and returns a chain that accepts modifiers
func (c *Chain) StartWith(initial InitialBuilder) *BuilderChain {
	return &BuilderChain{
		width:   c.width,
		height:  c.height,
		initial: initial,
		history: true,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// BuilderChain is a pipeline with its initial builder set
type BuilderChain struct {
	width, height int
	initial       InitialBuilder
	modifiers     []Modifier
	history       bool
	logger        *slog.Logger
}

// With appends a modifier. Modifiers run in the order they were added.
func (b *BuilderChain) With(m Modifier) *BuilderChain {
	b.modifiers = append(b.modifiers, m)
	return b
}

// WithLogger routes stage logging to logger
func (b *BuilderChain) WithLogger(logger *slog.Logger) *BuilderChain {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithoutHistory disables snapshot recording; Result.History will be empty
func (b *BuilderChain) WithoutHistory() *BuilderChain {
	b.history = false
	return b
}

// Width returns the map width this chain builds
func (b *BuilderChain) Width() int { return b.width }

// Height returns the map height this chain builds
func (b *BuilderChain) Height() int { return b.height }

// Stages returns the stage names in run order
func (b *BuilderChain) Stages() []string {
	names := make([]string, 0, len(b.modifiers)+1)
	if b.initial != nil {
		names = append(names, b.initial.Name())
	}
	for _, m := range b.modifiers {
		if m != nil {
			names = append(names, m.Name())
		}
	}
	return names
}

// Result is the output of one chain run
type Result struct {
	Grid     *world.Grid
	Metadata Metadata
	History  []Snapshot
}

// Build runs the initial builder and every modifier against a fresh context.
// Each run starts from an all-wall grid, so a chain may be built more than once.
func (b *BuilderChain) Build(rng *rand.Rand) (*Result, error) {
	if b.initial == nil {
		return nil, ErrNoInitialBuilder
	}
	for i, m := range b.modifiers {
		if m == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilModifier, i)
		}
	}

	grid, err := world.NewGrid(b.width, b.height)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	ctx := newBuildContext(grid, b.logger, b.history)

	b.logger.Debug("building map", "width", b.width, "height", b.height, "stages", len(b.modifiers)+1)

	if err := b.runStage(ctx, b.initial.Name(), func() error {
		return b.initial.Build(rng, ctx)
	}); err != nil {
		return nil, err
	}
	for _, m := range b.modifiers {
		if err := b.runStage(ctx, m.Name(), func() error {
			return m.Modify(rng, ctx)
		}); err != nil {
			return nil, err
		}
	}

	return &Result{
		Grid:     ctx.Grid,
		Metadata: ctx.Metadata,
		History:  ctx.history,
	}, nil
}

// runStage runs one stage and makes sure it leaves at least one snapshot
func (b *BuilderChain) runStage(ctx *BuildContext, name string, run func() error) error {
	ctx.stage = name
	before := ctx.snapshots
	if err := run(); err != nil {
		b.logger.Error("stage failed", "stage", name, "err", err)
		return fmt.Errorf("%w: %q: %w", ErrStageFailed, name, err)
	}
	if ctx.snapshots == before {
		ctx.TakeSnapshot()
	}
	b.logger.Debug("stage complete",
		"stage", name,
		"floor", ctx.Grid.CountFloor(),
		"rooms", len(ctx.Metadata.Rooms),
		"spawns", len(ctx.Metadata.Spawns),
	)
	return nil
}
