// Package generator builds maps by running one initial builder followed by an
// ordered list of modifiers over a shared build context.
package generator

import (
	"math/rand"
)

// InitialBuilder lays out the base tiles of a map. A chain runs exactly one.
type InitialBuilder interface {
	Name() string
	Build(rng *rand.Rand, ctx *BuildContext) error
}

// Modifier refines the tiles or metadata produced by earlier stages
type Modifier interface {
	Name() string
	Modify(rng *rand.Rand, ctx *BuildContext) error
}
