package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/spawn"
)

// evalCtx holds the variables pipeline files may reference:
//
//	default_width, default_height   built-in map size
//	kind.<name>                     spawn kind identifiers, e.g. kind.monster
var evalCtx = newEvalContext()

func newEvalContext() *hcl.EvalContext {
	kinds := make(map[string]cty.Value, len(spawn.AllKinds()))
	for _, k := range spawn.AllKinds() {
		kinds[k.String()] = cty.StringVal(k.String())
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_width":  cty.NumberIntVal(generator.DefaultWidth),
			"default_height": cty.NumberIntVal(generator.DefaultHeight),
			"kind":           cty.ObjectVal(kinds),
		},
	}
}
