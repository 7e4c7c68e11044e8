// Package config loads map generation pipelines from HCL files.
//
// A file declares any number of pipelines:
//
//	pipeline "caves" {
//	  width  = 80
//	  height = 53
//
//	  initial "cellular_automata" {
//	    iterations       = 10
//	    floor_likelihood = 0.4
//	  }
//	  modifier "arbitrary_starting_point" {}
//	  modifier "cull_unreachable" {}
//	}
//
// Stage blocks are labelled with the stage name and take that stage's
// parameters as attributes. Expressions may use default_width,
// default_height and kind.<name>.
package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"darkdelve/pkg/game/generator"
)

var (
	// ErrUnknownStage indicates a stage block whose label names no stage
	ErrUnknownStage = errors.New("config: unknown stage type")
	// ErrUnknownPipeline indicates a pipeline name not declared in the file
	ErrUnknownPipeline = errors.New("config: unknown pipeline")
	// ErrDuplicatePipeline indicates two pipelines sharing a name
	ErrDuplicatePipeline = errors.New("config: duplicate pipeline")
	// ErrInvalidSize indicates a negative width or height
	ErrInvalidSize = errors.New("config: invalid map size")
)

//go:embed presets.hcl
var builtinPresets []byte

// BuiltinFilename is the name reported in diagnostics for the built-in presets
const BuiltinFilename = "presets.hcl"

// fileRoot is the top-level structure of a pipeline file
type fileRoot struct {
	Pipelines []*pipelineBlock `hcl:"pipeline,block"`
}

type pipelineBlock struct {
	Name      string        `hcl:"name,label"`
	Width     int           `hcl:"width,optional"`
	Height    int           `hcl:"height,optional"`
	Initial   stageBlock    `hcl:"initial,block"`
	Modifiers []*stageBlock `hcl:"modifier,block"`
}

type stageBlock struct {
	Type string   `hcl:"type,label"`
	Body hcl.Body `hcl:",remain"`
}

// Pipeline is one decoded pipeline with its stages resolved
type Pipeline struct {
	Name      string
	Width     int
	Height    int
	Initial   generator.InitialBuilder
	Modifiers []generator.Modifier
}

// Chain assembles a fresh generator chain for the pipeline
func (p *Pipeline) Chain() *generator.BuilderChain {
	chain := generator.NewChain(p.Width, p.Height).StartWith(p.Initial)
	for _, m := range p.Modifiers {
		chain.With(m)
	}
	return chain
}

// File is a set of pipelines loaded from one source
type File struct {
	Filename  string
	pipelines []*Pipeline
	byName    map[string]*Pipeline
}

// Load parses the pipeline file at path
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse HCL file %s: %w", path, diags)
	}
	return decode(hclFile, path)
}

// Parse parses pipeline source; filename is only used in diagnostics
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(hclFile, filename)
}

// Builtin returns the pipelines that ship with the binary
func Builtin() (*File, error) {
	return Parse(builtinPresets, BuiltinFilename)
}

func decode(hclFile *hcl.File, filename string) (*File, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode HCL file %s: %w", filename, diags)
	}

	f := &File{
		Filename: filename,
		byName:   make(map[string]*Pipeline, len(root.Pipelines)),
	}
	for _, block := range root.Pipelines {
		if _, exists := f.byName[block.Name]; exists {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicatePipeline, block.Name, filename)
		}
		p, err := resolvePipeline(block)
		if err != nil {
			return nil, fmt.Errorf("config: pipeline %q in %s: %w", block.Name, filename, err)
		}
		f.pipelines = append(f.pipelines, p)
		f.byName[p.Name] = p
	}
	return f, nil
}

func resolvePipeline(block *pipelineBlock) (*Pipeline, error) {
	if block.Width < 0 || block.Height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, block.Width, block.Height)
	}
	p := &Pipeline{
		Name:   block.Name,
		Width:  block.Width,
		Height: block.Height,
	}
	if p.Width == 0 {
		p.Width = generator.DefaultWidth
	}
	if p.Height == 0 {
		p.Height = generator.DefaultHeight
	}

	newInitial, ok := initialBuilders[block.Initial.Type]
	if !ok {
		return nil, fmt.Errorf("%w: initial %q", ErrUnknownStage, block.Initial.Type)
	}
	initial, err := newInitial(block.Initial.Body)
	if err != nil {
		return nil, fmt.Errorf("initial %q: %w", block.Initial.Type, err)
	}
	p.Initial = initial

	for _, mb := range block.Modifiers {
		newModifier, ok := modifiers[mb.Type]
		if !ok {
			return nil, fmt.Errorf("%w: modifier %q", ErrUnknownStage, mb.Type)
		}
		m, err := newModifier(mb.Body)
		if err != nil {
			return nil, fmt.Errorf("modifier %q: %w", mb.Type, err)
		}
		p.Modifiers = append(p.Modifiers, m)
	}
	return p, nil
}

// Names returns the pipeline names in declaration order
func (f *File) Names() []string {
	names := make([]string, 0, len(f.pipelines))
	for _, p := range f.pipelines {
		names = append(names, p.Name)
	}
	return names
}

// Pipeline looks up a pipeline by name
func (f *File) Pipeline(name string) (*Pipeline, error) {
	p, ok := f.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownPipeline, name, f.Filename)
	}
	return p, nil
}

// Chain assembles a fresh generator chain for the named pipeline
func (f *File) Chain(name string) (*generator.BuilderChain, error) {
	p, err := f.Pipeline(name)
	if err != nil {
		return nil, err
	}
	return p.Chain(), nil
}
