// Package recipe describes multi-step image effects as configuration files.
//
// A recipe names an input image, an output path and an ordered list of
// steps. Each step is one operation of the core packages: sort the whole
// image, rearrange inside a masked layer, or split the image into tiles and
// rearrange each tile.
//
// Recipes are written in TOML or YAML:
//
//	input  = "in.png"
//	output = "out.png"
//
//	[[steps]]
//	kind   = "crack"
//	columns = 4
//	rows    = 4
//	sorter  = "hsv"
//
//	[[steps]]
//	kind   = "mask"
//	sorter = "yiq"
//	masks  = [{ op = "intersection", shapes = ["circle"] }]
//
// Relative input and output paths are resolved against the recipe's
// directory.
package recipe

import (
	"slices"

	"github.com/matzehuels/tessera/pkg/errors"
	"github.com/matzehuels/tessera/pkg/shapes"
	"github.com/matzehuels/tessera/pkg/sorters"
)

// Kind names a step type.
type Kind string

// Step kinds.
const (
	KindSort         Kind = "sort"
	KindMask         Kind = "mask"
	KindFragment     Kind = "fragment"
	KindFragmentFill Kind = "fragment-fill"
	KindCrack        Kind = "crack"
	KindReverse      Kind = "reverse"
)

// Kinds lists every step kind.
var Kinds = []Kind{KindSort, KindMask, KindFragment, KindFragmentFill, KindCrack, KindReverse}

// Op names a region algebra operation.
type Op string

// Mask operations.
const (
	OpUnion        Op = "union"
	OpIntersection Op = "intersection"
	OpDifference   Op = "difference"
	OpInvert       Op = "invert"
)

// Ops lists every mask operation.
var Ops = []Op{OpUnion, OpIntersection, OpDifference, OpInvert}

// Recipe is a named, ordered effect pipeline.
type Recipe struct {
	Name   string `toml:"name" yaml:"name"`
	Input  string `toml:"input" yaml:"input"`
	Output string `toml:"output" yaml:"output"`
	Steps  []Step `toml:"steps" yaml:"steps"`
}

// Mask is one region edit applied to a layer: Op with the region selected
// by the Shapes pipeline.
type Mask struct {
	Op     Op       `toml:"op" yaml:"op"`
	Shapes []string `toml:"shapes" yaml:"shapes"`
}

// Step is one operation. Which fields apply depends on Kind:
//   - sort: Sorter
//   - mask: Masks, Sorter
//   - fragment: Width, Length, WidthPadding, LengthPadding, Sorter, Shapes
//   - fragment-fill: Width, Length, Columns, Rows, Sorter, Shapes
//   - crack: Columns, Rows, Sorter, Shapes
//   - reverse: nothing
//
// For tiling kinds, Shapes restricts the rearrangement inside each tile.
type Step struct {
	Kind   Kind     `toml:"kind" yaml:"kind"`
	Sorter string   `toml:"sorter,omitempty" yaml:"sorter,omitempty"`
	Masks  []Mask   `toml:"masks,omitempty" yaml:"masks,omitempty"`
	Shapes []string `toml:"shapes,omitempty" yaml:"shapes,omitempty"`

	Width         int `toml:"width,omitempty" yaml:"width,omitempty"`
	Length        int `toml:"length,omitempty" yaml:"length,omitempty"`
	WidthPadding  int `toml:"width_padding,omitempty" yaml:"width_padding,omitempty"`
	LengthPadding int `toml:"length_padding,omitempty" yaml:"length_padding,omitempty"`
	Columns       int `toml:"columns,omitempty" yaml:"columns,omitempty"`
	Rows          int `toml:"rows,omitempty" yaml:"rows,omitempty"`
}

// Validate checks every step. Errors carry INVALID_RECIPE and name the
// offending step.
func (r *Recipe) Validate() error {
	if len(r.Steps) == 0 {
		return errors.New(errors.ErrCodeInvalidRecipe, "recipe has no steps")
	}
	for i, s := range r.Steps {
		if err := s.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRecipe, err, "step %d (%s)", i+1, s.Kind)
		}
	}
	return nil
}

// Validate checks that the step's kind, names and geometry are usable.
func (s Step) Validate() error {
	if err := errors.ValidateName("step kind", string(s.Kind)); err != nil {
		return err
	}
	if !slices.Contains(Kinds, s.Kind) {
		return errors.New(errors.ErrCodeInvalidRecipe, "unknown step kind %q", s.Kind)
	}
	if s.Kind == KindReverse {
		return nil
	}

	if s.Sorter == "" {
		return errors.New(errors.ErrCodeInvalidRecipe, "sorter is required")
	}
	if _, err := sorters.Lookup(s.Sorter); err != nil {
		return err
	}
	if err := validateShapes(s.Shapes); err != nil {
		return err
	}

	switch s.Kind {
	case KindMask:
		if len(s.Masks) == 0 {
			return errors.New(errors.ErrCodeInvalidRecipe, "mask step needs at least one mask")
		}
		for _, m := range s.Masks {
			if !slices.Contains(Ops, m.Op) {
				return errors.New(errors.ErrCodeInvalidRecipe, "unknown mask op %q", m.Op)
			}
			if err := validateShapes(m.Shapes); err != nil {
				return err
			}
		}
	case KindFragment:
		if s.Width <= 0 || s.Length <= 0 {
			return errors.New(errors.ErrCodeInvalidRecipe, "tile size %dx%d must be positive", s.Width, s.Length)
		}
		if err := errors.ValidateExtent("width_padding", s.WidthPadding); err != nil {
			return err
		}
		if err := errors.ValidateExtent("length_padding", s.LengthPadding); err != nil {
			return err
		}
	case KindFragmentFill:
		if s.Width <= 0 || s.Length <= 0 {
			return errors.New(errors.ErrCodeInvalidRecipe, "tile size %dx%d must be positive", s.Width, s.Length)
		}
		if s.Columns < 1 || s.Rows < 1 {
			return errors.New(errors.ErrCodeInvalidRecipe, "columns and rows must be at least 1")
		}
	case KindCrack:
		if s.Columns < 1 || s.Rows < 1 {
			return errors.New(errors.ErrCodeInvalidRecipe, "columns and rows must be at least 1")
		}
	}
	return nil
}

func validateShapes(names []string) error {
	for _, name := range names {
		if _, err := shapes.Lookup(name); err != nil {
			return err
		}
	}
	return nil
}
