package pipeline

import (
	"iter"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/codec"
	"github.com/matzehuels/tessera/pkg/errors"
	"github.com/matzehuels/tessera/pkg/layer"
	"github.com/matzehuels/tessera/pkg/mask"
	"github.com/matzehuels/tessera/pkg/recipe"
	"github.com/matzehuels/tessera/pkg/shapes"
	"github.com/matzehuels/tessera/pkg/sorters"
	"github.com/matzehuels/tessera/pkg/splitter"
)

// applyStep applies one validated step to c in place.
func applyStep(c *codec.Pixels, step recipe.Step) error {
	if step.Kind == recipe.KindReverse {
		c.Reverse()
		return nil
	}

	sorter, err := sorters.Lookup(step.Sorter)
	if err != nil {
		return err
	}

	switch step.Kind {
	case recipe.KindSort:
		return c.Rearrange(sorter)
	case recipe.KindMask:
		return applyMasks(c, step.Masks, sorter)
	}

	shape, err := Shape(step.Shapes)
	if err != nil {
		return err
	}
	s := splitter.New(c)
	var tiles iter.Seq[*codec.Pixels]
	switch step.Kind {
	case recipe.KindFragment:
		tiles, err = s.Fragment(canvas.Size{Width: step.Width, Length: step.Length}, step.WidthPadding, step.LengthPadding)
	case recipe.KindFragmentFill:
		tiles, err = s.FragmentFillIn(canvas.Size{Width: step.Width, Length: step.Length}, step.Columns, step.Rows)
	case recipe.KindCrack:
		tiles, err = s.Crack(step.Columns, step.Rows)
	default:
		return errors.New(errors.ErrCodeInvalidRecipe, "unknown step kind %q", step.Kind)
	}
	if err != nil {
		return err
	}

	for tile := range tiles {
		if err := RearrangeTile(tile, shape, sorter); err != nil {
			return err
		}
	}
	return s.UnscopeAll()
}

// applyMasks narrows a full layer over c with each mask in order, sorts the
// remaining region and commits it.
func applyMasks(c *codec.Pixels, masks []recipe.Mask, sorter sorters.Sorter) error {
	l := layer.New(c)
	for _, m := range masks {
		if m.Op == recipe.OpInvert {
			if err := l.Invert(); err != nil {
				return err
			}
			continue
		}
		preds, err := lookupShapes(m.Shapes)
		if err != nil {
			return err
		}
		switch m.Op {
		case recipe.OpUnion:
			err = l.Union(preds...)
		case recipe.OpIntersection:
			err = l.Intersection(preds...)
		case recipe.OpDifference:
			err = l.Difference(preds...)
		default:
			err = errors.New(errors.ErrCodeInvalidRecipe, "unknown mask op %q", m.Op)
		}
		if err != nil {
			return err
		}
	}
	if err := l.Rearrange(sorter); err != nil {
		return err
	}
	return l.Unscope()
}

// RearrangeTile sorts the pixels of tile. When shape is non-nil only the
// pixels inside shape move.
func RearrangeTile(tile *codec.Pixels, shape mask.Predicate, sorter sorters.Sorter) error {
	if shape == nil {
		return tile.Rearrange(sorter)
	}
	l := layer.New(tile)
	if err := l.ShapeAndRearrange(shape, sorter); err != nil {
		return err
	}
	return l.Unscope()
}

// Shape resolves names into one predicate that applies them left to right.
// No names yield a nil predicate.
func Shape(names []string) (mask.Predicate, error) {
	preds, err := lookupShapes(names)
	if err != nil || len(preds) == 0 {
		return nil, err
	}
	return func(grid [][]int) [][]int {
		for _, p := range preds {
			grid = p(grid)
		}
		return grid
	}, nil
}

func lookupShapes(names []string) ([]mask.Predicate, error) {
	preds := make([]mask.Predicate, 0, len(names))
	for _, name := range names {
		p, err := shapes.Lookup(name)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return preds, nil
}
