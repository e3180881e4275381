// Package splitter extracts rectangular regions from a canvas and writes
// them back.
//
// A [Splitter] keeps an explicit stack of extracted regions, each with the
// corner it was taken from. Regions are independent canvases: edit them
// freely, then [Splitter.UnscopeAll] reinserts them in extraction order.
//
//	s := splitter.New(c)
//	quads, _ := s.Crack(2, 2)
//	for q := range quads {
//	    q.Rearrange(sortFn)
//	}
//	s.UnscopeAll()
//
// Regions may straddle or lie entirely outside the parent. Cells outside
// the parent read as open, and are dropped again on reinsertion.
package splitter

import (
	"image"
	"iter"
	"slices"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/errors"
	"github.com/matzehuels/tessera/pkg/line"
)

// Region is an extracted canvas together with its top-left corner in the
// parent's coordinate space. Origin may be negative.
type Region[T any] struct {
	Canvas *canvas.Canvas[T]
	Origin image.Point
}

// Bounds returns the region's rectangle in parent coordinates.
func (r Region[T]) Bounds() image.Rectangle {
	return canvas.Region(r.Origin, r.Canvas.Size())
}

// Splitter extracts regions from a parent canvas it does not own.
type Splitter[T any] struct {
	parent *canvas.Canvas[T]
	stack  []Region[T]
}

// New creates a splitter over parent.
func New[T any](parent *canvas.Canvas[T]) *Splitter[T] {
	return &Splitter[T]{parent: parent}
}

// Parent returns the canvas regions are extracted from.
func (s *Splitter[T]) Parent() *canvas.Canvas[T] { return s.parent }

// Len returns the number of regions awaiting reinsertion.
func (s *Splitter[T]) Len() int { return len(s.stack) }

// Regions returns the pending regions in extraction order. The slice is a
// copy; the canvases are not.
func (s *Splitter[T]) Regions() []Region[T] { return slices.Clone(s.stack) }

// Push records child for reinsertion at origin.
func (s *Splitter[T]) Push(child *canvas.Canvas[T], origin image.Point) {
	s.stack = append(s.stack, Region[T]{Canvas: child, Origin: origin})
}

// Portion copies the cells inside bbox into a new canvas and records it for
// reinsertion. Parts of bbox outside the parent read as open cells.
// An inverted bbox fails with RANGE_ERROR.
func (s *Splitter[T]) Portion(bbox image.Rectangle) (*canvas.Canvas[T], error) {
	if err := canvas.ValidateRect(bbox); err != nil {
		return nil, err
	}
	return s.portion(bbox), nil
}

// portion is Portion for a bbox already known to be well formed.
func (s *Splitter[T]) portion(bbox image.Rectangle) *canvas.Canvas[T] {
	size := canvas.SizeOf(bbox)
	child := canvas.FromEmptySize[T](size)

	if canvas.Within(bbox, s.parent.Size()) {
		grid := s.parent.Grid()
		for y := range size.Length {
			row := grid[bbox.Min.Y+y][bbox.Min.X:bbox.Max.X]
			copy(child.Cells()[y*size.Width:], row)
		}
	} else {
		for i := range size.Area() {
			p := size.Point(i).Add(bbox.Min)
			if cell, err := s.parent.Get(p); err == nil {
				child.SetAt(i, cell)
			}
		}
	}

	s.Push(child, bbox.Min)
	return child
}

// Unscope removes the region at index i and inserts it back into the
// parent. Open cells of the region leave the parent untouched and cells
// outside the parent are dropped. An invalid index fails with OUT_OF_RANGE.
func (s *Splitter[T]) Unscope(i int) error {
	if i < 0 || i >= len(s.stack) {
		return errors.New(errors.ErrCodeOutOfRange, "no region at index %d (%d pending)", i, len(s.stack))
	}
	r := s.stack[i]
	s.stack = slices.Delete(s.stack, i, i+1)
	return s.parent.Insert(r.Canvas, r.Origin, false)
}

// UnscopeAll reinserts every pending region, earliest extracted first.
func (s *Splitter[T]) UnscopeAll() error {
	for len(s.stack) > 0 {
		if err := s.Unscope(0); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Tilings
// =============================================================================

// tiles yields a portion for every (x, y) origin pair, row-major. Callers
// pass non-negative extents, so every bbox is well formed.
func (s *Splitter[T]) tiles(xs, ys []int, width func(int) int, length func(int) int) iter.Seq[*canvas.Canvas[T]] {
	return func(yield func(*canvas.Canvas[T]) bool) {
		for j, y := range ys {
			for i, x := range xs {
				bbox := canvas.Rect(x, y, x+width(i), y+length(j))
				if !yield(s.portion(bbox)) {
					return
				}
			}
		}
	}
}

func fixed(n int) func(int) int { return func(int) int { return n } }

func validateTile(size canvas.Size) error {
	if size.Width <= 0 || size.Length <= 0 {
		return errors.New(errors.ErrCodeRange, "tile size %v must be positive", size)
	}
	return nil
}

// Fragment tiles the parent with regions of size, starting at the origin
// and stepping size+padding along each axis while the next origin lies
// inside the parent. Tiles on the far edges may run past it.
//
// Tiles are extracted lazily, one per step of the returned sequence.
// A non-positive tile extent or negative padding fails with RANGE_ERROR.
func (s *Splitter[T]) Fragment(size canvas.Size, widthPadding, lengthPadding int) (iter.Seq[*canvas.Canvas[T]], error) {
	if err := validateTile(size); err != nil {
		return nil, err
	}
	xs, err := line.PaddedMaximum(s.parent.Width(), widthPadding, size.Width)
	if err != nil {
		return nil, err
	}
	ys, err := line.PaddedMaximum(s.parent.Length(), lengthPadding, size.Length)
	if err != nil {
		return nil, err
	}
	return s.tiles(xs, ys, fixed(size.Width), fixed(size.Length)), nil
}

// FragmentFillIn places perWidth × perLength tiles of size so that they
// span the parent exactly along both axes, with the spare room spread
// between them. It fails with RANGE_ERROR when the tiles do not fit.
func (s *Splitter[T]) FragmentFillIn(size canvas.Size, perWidth, perLength int) (iter.Seq[*canvas.Canvas[T]], error) {
	if err := validateTile(size); err != nil {
		return nil, err
	}
	xs, err := line.FillInShortcut(s.parent.Width(), size.Width, perWidth)
	if err != nil {
		return nil, err
	}
	ys, err := line.FillInShortcut(s.parent.Length(), size.Length, perLength)
	if err != nil {
		return nil, err
	}
	return s.tiles(xs, ys, fixed(size.Width), fixed(size.Length)), nil
}

// Crack divides the parent into perWidth × perLength contiguous regions
// whose extents differ by at most one along each axis. Every parent cell
// lands in exactly one region. It fails with RANGE_ERROR when an axis has
// fewer cells than requested segments.
func (s *Splitter[T]) Crack(perWidth, perLength int) (iter.Seq[*canvas.Canvas[T]], error) {
	cols, err := line.FindFillIn(s.parent.Width(), perWidth)
	if err != nil {
		return nil, err
	}
	rows, err := line.FindFillIn(s.parent.Length(), perLength)
	if err != nil {
		return nil, err
	}
	xs, ys := starts(cols), starts(rows)
	return s.tiles(xs,
		ys,
		func(i int) int { return cols[i].Length },
		func(j int) int { return rows[j].Length },
	), nil
}

func starts(segs []line.Segment) []int {
	out := make([]int, len(segs))
	for i, s := range segs {
		out[i] = s.Start
	}
	return out
}
