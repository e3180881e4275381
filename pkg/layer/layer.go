// Package layer provides scoped, masked overlays on a canvas.
//
// A [Layer] starts as a copy of its parent's cells. Region algebra narrows
// or widens the set of positions the layer carries, values are edited or
// rearranged within that set, and [Layer.Unscope] commits the carried
// positions back into the parent:
//
//	l := layer.New(parent)
//	l.Intersection(shapes.Circle)
//	l.Rearrange(sorters.YIQ)
//	l.Unscope()
//
// A layer can only paint where its parent carries data. Writes at positions
// that are open in the parent are dropped without error, so the set of
// assigned layer positions is always a subset of the parent's.
package layer

import (
	"image"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/errors"
	"github.com/matzehuels/tessera/pkg/mask"
)

// Layer is a masked overlay on a parent canvas. It implements
// [canvas.Surface], and its size always equals the parent's.
//
// The parent is not owned: callers must not commit two layers over the same
// parent concurrently.
type Layer[T any] struct {
	parent    *canvas.Canvas[T]
	cells     *canvas.Canvas[T]
	committed bool
}

// New creates a layer whose cells are a copy of parent's.
func New[T any](parent *canvas.Canvas[T]) *Layer[T] {
	return &Layer[T]{parent: parent, cells: parent.Clone()}
}

// Parent returns the canvas the layer commits into.
func (l *Layer[T]) Parent() *canvas.Canvas[T] { return l.parent }

// Size returns the parent's size.
func (l *Layer[T]) Size() canvas.Size { return l.cells.Size() }

// At returns the layer cell at flat index i.
func (l *Layer[T]) At(i int) canvas.Cell[T] { return l.cells.At(i) }

// SetAt writes the layer cell at flat index i. The write is dropped when
// the parent is open at i or the layer has been committed.
func (l *Layer[T]) SetAt(i int, c canvas.Cell[T]) {
	if l.committed || l.parent.IsOpen(i) {
		return
	}
	l.cells.SetAt(i, c)
}

// Committed reports whether Unscope has run.
func (l *Layer[T]) Committed() bool { return l.committed }

func (l *Layer[T]) check() error {
	if l.committed {
		return errors.New(errors.ErrCodeInvalidState, "layer already committed")
	}
	return nil
}

func (l *Layer[T]) algebra() mask.Algebra[T] {
	return mask.Algebra[T]{Target: l, Source: l.parent}
}

// Get returns the layer cell at p.
func (l *Layer[T]) Get(p image.Point) (canvas.Cell[T], error) {
	return l.cells.Get(p)
}

// Set writes the layer cell at p. It fails with OUT_OF_RANGE for an invalid
// point and is a no-op where the parent is open.
func (l *Layer[T]) Set(p image.Point, c canvas.Cell[T]) error {
	if err := l.check(); err != nil {
		return err
	}
	i, err := l.Size().Index(p)
	if err != nil {
		return err
	}
	l.SetAt(i, c)
	return nil
}

// Assigned returns the positions the layer currently carries.
func (l *Layer[T]) Assigned() mask.Set { return mask.Assigned[T](l) }

// Values returns the carried values in row-major order.
func (l *Layer[T]) Values() []T { return canvas.Values[T](l) }

// View returns a copy of the layer's cells.
func (l *Layer[T]) View() *canvas.Canvas[T] { return l.cells.Clone() }

// =============================================================================
// Region algebra
// =============================================================================

// UnionSet adds ps to the carried region, taking values from the parent.
func (l *Layer[T]) UnionSet(ps mask.Set) error {
	if err := l.check(); err != nil {
		return err
	}
	l.algebra().Union(ps)
	return nil
}

// IntersectSet narrows the carried region to ps.
func (l *Layer[T]) IntersectSet(ps mask.Set) error {
	if err := l.check(); err != nil {
		return err
	}
	l.algebra().Intersection(ps)
	return nil
}

// DifferenceSet removes ps from the carried region.
func (l *Layer[T]) DifferenceSet(ps mask.Set) error {
	if err := l.check(); err != nil {
		return err
	}
	l.algebra().Difference(ps)
	return nil
}

// Exclude opens the carried positions in ps.
func (l *Layer[T]) Exclude(ps mask.Set) error {
	return l.DifferenceSet(ps)
}

// Unexclude fills the open positions in ps from the parent.
func (l *Layer[T]) Unexclude(ps mask.Set) error {
	return l.UnionSet(ps)
}

// Invert swaps the carried and open regions.
func (l *Layer[T]) Invert() error {
	if err := l.check(); err != nil {
		return err
	}
	l.algebra().Invert()
	return nil
}

// RemoveExcluded fills every open position from the parent. Positions the
// parent leaves open stay open.
func (l *Layer[T]) RemoveExcluded() error {
	if err := l.check(); err != nil {
		return err
	}
	l.algebra().RemoveExcluded()
	return nil
}

// RemoveUnexcluded opens every position.
func (l *Layer[T]) RemoveUnexcluded() error {
	if err := l.check(); err != nil {
		return err
	}
	l.algebra().RemoveUnexcluded()
	return nil
}

// Union adds the region selected by preds, evaluated left to right over the
// layer's position grid.
func (l *Layer[T]) Union(preds ...mask.Predicate) error {
	return l.UnionSet(mask.Select(l.Size(), preds...))
}

// Intersection narrows the carried region to the region selected by preds.
func (l *Layer[T]) Intersection(preds ...mask.Predicate) error {
	return l.IntersectSet(mask.Select(l.Size(), preds...))
}

// Difference removes the region selected by preds.
func (l *Layer[T]) Difference(preds ...mask.Predicate) error {
	return l.DifferenceSet(mask.Select(l.Size(), preds...))
}

// =============================================================================
// Data
// =============================================================================

// Rearrange reorders the carried values with fn, keeping the carried
// positions. It fails with SIZE_MISMATCH when fn changes the value count.
func (l *Layer[T]) Rearrange(fn func([]T) []T) error {
	if err := l.check(); err != nil {
		return err
	}
	return canvas.Rearrange[T](l, fn)
}

// PutValues writes values into the carried positions in row-major order.
func (l *Layer[T]) PutValues(values []T) error {
	if err := l.check(); err != nil {
		return err
	}
	canvas.PutValues[T](l, values)
	return nil
}

// ShapeAndRearrange narrows the layer to shape, rearranges the values inside
// it with fn, then refills everything outside from the parent.
func (l *Layer[T]) ShapeAndRearrange(shape mask.Predicate, fn func([]T) []T) error {
	if err := l.Intersection(shape); err != nil {
		return err
	}
	if err := l.Rearrange(fn); err != nil {
		return err
	}
	return l.RemoveExcluded()
}

// Unscope commits every carried position into the parent. Parent positions
// the layer leaves open are untouched. After Unscope the layer rejects
// further edits with INVALID_STATE.
func (l *Layer[T]) Unscope() error {
	if err := l.check(); err != nil {
		return err
	}
	for i := range l.Size().Area() {
		if c := l.cells.At(i); !c.IsOpen() {
			l.parent.SetAt(i, c)
		}
	}
	l.committed = true
	return nil
}
