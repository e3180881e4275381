package canvas

import (
	"slices"

	"github.com/matzehuels/tessera/pkg/errors"
)

// Excluded returns the flat indices of open cells in ascending order.
func (c *Canvas[T]) Excluded() []int {
	var out []int
	for i, cell := range c.cells {
		if cell.IsOpen() {
			out = append(out, i)
		}
	}
	return out
}

// Assigned returns the flat indices of assigned cells in ascending order.
func (c *Canvas[T]) Assigned() []int {
	var out []int
	for i, cell := range c.cells {
		if !cell.IsOpen() {
			out = append(out, i)
		}
	}
	return out
}

// IsOpen reports whether the cell at flat index i is open.
func (c *Canvas[T]) IsOpen(i int) bool {
	return c.cells[i].IsOpen()
}

// IsRedundant reports whether every cell is open.
func (c *Canvas[T]) IsRedundant() bool {
	for _, cell := range c.cells {
		if !cell.IsOpen() {
			return false
		}
	}
	return true
}

// Values returns the assigned values in row-major order.
func Values[T any](s Surface[T]) []T {
	n := s.Size().Area()
	out := make([]T, 0, n)
	for i := range n {
		if v, ok := s.At(i).Value(); ok {
			out = append(out, v)
		}
	}
	return out
}

// PutValues writes values into the assigned positions of s in row-major
// order, skipping open positions. It stops when values runs out; surplus
// values are ignored.
func PutValues[T any](s Surface[T], values []T) {
	n := s.Size().Area()
	next := 0
	for i := 0; i < n && next < len(values); i++ {
		if s.At(i).IsOpen() {
			continue
		}
		s.SetAt(i, Assigned(values[next]))
		next++
	}
}

// PutCells writes every assigned entry of cells into s at the same index.
// Open entries and entries past the end of s are ignored.
func PutCells[T any](s Surface[T], cells []Cell[T]) {
	n := s.Size().Area()
	for i, cell := range cells {
		if i >= n {
			return
		}
		if cell.IsOpen() {
			continue
		}
		s.SetAt(i, cell)
	}
}

// Rearrange reorders the assigned values of s with fn and writes them back
// into the same assigned positions. fn must return as many values as it was
// given; otherwise Rearrange fails with SIZE_MISMATCH and s is unchanged.
func Rearrange[T any](s Surface[T], fn func([]T) []T) error {
	values := Values(s)
	n := len(values)
	out := fn(values)
	if len(out) != n {
		return errors.New(errors.ErrCodeSizeMismatch, "rearrange returned %d values, want %d", len(out), n)
	}
	PutValues(s, out)
	return nil
}

// Values returns the assigned values in row-major order.
func (c *Canvas[T]) Values() []T { return Values[T](c) }

// PutValues writes values into the assigned positions in row-major order.
func (c *Canvas[T]) PutValues(values []T) { PutValues[T](c, values) }

// PutCells writes the assigned entries of cells at the same indices.
func (c *Canvas[T]) PutCells(cells []Cell[T]) { PutCells[T](c, cells) }

// Rearrange reorders the assigned values with fn.
func (c *Canvas[T]) Rearrange(fn func([]T) []T) error { return Rearrange[T](c, fn) }

// Reverse reverses the row-major order of all cells, which rotates the grid
// by 180 degrees.
func (c *Canvas[T]) Reverse() {
	slices.Reverse(c.cells)
}
