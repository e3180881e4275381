package canvas

import "fmt"

// Cell is a single grid element: either open or assigned a value.
// The zero value is an open cell.
type Cell[T any] struct {
	value    T
	assigned bool
}

// Open returns an open cell.
func Open[T any]() Cell[T] {
	return Cell[T]{}
}

// Assigned returns a cell carrying v.
func Assigned[T any](v T) Cell[T] {
	return Cell[T]{value: v, assigned: true}
}

// IsOpen reports whether the cell carries no data.
func (c Cell[T]) IsOpen() bool {
	return !c.assigned
}

// Value returns the cell's value and whether it is assigned.
// For open cells the returned value is the zero value of T.
func (c Cell[T]) Value() (T, bool) {
	return c.value, c.assigned
}

// String renders assigned cells with fmt and open cells as "·".
func (c Cell[T]) String() string {
	if !c.assigned {
		return "·"
	}
	return fmt.Sprint(c.value)
}
