package canvas

import (
	"image"
	"strings"

	"github.com/matzehuels/tessera/pkg/errors"
)

// Surface is the minimal read/write contract over a row-major grid of cells.
// Flat indices passed to At and SetAt must lie in [0, Size().Area()).
type Surface[T any] interface {
	Size() Size
	At(i int) Cell[T]
	SetAt(i int, c Cell[T])
}

// Canvas is a row-major grid of cells. The length of its cell array always
// equals Size().Area(); resizing requires building a new Canvas.
type Canvas[T any] struct {
	size  Size
	cells []Cell[T]
}

// New creates a canvas whose cells are all assigned from values.
func New[T any](values []T, size Size) (*Canvas[T], error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if len(values) != size.Area() {
		return nil, errors.New(errors.ErrCodeSizeMismatch, "%d values for a %v grid (want %d)", len(values), size, size.Area())
	}
	cells := make([]Cell[T], len(values))
	for i, v := range values {
		cells[i] = Assigned(v)
	}
	return &Canvas[T]{size: size, cells: cells}, nil
}

// FromCells creates a canvas from a copy of cells.
func FromCells[T any](cells []Cell[T], size Size) (*Canvas[T], error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if len(cells) != size.Area() {
		return nil, errors.New(errors.ErrCodeSizeMismatch, "%d cells for a %v grid (want %d)", len(cells), size, size.Area())
	}
	return &Canvas[T]{size: size, cells: append([]Cell[T](nil), cells...)}, nil
}

// FromEmptySize creates a canvas of size whose cells are all open.
// It panics if either extent is negative.
func FromEmptySize[T any](size Size) *Canvas[T] {
	return &Canvas[T]{size: size, cells: make([]Cell[T], size.Area())}
}

// Filled creates a canvas of size whose cells all carry v.
// It panics if either extent is negative.
func Filled[T any](size Size, v T) *Canvas[T] {
	c := FromEmptySize[T](size)
	for i := range c.cells {
		c.cells[i] = Assigned(v)
	}
	return c
}

func validateSize(size Size) error {
	if size.Width < 0 || size.Length < 0 {
		return errors.New(errors.ErrCodeRange, "negative grid size %v", size)
	}
	return nil
}

// Size returns the grid extent.
func (c *Canvas[T]) Size() Size { return c.size }

// Width returns the number of columns.
func (c *Canvas[T]) Width() int { return c.size.Width }

// Length returns the number of rows.
func (c *Canvas[T]) Length() int { return c.size.Length }

// Len returns the number of cells.
func (c *Canvas[T]) Len() int { return len(c.cells) }

// Cells returns the underlying row-major cell slice.
// Writes through it are visible to the canvas.
func (c *Canvas[T]) Cells() []Cell[T] { return c.cells }

// Get returns the cell at p.
func (c *Canvas[T]) Get(p image.Point) (Cell[T], error) {
	i, err := c.size.Index(p)
	if err != nil {
		return Cell[T]{}, err
	}
	return c.cells[i], nil
}

// Set replaces the cell at p.
func (c *Canvas[T]) Set(p image.Point, cell Cell[T]) error {
	i, err := c.size.Index(p)
	if err != nil {
		return err
	}
	c.cells[i] = cell
	return nil
}

// At returns the cell at flat index i.
func (c *Canvas[T]) At(i int) Cell[T] { return c.cells[i] }

// SetAt replaces the cell at flat index i.
func (c *Canvas[T]) SetAt(i int, cell Cell[T]) { c.cells[i] = cell }

// Grid splits the cells into Length rows of Width cells. Rows share storage
// with the canvas.
func (c *Canvas[T]) Grid() [][]Cell[T] {
	rows := make([][]Cell[T], c.size.Length)
	for y := range rows {
		start := y * c.size.Width
		rows[y] = c.cells[start : start+c.size.Width : start+c.size.Width]
	}
	return rows
}

// Positions returns the flat indices of the grid split into rows. It is the
// geometry that mask predicates operate on.
func Positions(size Size) [][]int {
	rows := make([][]int, size.Length)
	for y := range rows {
		row := make([]int, size.Width)
		for x := range row {
			row[x] = x + y*size.Width
		}
		rows[y] = row
	}
	return rows
}

// Insert copies other into c with other's top-left at corner. Open cells of
// other are skipped. Cells that land outside c are dropped unless strict is
// set, in which case Insert fails with DOES_NOT_FIT and leaves c unmodified.
func (c *Canvas[T]) Insert(other *Canvas[T], corner image.Point, strict bool) error {
	region := Region(corner, other.size)
	if strict && other.size.Area() > 0 && !Within(region, c.size) {
		return errors.New(errors.ErrCodeDoesNotFit, "%v canvas at %v exceeds %v grid", other.size, corner, c.size)
	}
	for i, cell := range other.cells {
		if cell.IsOpen() {
			continue
		}
		p := other.size.Point(i).Add(corner)
		if !c.size.Contains(p) {
			continue
		}
		c.cells[p.X+p.Y*c.size.Width] = cell
	}
	return nil
}

// Clone returns an independent copy of c.
func (c *Canvas[T]) Clone() *Canvas[T] {
	return &Canvas[T]{size: c.size, cells: append([]Cell[T](nil), c.cells...)}
}

// String renders the grid one row per line, cells separated by spaces.
func (c *Canvas[T]) String() string {
	var b strings.Builder
	for y, row := range c.Grid() {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, cell := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell.String())
		}
	}
	return b.String()
}

// Equal reports whether a and b have the same size and identical cells.
func Equal[T comparable](a, b *Canvas[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}
