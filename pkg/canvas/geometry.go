package canvas

import (
	"fmt"
	"image"

	"github.com/matzehuels/tessera/pkg/errors"
)

// Size is the extent of a grid: Width columns by Length rows.
type Size struct {
	Width  int
	Length int
}

// Area returns the number of cells in a grid of this size.
func (s Size) Area() int {
	return s.Width * s.Length
}

// String formats the size as "WxL".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Length)
}

// Bounds returns the rectangle covering the whole grid.
func (s Size) Bounds() image.Rectangle {
	return image.Rectangle{Max: image.Pt(s.Width, s.Length)}
}

// Contains reports whether p is a valid coordinate.
func (s Size) Contains(p image.Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Length
}

// Index maps p to its row-major flat index.
func (s Size) Index(p image.Point) (int, error) {
	if !s.Contains(p) {
		return 0, errors.New(errors.ErrCodeOutOfRange, "point %v outside %v grid", p, s)
	}
	return p.X + p.Y*s.Width, nil
}

// Point is the inverse of Index. It does not range-check i.
func (s Size) Point(i int) image.Point {
	if s.Width == 0 {
		return image.Point{}
	}
	return image.Pt(i%s.Width, i/s.Width)
}

// Axis returns the extent along axis 0 (width) or 1 (length).
func (s Size) Axis(axis int) int {
	if axis == 0 {
		return s.Width
	}
	return s.Length
}

// SizeOf returns the size of r without canonicalising it, so an inverted
// rectangle yields negative extents.
func SizeOf(r image.Rectangle) Size {
	return Size{Width: r.Max.X - r.Min.X, Length: r.Max.Y - r.Min.Y}
}

// Rect builds the rectangle (x0, y0)-(x1, y1) as given. Unlike image.Rect
// it never swaps coordinates.
func Rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

// Region returns the rectangle of size s with its top-left at corner.
func Region(corner image.Point, s Size) image.Rectangle {
	return image.Rectangle{Min: corner, Max: corner.Add(image.Pt(s.Width, s.Length))}
}

// ValidateRect rejects rectangles whose maximum lies before their minimum.
func ValidateRect(r image.Rectangle) error {
	if r.Max.X < r.Min.X || r.Max.Y < r.Min.Y {
		return errors.New(errors.ErrCodeRange, "inverted region %v", r)
	}
	return nil
}

// Within reports whether r lies entirely inside a grid of size s.
func Within(r image.Rectangle, s Size) bool {
	return r.Min.X >= 0 && r.Min.Y >= 0 && r.Max.X <= s.Width && r.Max.Y <= s.Length
}
