// Package shapes provides mask predicates that select common regions of a
// grid: circles, triangles, rectangles and reorientations.
//
// Every shape is a [mask.Predicate]. Shapes compose left to right, so a
// reorientation followed by a shape selects the shape in the new
// orientation:
//
//	l.Intersection(shapes.VerticalLines, shapes.Triangle) // triangle pointing left
//
// Shapes never fail. Regions that reach past the grid are clipped to it.
package shapes

import (
	"math"
	"slices"

	"github.com/matzehuels/tessera/pkg/mask"
)

// halves splits x into a ceiling half and a floor half.
func halves(x int) (hi, lo int) {
	return x - x/2, x / 2
}

// gridWidth returns the longest row length.
func gridWidth(grid [][]int) int {
	w := 0
	for _, row := range grid {
		w = max(w, len(row))
	}
	return w
}

// middle returns the centred run of n entries of row.
func middle(row []int, n int) []int {
	if len(row) <= n {
		return row
	}
	centre, _ := halves(len(row))
	a, b := halves(n)
	return row[centre-a : centre+b]
}

// HorizontalLines selects the whole grid unchanged. It is the identity
// predicate, useful to keep pipelines symmetric with VerticalLines.
func HorizontalLines(grid [][]int) [][]int { return grid }

// VerticalLines transposes the grid so that columns become rows.
// Ragged rows contribute only the positions they have.
func VerticalLines(grid [][]int) [][]int {
	w := gridWidth(grid)
	out := make([][]int, w)
	for x := range w {
		for _, row := range grid {
			if x < len(row) {
				out[x] = append(out[x], row[x])
			}
		}
	}
	return out
}

// Reversed rotates the grid by 180 degrees.
func Reversed(grid [][]int) [][]int {
	out := make([][]int, len(grid))
	for i, row := range grid {
		r := slices.Clone(row)
		slices.Reverse(r)
		out[len(grid)-1-i] = r
	}
	return out
}

// Triangle selects an isosceles triangle whose apex is the centre of the
// first row and whose base is the whole last row. Row y keeps its centred
// run of ceil(w/l) + y*w/l positions.
func Triangle(grid [][]int) [][]int {
	l, w := len(grid), gridWidth(grid)
	if l == 0 || w == 0 {
		return nil
	}
	step := float64(w) / float64(l)
	start := math.Ceil(step)
	out := make([][]int, l)
	for y, row := range grid {
		n := min(int(start+float64(y)*step), w)
		out[y] = middle(row, n)
	}
	return out
}

// Circle selects the positions within radius floor(min(w,l)/2) of the
// grid's centre cell.
func Circle(grid [][]int) [][]int {
	l, w := len(grid), gridWidth(grid)
	if l == 0 || w == 0 {
		return nil
	}
	cx, cy := float64(w/2), float64(l/2)
	r := float64(min(w, l) / 2)
	out := make([][]int, 0, l)
	for y, row := range grid {
		var sel []int
		for x, p := range row {
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				sel = append(sel, p)
			}
		}
		if len(sel) > 0 {
			out = append(out, sel)
		}
	}
	return out
}

// Quadrilateral selects the rectangle (x0, y0)-(x1, y1) with an exclusive
// maximum, clipped to the grid.
func Quadrilateral(x0, y0, x1, y1 int) mask.Predicate {
	return func(grid [][]int) [][]int {
		y0, y1 := max(y0, 0), min(y1, len(grid))
		var out [][]int
		for y := y0; y < y1; y++ {
			row := grid[y]
			a, b := max(x0, 0), min(x1, len(row))
			if a < b {
				out = append(out, row[a:b])
			}
		}
		return out
	}
}

// Percentage selects the centred rectangle spanning fraction px of the
// width and py of the length. Fractions are clamped to [0, 1].
func Percentage(px, py float64) mask.Predicate {
	px, py = clamp(px), clamp(py)
	return func(grid [][]int) [][]int {
		l, w := len(grid), gridWidth(grid)
		sw, sl := int(float64(w)*px), int(float64(l)*py)
		x0, y0 := (w-sw)/2, (l-sl)/2
		return Quadrilateral(x0, y0, x0+sw, y0+sl)(grid)
	}
}

func clamp(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
