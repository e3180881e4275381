package mask

import "github.com/matzehuels/tessera/pkg/canvas"

// Predicate maps a grid of positions (rows of flat indices) to the rows of
// positions it selects. Predicates depend only on the grid's geometry, never
// on cell values, and must be pure.
//
// A predicate may also reshape the grid (transpose, reverse) so that the
// next predicate in a pipeline sees a different orientation.
type Predicate func(grid [][]int) [][]int

// Apply threads grid through preds left to right and returns the union of
// the positions in the final grid. With no predicates the whole grid is
// selected.
func Apply(grid [][]int, preds ...Predicate) Set {
	for _, pred := range preds {
		grid = pred(grid)
	}
	out := make(Set)
	for _, row := range grid {
		for _, p := range row {
			out[p] = struct{}{}
		}
	}
	return out
}

// Select runs preds over the position grid of a grid of the given size.
func Select(size canvas.Size, preds ...Predicate) Set {
	return Apply(canvas.Positions(size), preds...)
}
