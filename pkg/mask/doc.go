// Package mask implements region algebra over grids of open and assigned
// cells.
//
// A region is the set of assigned positions of a [canvas.Surface]. [Algebra]
// edits that region with union, intersection, difference and invert, pulling
// values for newly assigned positions from a backing source surface. The
// layer package uses it with the layer as target and its parent canvas as
// source.
//
// Regions are usually produced by [Predicate] pipelines: pure functions over
// a grid's geometry (rows of flat indices) that are applied left to right
// with [Apply]. Order matters when predicates overlap; a pipeline such as
// (transpose, triangle) selects a different region than (triangle) alone.
package mask
