// Package canvas provides the grid abstraction at the bottom of tessera.
//
// # Overview
//
// A [Canvas] owns a flat, row-major array of [Cell] values and a [Size].
// Every cell is either open (it carries no data) or assigned (it carries a
// value of type T). Open cells are an explicit state of the [Cell] variant
// rather than a reserved data value, so a black pixel or a zero integer is
// never mistaken for "no data".
//
//	c, err := canvas.New([]int{0, 1, 2, 3}, canvas.Size{Width: 2, Length: 2})
//	cell, err := c.Get(image.Pt(1, 0)) // Assigned(1)
//
// # Coordinates
//
// Points use [image.Point] and regions use [image.Rectangle] with an
// exclusive maximum. A point (x, y) is valid iff 0 <= x < Width and
// 0 <= y < Length; it maps to the flat index x + y*Width. Any 2D access with
// an invalid point fails with an OUT_OF_RANGE error. Flat indices are used
// as-is, like slice indices.
//
// # Surfaces
//
// [Surface] is the minimal read/write contract shared by [Canvas] and the
// layer package's Layer. The mask package's region algebra operates on any
// Surface.
//
// # Insertion
//
// [Canvas.Insert] copies one canvas into another at a corner. Open cells of
// the source never overwrite the destination. Cells landing outside the
// destination are dropped, or, in strict mode, abort the whole insert with a
// DOES_NOT_FIT error before anything is written.
package canvas
