// Package pkg provides the core libraries for Tessera pixel rearrangement.
//
// # Overview
//
// Tessera treats an image as a grid of cells, each either holding a pixel
// or open. Regions of the grid are selected with masks or cut into tiles,
// the pixels inside each region are reordered by colour, and the regions are
// written back. Several images can be merged into collages or packed into a
// rectangle without gaps.
//
// The pkg directory is organized into three areas:
//
//  1. Geometry - [canvas], [mask], [line], [perm]
//  2. Operations - [layer], [splitter], [merger], [shapes], [sorters]
//  3. Plumbing - [codec], [recipe], [pipeline], [cache], [observability], [errors]
//
// # Architecture
//
// The typical data flow:
//
//	image file
//	     ↓
//	[codec] (decode to *canvas.Canvas[color.NRGBA])
//	     ↓
//	[layer] or [splitter] (select regions)
//	     ↓
//	[sorters] (rearrange the values of each region)
//	     ↓
//	Unscope (write regions back to the parent)
//	     ↓
//	[codec] (encode)
//
// # Quick Start
//
// Sort the pixels inside a centred circle of an image:
//
//	img, _ := codec.Load("photo.png")
//	l := layer.New(img)
//	_ = l.ShapeAndRearrange(shapes.Circle, sorters.HSV)
//	_ = l.Unscope()
//	_ = codec.Save("photo.circle.png", img)
//
// Sort every tile of a 4x4 grid independently:
//
//	s := splitter.New(img)
//	tiles, _ := s.Crack(4, 4)
//	for tile := range tiles {
//	    _ = tile.Rearrange(sorters.YIQ)
//	}
//	_ = s.UnscopeAll()
//
// # Main Packages
//
// ## Geometry
//
// [canvas] - Generic row-major grids of cells. A cell is open or holds a
// value; [canvas.Surface] is the interface shared by canvases and layers.
//
// [mask] - Position sets, shape predicates over position grids, and the
// region algebra a layer uses to pull cells from its parent.
//
// [line] - One-dimensional placement: padded segments, exact fill-ins and
// alignment offsets. Splitters and mergers use it along each axis.
//
// [perm] - Bounded, lazily generated permutations for the packing search.
//
// ## Operations
//
// [layer] - A masked working copy of a canvas. Edits land on the copy and
// are committed to the parent by Unscope.
//
// [splitter] - Rectangular regions of a canvas: portions, fragments, grid
// fill-ins and cracks.
//
// [merger] - Combines canvases: lateral collages and exact-fit searches
// bounded by a [merger.Budget].
//
// [shapes] - Ready-made mask predicates: circle, triangle, rectangles and
// reorientations.
//
// [sorters] - Colour orderings: YIQ, HSV, HLS, raw channels, hue-band step
// sorts and seeded shuffles.
//
// ## Plumbing
//
// [codec] - PNG, JPEG, GIF, BMP, TIFF and WebP decoding to pixel canvases.
//
// [recipe] - TOML and YAML descriptions of multi-step effects.
//
// [pipeline] - Runs recipes: load, apply steps in order, save. Used by the
// CLI for every single-image command.
//
// [cache] - File-backed cache for pack search results.
//
// [observability] - Hooks for pipeline runs, searches and image I/O.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/merger/...   # Specific package
//	go test -run Example ./... # Examples only
//
// [canvas]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/canvas
// [mask]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/mask
// [line]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/line
// [perm]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/perm
// [layer]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/layer
// [splitter]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/splitter
// [merger]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/merger
// [shapes]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/shapes
// [sorters]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/sorters
// [codec]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/codec
// [recipe]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/recipe
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tessera/pkg/errors
package pkg
