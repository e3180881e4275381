// Package merger assembles independent canvases into one.
//
// Two policies are available. Lateral fill ([Merger.FillInLateral],
// [Merger.Lateral]) lines canvases up along an axis with evenly spread
// gaps and aligns them on the cross axis. Exact-fit packing
// ([Merger.FillInCanvas], [Merger.FindFillIn]) searches orderings of the
// canvases for arrangements that cover a target with no gaps and no
// overlaps.
//
// Exact-fit packing is a brute-force search over permutations and grows
// factorially with the number of canvases, so every search runs under a
// caller-supplied [Budget].
package merger

import (
	"fmt"
	"image"
	"strings"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/errors"
	"github.com/matzehuels/tessera/pkg/line"
	"github.com/matzehuels/tessera/pkg/splitter"
)

// Axis selects the direction canvases are concatenated in.
type Axis int

const (
	// Horizontal places canvases side by side along the width.
	Horizontal Axis = iota
	// Vertical stacks canvases along the length.
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis parses "horizontal" or "vertical".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "horizontal", "h", "":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown axis %q (want horizontal or vertical)", s)
}

// Alignment positions canvases on the cross axis against the longest one.
type Alignment int

const (
	Start Alignment = iota
	Center
	End
)

func (a Alignment) String() string {
	switch a {
	case Start:
		return "start"
	case Center:
		return "center"
	case End:
		return "end"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses "start", "center" or "end".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "start", "":
		return Start, nil
	case "center", "centre":
		return Center, nil
	case "end":
		return End, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown alignment %q (want start, center or end)", s)
}

func (a Alignment) offsets(extents []int) []int {
	switch a {
	case Center:
		return line.AlignCentre(extents)
	case End:
		return line.AlignEnd(extents)
	}
	return line.AlignStart(extents)
}

// Merger holds the canvases to assemble. Sources are never modified; every
// placement works on clones.
type Merger[T any] struct {
	Axis      Axis
	Alignment Alignment

	sources []*canvas.Canvas[T]
}

// New creates a merger over sources, placed horizontally and start-aligned.
func New[T any](sources ...*canvas.Canvas[T]) *Merger[T] {
	return &Merger[T]{sources: sources}
}

// Sources returns the canvases in input order.
func (m *Merger[T]) Sources() []*canvas.Canvas[T] { return m.sources }

// Widths returns each source's width.
func (m *Merger[T]) Widths() []int {
	out := make([]int, len(m.sources))
	for i, c := range m.sources {
		out[i] = c.Width()
	}
	return out
}

// Lengths returns each source's length.
func (m *Merger[T]) Lengths() []int {
	out := make([]int, len(m.sources))
	for i, c := range m.sources {
		out[i] = c.Length()
	}
	return out
}

// Sizes returns each source's size.
func (m *Merger[T]) Sizes() []canvas.Size {
	out := make([]canvas.Size, len(m.sources))
	for i, c := range m.sources {
		out[i] = c.Size()
	}
	return out
}

func (m *Merger[T]) extents() (along, across []int) {
	if m.Axis == Vertical {
		return m.Lengths(), m.Widths()
	}
	return m.Widths(), m.Lengths()
}

// =============================================================================
// Lateral fill
// =============================================================================

// FillInLateral lays the sources out along Axis over a distance equal to
// their summed extents plus padding, spreading the padding evenly between
// neighbours, and aligns them on the cross axis. It returns a splitter over
// an all-open canvas sized to the bounding box of the placements, with a
// clone of every source pushed in input order; call UnscopeAll to paint
// them. Negative padding fails with RANGE_ERROR.
func (m *Merger[T]) FillInLateral(padding int) (*splitter.Splitter[T], error) {
	if padding < 0 {
		return nil, errors.New(errors.ErrCodeRange, "padding must be non-negative, got %d", padding)
	}
	along, across := m.extents()

	distance := padding
	for _, e := range along {
		distance += e
	}
	positions, err := line.FillInLine(distance, along)
	if err != nil {
		return nil, err
	}
	offsets := m.Alignment.offsets(across)

	corners := make([]image.Point, len(m.sources))
	var bounds image.Rectangle
	for i, src := range m.sources {
		if m.Axis == Vertical {
			corners[i] = image.Pt(offsets[i], positions[i])
		} else {
			corners[i] = image.Pt(positions[i], offsets[i])
		}
		bounds = bounds.Union(canvas.Region(corners[i], src.Size()))
	}
	// Union ignores empty rectangles; keep the origin in the box.
	bounds.Min = image.Point{}

	target := canvas.FromEmptySize[T](canvas.SizeOf(bounds))
	s := splitter.New(target)
	for i, src := range m.sources {
		s.Push(src.Clone(), corners[i])
	}
	return s, nil
}

// Lateral runs FillInLateral and reinserts every source, returning the
// assembled canvas.
func (m *Merger[T]) Lateral(padding int) (*canvas.Canvas[T], error) {
	s, err := m.FillInLateral(padding)
	if err != nil {
		return nil, err
	}
	if err := s.UnscopeAll(); err != nil {
		return nil, err
	}
	return s.Parent(), nil
}
