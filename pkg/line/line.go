// Package line places one-dimensional segments along a distance.
//
// The splitter and merger packages reduce 2D tiling to two independent 1D
// problems: where do the tiles start along the width, and where along the
// length. Every function here answers that question for one axis.
//
//	distance = 20, lengths = (3, 5, 4, 1, 2)
//	FillInLine -> "--- -----  ---- - --"  (gaps spread, ends at 20)
//	Padded(1)  -> "--- ----- ---- - --"   (fixed gap)
package line

import (
	"github.com/matzehuels/tessera/pkg/errors"
)

// Segment is a run of Length units starting at Start.
type Segment struct {
	Start  int
	Length int
}

// End returns the first position past the segment.
func (s Segment) End() int { return s.Start + s.Length }

func sum(lengths []int) int {
	total := 0
	for _, l := range lengths {
		total += l
	}
	return total
}

// Padded returns the start of each segment when segments are laid end to
// end with spacing units between neighbours.
func Padded(spacing int, lengths []int) []int {
	out := make([]int, len(lengths))
	pos := 0
	for i, l := range lengths {
		out[i] = pos
		pos += l + spacing
	}
	return out
}

// PaddedMaximum returns the starts of equal segments of length line placed
// every line+spacing units, for as long as the start lies before distance.
// The last segment may run past distance.
func PaddedMaximum(distance, spacing, line int) ([]int, error) {
	if line <= 0 {
		return nil, errors.New(errors.ErrCodeRange, "segment length must be positive, got %d", line)
	}
	if spacing < 0 {
		return nil, errors.New(errors.ErrCodeRange, "spacing must be non-negative, got %d", spacing)
	}
	var out []int
	for pos := 0; pos < distance; pos += line + spacing {
		out = append(out, pos)
	}
	return out, nil
}

// FillInLine spreads segments of the given lengths over distance so that
// the first starts at 0 and the gaps between neighbours are as even as
// possible. Leftover units that do not divide evenly are added to every
// segment starting at or past the midpoint. A single segment is centred.
//
// FillInLine fails with RANGE_ERROR when the segments are longer than
// distance.
func FillInLine(distance int, lengths []int) ([]int, error) {
	total := sum(lengths)
	if total > distance {
		return nil, errors.New(errors.ErrCodeRange, "segments of total length %d exceed distance %d", total, distance)
	}
	switch len(lengths) {
	case 0:
		return nil, nil
	case 1:
		return []int{(distance - lengths[0]) / 2}, nil
	}

	spacing := distance - total
	gap, leftover := spacing/(len(lengths)-1), spacing%(len(lengths)-1)

	out := Padded(gap, lengths)
	for i, pos := range out {
		if 2*pos >= distance {
			out[i] = pos + leftover
		}
	}
	return out, nil
}

// FindFillIn divides distance into n contiguous segments whose lengths
// differ by at most one. The first distance%n segments are one unit longer.
//
// FindFillIn fails with RANGE_ERROR when n is not positive or exceeds
// distance.
func FindFillIn(distance, n int) ([]Segment, error) {
	if n < 1 {
		return nil, errors.New(errors.ErrCodeRange, "segment count must be positive, got %d", n)
	}
	if distance < n {
		return nil, errors.New(errors.ErrCodeRange, "cannot divide distance %d into %d segments", distance, n)
	}

	base, extra := distance/n, distance%n
	lengths := make([]int, n)
	for i := range lengths {
		lengths[i] = base
		if i < extra {
			lengths[i]++
		}
	}

	starts := Padded(0, lengths)
	out := make([]Segment, n)
	for i := range out {
		out[i] = Segment{Start: starts[i], Length: lengths[i]}
	}
	return out, nil
}

// FillInShortcut is FillInLine for amount segments that all have length
// line.
func FillInShortcut(distance, line, amount int) ([]int, error) {
	if amount < 0 {
		return nil, errors.New(errors.ErrCodeRange, "segment count must be non-negative, got %d", amount)
	}
	lengths := make([]int, amount)
	for i := range lengths {
		lengths[i] = line
	}
	return FillInLine(distance, lengths)
}

// AlignStart returns a zero offset for every segment.
func AlignStart(lengths []int) []int {
	return make([]int, len(lengths))
}

// AlignEnd returns, for each segment, the offset that right-justifies it
// against the longest segment.
func AlignEnd(lengths []int) []int {
	if len(lengths) == 0 {
		return nil
	}
	longest := lengths[0]
	for _, l := range lengths[1:] {
		longest = max(longest, l)
	}
	out := make([]int, len(lengths))
	for i, l := range lengths {
		out[i] = longest - l
	}
	return out
}

// AlignCentre returns, for each segment, the offset that centres it against
// the longest segment. Odd gaps round towards the start.
func AlignCentre(lengths []int) []int {
	out := AlignEnd(lengths)
	for i := range out {
		out[i] /= 2
	}
	return out
}
