package merger

import (
	"cmp"
	"context"
	"image"
	"iter"
	"maps"
	"slices"
	"time"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/errors"
	"github.com/matzehuels/tessera/pkg/perm"
)

// DefaultMaxPermutations is 7!, enough to search every ordering of seven
// canvases.
const DefaultMaxPermutations = 5040

// progressEvery is how many permutations pass between Progress calls.
const progressEvery = 512

// Budget bounds an exact-fit search. MaxPermutations is required; the
// search stops after that many orderings have been tried, after Timeout
// has elapsed (if set), or when the context is done, whichever comes first.
type Budget struct {
	MaxPermutations int
	Timeout         time.Duration

	// DistinctShapes skips orderings that differ from an earlier one only
	// by swapping sources of equal size. The geometry of the resulting
	// tilings is the same; only which source lands where changes.
	DistinctShapes bool

	// Progress, if set, is called periodically and once when the search
	// ends, with the number of orderings tried and tilings found so far.
	Progress func(explored, found int)
}

// Validate checks that the budget bounds the search.
func (b Budget) Validate() error {
	if b.MaxPermutations <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "search budget needs a positive permutation limit, got %d", b.MaxPermutations)
	}
	if b.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "search timeout must be non-negative, got %v", b.Timeout)
	}
	return nil
}

// Tiling is one successful exact-fit arrangement. Order lists source
// indices in placement order and Placements[k] is the corner at which
// source Order[k] was inserted. Canvas is the filled target.
type Tiling[T any] struct {
	Order      []int
	Placements []image.Point
	Canvas     *canvas.Canvas[T]
}

// search carries the budget state shared by every target of one call.
type search struct {
	ctx      context.Context
	budget   Budget
	deadline time.Time
	explored int
	found    int
}

func newSearch(ctx context.Context, b Budget) *search {
	s := &search{ctx: ctx, budget: b}
	if b.Timeout > 0 {
		s.deadline = time.Now().Add(b.Timeout)
	}
	return s
}

// next reports whether another ordering may be tried.
func (s *search) next() bool {
	if s.explored >= s.budget.MaxPermutations || s.ctx.Err() != nil {
		return false
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return false
	}
	s.explored++
	if s.budget.Progress != nil && s.explored%progressEvery == 0 {
		s.budget.Progress(s.explored, s.found)
	}
	return true
}

func (s *search) done() {
	if s.budget.Progress != nil {
		s.budget.Progress(s.explored, s.found)
	}
}

func (m *Merger[T]) area() int {
	total := 0
	for _, c := range m.sources {
		total += c.Size().Area()
	}
	return total
}

func (m *Merger[T]) orders(b Budget) iter.Seq[[]int] {
	if !b.DistinctShapes {
		return perm.All(len(m.sources))
	}
	return perm.Distinct(len(m.sources), func(i int) canvas.Size { return m.sources[i].Size() })
}

// FillInCanvas searches orderings of the sources for arrangements that
// cover every open cell of target exactly once. For each ordering, sources
// are placed one by one at the first open cell (row-major) of a working
// copy; an ordering fails as soon as a source would leave the target or
// overlap an earlier one. Successful arrangements are yielded as they are
// found; target itself is never modified.
//
// The summed source area must equal target's open cell count, or
// FillInCanvas fails with SIZE_MISMATCH before searching. An invalid budget
// fails with INVALID_INPUT.
func (m *Merger[T]) FillInCanvas(ctx context.Context, target *canvas.Canvas[T], budget Budget) (iter.Seq[Tiling[T]], error) {
	if err := budget.Validate(); err != nil {
		return nil, err
	}
	if err := m.checkArea(target); err != nil {
		return nil, err
	}
	return func(yield func(Tiling[T]) bool) {
		s := newSearch(ctx, budget)
		defer s.done()
		m.pack(s, target, yield)
	}, nil
}

func (m *Merger[T]) checkArea(target *canvas.Canvas[T]) error {
	open := len(target.Excluded())
	if total := m.area(); total != open {
		return errors.New(errors.ErrCodeSizeMismatch, "sources cover %d cells, target has %d open", total, open)
	}
	return nil
}

// pack runs the ordering search for one target. It returns false when the
// consumer stopped iterating.
func (m *Merger[T]) pack(s *search, target *canvas.Canvas[T], yield func(Tiling[T]) bool) bool {
	for order := range m.orders(s.budget) {
		if !s.next() {
			return true
		}
		work, placements, ok := m.place(target, order)
		if !ok {
			continue
		}
		s.found++
		t := Tiling[T]{Order: slices.Clone(order), Placements: placements, Canvas: work}
		if !yield(t) {
			return false
		}
	}
	return true
}

// place inserts the sources in order at successive first open cells of a
// copy of target. It reports whether the copy ends with no open cells.
func (m *Merger[T]) place(target *canvas.Canvas[T], order []int) (*canvas.Canvas[T], []image.Point, bool) {
	work := target.Clone()
	placements := make([]image.Point, len(order))
	for k, idx := range order {
		src := m.sources[idx]
		if src.Len() == 0 {
			continue
		}
		free := work.Excluded()
		if len(free) == 0 {
			return nil, nil, false
		}
		corner := work.Size().Point(free[0])
		// A DOES_NOT_FIT here rejects this ordering only.
		if err := work.Insert(src, corner, true); err != nil {
			return nil, nil, false
		}
		// Insert overwrites assigned cells; a short drop in open cells
		// means src overlapped an earlier placement.
		if len(work.Excluded()) != len(free)-len(src.Assigned()) {
			return nil, nil, false
		}
		placements[k] = corner
	}
	return work, placements, len(work.Excluded()) == 0
}

// Replay rebuilds a tiling from an order and placements recorded by an
// earlier search, without searching. The result must cover every open cell
// of target exactly once.
func (m *Merger[T]) Replay(target *canvas.Canvas[T], order []int, placements []image.Point) (Tiling[T], error) {
	if len(order) != len(placements) {
		return Tiling[T]{}, errors.New(errors.ErrCodeSizeMismatch, "%d sources but %d placements", len(order), len(placements))
	}
	work := target.Clone()
	for k, idx := range order {
		if idx < 0 || idx >= len(m.sources) {
			return Tiling[T]{}, errors.New(errors.ErrCodeRange, "source index %d out of range [0, %d)", idx, len(m.sources))
		}
		free := len(work.Excluded())
		src := m.sources[idx]
		if err := work.Insert(src, placements[k], true); err != nil {
			return Tiling[T]{}, err
		}
		if len(work.Excluded()) != free-len(src.Assigned()) {
			return Tiling[T]{}, errors.New(errors.ErrCodeDoesNotFit, "source %d overlaps an earlier placement at %v", idx, placements[k])
		}
	}
	if open := len(work.Excluded()); open != 0 {
		return Tiling[T]{}, errors.New(errors.ErrCodeDoesNotFit, "%d cells left open", open)
	}
	return Tiling[T]{Order: slices.Clone(order), Placements: slices.Clone(placements), Canvas: work}, nil
}

// FindFillIn discovers target sizes the sources can tile exactly and
// searches each with FillInCanvas, sharing one budget across all of them.
// Candidate widths are the distinct sums of subsets of the source widths;
// the length follows from the total area. A candidate is skipped when the
// area does not divide evenly or some source is wider or longer than the
// target. Candidates are tried narrowest first.
func (m *Merger[T]) FindFillIn(ctx context.Context, budget Budget) (iter.Seq[Tiling[T]], error) {
	if err := budget.Validate(); err != nil {
		return nil, err
	}
	sizes := m.CandidateSizes()
	if len(sizes) == 0 {
		return nil, errors.New(errors.ErrCodeSizeMismatch, "no target size can hold %d source cells", m.area())
	}
	return func(yield func(Tiling[T]) bool) {
		s := newSearch(ctx, budget)
		defer s.done()
		for _, size := range sizes {
			if !m.pack(s, canvas.FromEmptySize[T](size), yield) {
				return
			}
			if s.explored >= budget.MaxPermutations || ctx.Err() != nil {
				return
			}
		}
	}, nil
}

// CandidateSizes returns the target sizes FindFillIn searches, narrowest
// first.
func (m *Merger[T]) CandidateSizes() []canvas.Size {
	total := m.area()
	if total == 0 {
		return nil
	}
	maxW, maxL := 0, 0
	for _, c := range m.sources {
		maxW, maxL = max(maxW, c.Width()), max(maxL, c.Length())
	}

	sums := map[int]struct{}{0: {}}
	for _, w := range m.Widths() {
		for _, s := range slices.Collect(maps.Keys(sums)) {
			sums[s+w] = struct{}{}
		}
	}

	var out []canvas.Size
	for w := range sums {
		if w == 0 || w < maxW || total%w != 0 {
			continue
		}
		if l := total / w; l >= maxL {
			out = append(out, canvas.Size{Width: w, Length: l})
		}
	}
	slices.SortFunc(out, func(a, b canvas.Size) int { return cmp.Compare(a.Width, b.Width) })
	return out
}
