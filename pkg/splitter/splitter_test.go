package splitter

import (
	"image"
	"slices"
	"testing"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/errors"
)

func grid(t *testing.T, w, l int) *canvas.Canvas[int] {
	t.Helper()
	values := make([]int, w*l)
	for i := range values {
		values[i] = i
	}
	c, err := canvas.New(values, canvas.Size{Width: w, Length: l})
	if err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	return c
}

func TestPortionInside(t *testing.T) {
	s := New(grid(t, 4, 4))
	child, err := s.Portion(canvas.Rect(1, 1, 3, 4))
	if err != nil {
		t.Fatalf("Portion: %v", err)
	}
	if child.Size() != (canvas.Size{Width: 2, Length: 3}) {
		t.Errorf("Size = %v", child.Size())
	}
	if got := child.Values(); !slices.Equal(got, []int{5, 6, 9, 10, 13, 14}) {
		t.Errorf("Values = %v", got)
	}
	if s.Len() != 1 || s.Regions()[0].Origin != image.Pt(1, 1) {
		t.Errorf("stack = %+v", s.Regions())
	}
}

func TestPortionStraddlesEdge(t *testing.T) {
	s := New(grid(t, 3, 3))
	child, err := s.Portion(canvas.Rect(-1, 2, 1, 4))
	if err != nil {
		t.Fatalf("Portion: %v", err)
	}
	// Only (0,2) of the parent lies inside the box.
	if got := child.Assigned(); !slices.Equal(got, []int{1}) {
		t.Errorf("assigned = %v, want [1]", got)
	}
	if v, _ := child.At(1).Value(); v != 6 {
		t.Errorf("child[1] = %d, want 6", v)
	}

	outside, err := s.Portion(canvas.Rect(10, 10, 12, 11))
	if err != nil {
		t.Fatalf("Portion outside: %v", err)
	}
	if !outside.IsRedundant() {
		t.Error("region outside the parent should be all open")
	}
}

func TestPortionInverted(t *testing.T) {
	s := New(grid(t, 3, 3))
	if _, err := s.Portion(canvas.Rect(2, 0, 1, 1)); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("error = %v, want RANGE_ERROR", err)
	}
	if s.Len() != 0 {
		t.Error("failed portion must not push")
	}
}

func TestRoundTrip(t *testing.T) {
	boxes := []image.Rectangle{
		canvas.Rect(0, 0, 4, 3),
		canvas.Rect(1, 1, 2, 2),
		canvas.Rect(3, 0, 4, 3),
		canvas.Rect(2, 2, 2, 2),
	}
	for _, bbox := range boxes {
		parent := grid(t, 4, 3)
		parent.SetAt(5, canvas.Open[int]())
		before := parent.Clone()

		s := New(parent)
		if _, err := s.Portion(bbox); err != nil {
			t.Fatalf("Portion(%v): %v", bbox, err)
		}
		if err := s.Unscope(0); err != nil {
			t.Fatalf("Unscope: %v", err)
		}
		if !canvas.Equal(parent, before) {
			t.Errorf("round trip through %v changed parent:\n%v", bbox, parent)
		}
	}
}

func TestUnscopeErrors(t *testing.T) {
	s := New(grid(t, 2, 2))
	if err := s.Unscope(0); !errors.Is(err, errors.ErrCodeOutOfRange) {
		t.Errorf("empty stack error = %v, want OUT_OF_RANGE", err)
	}
	if _, err := s.Portion(canvas.Rect(0, 0, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Unscope(1); !errors.Is(err, errors.ErrCodeOutOfRange) {
		t.Errorf("bad index error = %v, want OUT_OF_RANGE", err)
	}
}

func TestUnscopeAllOrder(t *testing.T) {
	parent := grid(t, 2, 1)
	s := New(parent)
	first, _ := s.Portion(canvas.Rect(0, 0, 1, 1))
	second, _ := s.Portion(canvas.Rect(0, 0, 1, 1))
	first.SetAt(0, canvas.Assigned(100))
	second.SetAt(0, canvas.Assigned(200))

	if err := s.UnscopeAll(); err != nil {
		t.Fatal(err)
	}
	// The later extraction is reinserted last and wins.
	if v, _ := parent.At(0).Value(); v != 200 {
		t.Errorf("parent[0] = %d, want 200", v)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after UnscopeAll", s.Len())
	}
}

func TestCrackCoverage(t *testing.T) {
	for w := 1; w <= 6; w++ {
		for l := 1; l <= 5; l++ {
			for n := 1; n <= w; n++ {
				for m := 1; m <= l; m++ {
					s := New(grid(t, w, l))
					seq, err := s.Crack(n, m)
					if err != nil {
						t.Fatalf("Crack(%d, %d) on %dx%d: %v", n, m, w, l, err)
					}
					count := make([]int, w*l)
					regions := 0
					for range seq {
						regions++
					}
					for _, r := range s.Regions() {
						for _, v := range r.Canvas.Values() {
							count[v]++
						}
					}
					if regions != n*m {
						t.Fatalf("Crack(%d, %d) on %dx%d yielded %d regions", n, m, w, l, regions)
					}
					for i, c := range count {
						if c != 1 {
							t.Fatalf("Crack(%d, %d) on %dx%d covers cell %d %d times", n, m, w, l, i, c)
						}
					}
				}
			}
		}
	}
}

func TestCrackTooMany(t *testing.T) {
	s := New(grid(t, 2, 2))
	if _, err := s.Crack(3, 1); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("error = %v, want RANGE_ERROR", err)
	}
}

func TestCrackQuadrants(t *testing.T) {
	parent := grid(t, 4, 4)
	s := New(parent)
	seq, err := s.Crack(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	for q := range seq {
		if err := q.Rearrange(func(v []int) []int {
			out := slices.Clone(v)
			slices.Reverse(out)
			return out
		}); err != nil {
			t.Fatal(err)
		}
	}

	var origins []image.Point
	quadrants := make(map[image.Point][]int)
	for _, r := range s.Regions() {
		if r.Canvas.Size() != (canvas.Size{Width: 2, Length: 2}) {
			t.Errorf("region at %v has size %v", r.Origin, r.Canvas.Size())
		}
		origins = append(origins, r.Origin)
		quadrants[r.Origin] = slices.Sorted(slices.Values(r.Canvas.Values()))
	}
	want := []image.Point{image.Pt(0, 0), image.Pt(2, 0), image.Pt(0, 2), image.Pt(2, 2)}
	if !slices.Equal(origins, want) {
		t.Fatalf("origins = %v, want %v", origins, want)
	}

	if err := s.UnscopeAll(); err != nil {
		t.Fatal(err)
	}
	if got := slices.Sorted(slices.Values(parent.Values())); !slices.Equal(got, grid(t, 4, 4).Values()) {
		t.Errorf("multiset changed: %v", got)
	}
	s2 := New(parent)
	for _, origin := range want {
		q, _ := s2.Portion(canvas.Region(origin, canvas.Size{Width: 2, Length: 2}))
		if got := slices.Sorted(slices.Values(q.Values())); !slices.Equal(got, quadrants[origin]) {
			t.Errorf("quadrant %v holds %v, want %v", origin, got, quadrants[origin])
		}
	}
	if got := parent.Values()[:4]; !slices.Equal(got, []int{5, 4, 7, 6}) {
		t.Errorf("top rows = %v, want [5 4 7 6]", got)
	}
}

func TestFragment(t *testing.T) {
	s := New(grid(t, 5, 3))
	seq, err := s.Fragment(canvas.Size{Width: 2, Length: 2}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	var origins []image.Point
	for range seq {
		origins = append(origins, s.Regions()[s.Len()-1].Origin)
	}
	want := []image.Point{
		image.Pt(0, 0), image.Pt(2, 0), image.Pt(4, 0),
		image.Pt(0, 2), image.Pt(2, 2), image.Pt(4, 2),
	}
	if !slices.Equal(origins, want) {
		t.Errorf("origins = %v, want %v", origins, want)
	}
	// The last tile runs past both edges.
	last := s.Regions()[5].Canvas
	if got := last.Assigned(); !slices.Equal(got, []int{0}) {
		t.Errorf("edge tile assigned = %v, want [0]", got)
	}
}

func TestFragmentPadded(t *testing.T) {
	s := New(grid(t, 6, 1))
	seq, err := s.Fragment(canvas.Size{Width: 1, Length: 1}, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	var values []int
	for c := range seq {
		values = append(values, c.Values()...)
	}
	if !slices.Equal(values, []int{0, 3}) {
		t.Errorf("values = %v, want [0 3]", values)
	}
}

func TestFragmentYieldsEveryTile(t *testing.T) {
	for w := 1; w <= 4; w++ {
		for l := 1; l <= 4; l++ {
			s := New(grid(t, 5, 3))
			seq, err := s.Fragment(canvas.Size{Width: w, Length: l}, 0, 0)
			if err != nil {
				t.Fatal(err)
			}
			yielded := 0
			for range seq {
				yielded++
			}
			want := ((5 + w - 1) / w) * ((3 + l - 1) / l)
			if yielded != want || s.Len() != want {
				t.Errorf("Fragment(%dx%d) yielded %d, pending %d, want %d", w, l, yielded, s.Len(), want)
			}
		}
	}
}

func TestFragmentErrors(t *testing.T) {
	s := New(grid(t, 4, 4))
	if _, err := s.Fragment(canvas.Size{Width: 0, Length: 1}, 0, 0); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("zero tile error = %v, want RANGE_ERROR", err)
	}
	if _, err := s.Fragment(canvas.Size{Width: 1, Length: 1}, -1, 0); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("negative padding error = %v, want RANGE_ERROR", err)
	}
}

func TestFragmentIsLazy(t *testing.T) {
	s := New(grid(t, 4, 4))
	seq, err := s.Fragment(canvas.Size{Width: 1, Length: 1}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Fatal("Fragment extracted before iteration")
	}
	for range seq {
		break
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d after one step, want 1", s.Len())
	}
}

func TestFragmentFillIn(t *testing.T) {
	s := New(grid(t, 7, 1))
	seq, err := s.FragmentFillIn(canvas.Size{Width: 1, Length: 1}, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	var values []int
	for c := range seq {
		values = append(values, c.Values()...)
	}
	if !slices.Equal(values, []int{0, 3, 6}) {
		t.Errorf("values = %v, want [0 3 6]", values)
	}

	if _, err := s.FragmentFillIn(canvas.Size{Width: 3, Length: 1}, 3, 1); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("overfull error = %v, want RANGE_ERROR", err)
	}
}
