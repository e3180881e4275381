package line

import (
	"slices"
	"testing"

	"github.com/matzehuels/tessera/pkg/errors"
)

func TestPadded(t *testing.T) {
	got := Padded(1, []int{3, 5, 4, 1, 2})
	want := []int{0, 4, 10, 15, 17}
	if !slices.Equal(got, want) {
		t.Errorf("Padded = %v, want %v", got, want)
	}
}

func TestPaddedMaximum(t *testing.T) {
	tests := []struct {
		name                    string
		distance, spacing, line int
		want                    []int
	}{
		{"exact", 9, 0, 3, []int{0, 3, 6}},
		{"overhang", 10, 0, 3, []int{0, 3, 6, 9}},
		{"padded", 10, 2, 3, []int{0, 5}},
		{"empty distance", 0, 0, 3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PaddedMaximum(tt.distance, tt.spacing, tt.line)
			if err != nil {
				t.Fatalf("PaddedMaximum: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("PaddedMaximum = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := PaddedMaximum(10, 0, 0); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("zero line error = %v, want RANGE_ERROR", err)
	}
	if _, err := PaddedMaximum(10, -1, 2); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("negative spacing error = %v, want RANGE_ERROR", err)
	}
}

func TestFillInLine(t *testing.T) {
	tests := []struct {
		name     string
		distance int
		lengths  []int
		want     []int
	}{
		{"no gaps", 6, []int{2, 2, 2}, []int{0, 2, 4}},
		{"even gaps", 10, []int{2, 2, 2}, []int{0, 4, 8}},
		{"odd leftover goes past midpoint", 11, []int{2, 2, 2}, []int{0, 4, 9}},
		{"documented example", 20, []int{3, 5, 4, 1, 2}, []int{0, 4, 11, 16, 18}},
		{"single segment centred", 10, []int{4}, []int{3}},
		{"none", 5, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FillInLine(tt.distance, tt.lengths)
			if err != nil {
				t.Fatalf("FillInLine: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("FillInLine(%d, %v) = %v, want %v", tt.distance, tt.lengths, got, tt.want)
			}
		})
	}

	if _, err := FillInLine(5, []int{3, 3}); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("overfull error = %v, want RANGE_ERROR", err)
	}
}

func TestFindFillIn(t *testing.T) {
	tests := []struct {
		distance, n int
		want        []Segment
	}{
		{4, 2, []Segment{{0, 2}, {2, 2}}},
		{7, 3, []Segment{{0, 3}, {3, 2}, {5, 2}}},
		{5, 1, []Segment{{0, 5}}},
		{3, 3, []Segment{{0, 1}, {1, 1}, {2, 1}}},
	}
	for _, tt := range tests {
		got, err := FindFillIn(tt.distance, tt.n)
		if err != nil {
			t.Fatalf("FindFillIn(%d, %d): %v", tt.distance, tt.n, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("FindFillIn(%d, %d) = %v, want %v", tt.distance, tt.n, got, tt.want)
		}
	}

	for _, bad := range [][2]int{{3, 4}, {3, 0}, {3, -1}} {
		if _, err := FindFillIn(bad[0], bad[1]); !errors.Is(err, errors.ErrCodeRange) {
			t.Errorf("FindFillIn(%d, %d) error = %v, want RANGE_ERROR", bad[0], bad[1], err)
		}
	}
}

func TestFindFillInCoversDistance(t *testing.T) {
	for distance := 1; distance <= 30; distance++ {
		for n := 1; n <= distance; n++ {
			segs, err := FindFillIn(distance, n)
			if err != nil {
				t.Fatalf("FindFillIn(%d, %d): %v", distance, n, err)
			}
			pos := 0
			for _, s := range segs {
				if s.Start != pos {
					t.Fatalf("FindFillIn(%d, %d): gap before %v", distance, n, s)
				}
				if s.Length < distance/n || s.Length > distance/n+1 {
					t.Fatalf("FindFillIn(%d, %d): uneven segment %v", distance, n, s)
				}
				pos = s.End()
			}
			if pos != distance {
				t.Fatalf("FindFillIn(%d, %d) ends at %d", distance, n, pos)
			}
		}
	}
}

func TestFillInShortcut(t *testing.T) {
	got, err := FillInShortcut(10, 2, 3)
	if err != nil {
		t.Fatalf("FillInShortcut: %v", err)
	}
	if !slices.Equal(got, []int{0, 4, 8}) {
		t.Errorf("FillInShortcut = %v", got)
	}
	if _, err := FillInShortcut(5, 2, 3); !errors.Is(err, errors.ErrCodeRange) {
		t.Errorf("overfull shortcut error = %v, want RANGE_ERROR", err)
	}
}

func TestAlignment(t *testing.T) {
	lengths := []int{3, 5, 4, 1, 2}
	if got := AlignStart(lengths); !slices.Equal(got, []int{0, 0, 0, 0, 0}) {
		t.Errorf("AlignStart = %v", got)
	}
	if got := AlignEnd(lengths); !slices.Equal(got, []int{2, 0, 1, 4, 3}) {
		t.Errorf("AlignEnd = %v", got)
	}
	if got := AlignCentre(lengths); !slices.Equal(got, []int{1, 0, 0, 2, 1}) {
		t.Errorf("AlignCentre = %v", got)
	}
	if AlignEnd(nil) != nil {
		t.Error("AlignEnd(nil) should be nil")
	}
}
