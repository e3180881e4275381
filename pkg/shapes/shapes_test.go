package shapes

import (
	"slices"
	"testing"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/errors"
	"github.com/matzehuels/tessera/pkg/mask"
)

func positions(w, l int) [][]int {
	return canvas.Positions(canvas.Size{Width: w, Length: l})
}

func selected(grid [][]int, preds ...mask.Predicate) []int {
	return mask.Apply(grid, preds...).Sorted()
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name  string
		w, l  int
		preds []mask.Predicate
		want  []int
	}{
		{"horizontal identity", 2, 2, []mask.Predicate{HorizontalLines}, []int{0, 1, 2, 3}},
		{"circle", 5, 5, []mask.Predicate{Circle}, []int{2, 6, 7, 8, 10, 11, 12, 13, 14, 16, 17, 18, 22}},
		{"triangle", 4, 4, []mask.Predicate{Triangle}, []int{1, 5, 6, 8, 9, 10, 12, 13, 14, 15}},
		{"quad", 4, 2, []mask.Predicate{Quadrilateral(1, 0, 3, 5)}, []int{1, 2, 5, 6}},
		{"quad clipped", 4, 2, []mask.Predicate{Quadrilateral(-1, -1, 1, 1)}, []int{0}},
		{"quad outside", 4, 2, []mask.Predicate{Quadrilateral(5, 5, 6, 6)}, []int{}},
		{"percentage", 4, 4, []mask.Predicate{Percentage(0.5, 0.5)}, []int{5, 6, 9, 10}},
		{"percentage clamped", 2, 2, []mask.Predicate{Percentage(3, 3)}, []int{0, 1, 2, 3}},
		{"transposed triangle", 4, 4, []mask.Predicate{VerticalLines, Triangle}, []int{4, 5, 9, 2, 6, 10, 3, 7, 11, 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selected(positions(tt.w, tt.l), tt.preds...)
			want := slices.Sorted(slices.Values(tt.want))
			if !slices.Equal(got, want) {
				t.Errorf("selected %v, want %v", got, want)
			}
		})
	}
}

func TestOrientation(t *testing.T) {
	grid := [][]int{{0, 1, 2}, {3, 4, 5}}
	if got := VerticalLines(grid); !slices.EqualFunc(got, [][]int{{0, 3}, {1, 4}, {2, 5}}, slices.Equal) {
		t.Errorf("VerticalLines = %v", got)
	}
	if got := Reversed(grid); !slices.EqualFunc(got, [][]int{{5, 4, 3}, {2, 1, 0}}, slices.Equal) {
		t.Errorf("Reversed = %v", got)
	}
	if grid[0][0] != 0 {
		t.Error("Reversed modified its input")
	}
}

func TestEmptyGrid(t *testing.T) {
	for name, p := range map[string]mask.Predicate{"circle": Circle, "triangle": Triangle} {
		if got := p(nil); len(got) != 0 {
			t.Errorf("%s(nil) = %v", name, got)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"circle", "triangle", "vertical-lines", "horizontal-lines", "reversed", "quad:0,0,1,1", "percentage:0.5", "percentage:0.5,0.25"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	for _, name := range []string{"hexagon", "quad:1,2", "quad:a,b,c,d", "percentage:x", "percentage:1,2,3", "", "Circle", ":0.5", "vertical lines"} {
		if _, err := Lookup(name); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Lookup(%q) error = %v, want INVALID_INPUT", name, err)
		}
	}
	if !slices.Contains(Names(), "circle") {
		t.Errorf("Names() = %v", Names())
	}
}
