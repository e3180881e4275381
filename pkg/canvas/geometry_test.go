package canvas

import (
	"image"
	"testing"

	"github.com/matzehuels/tessera/pkg/errors"
)

func TestIndexPointRoundTrip(t *testing.T) {
	sizes := []Size{{1, 1}, {3, 2}, {2, 3}, {7, 5}, {16, 1}, {1, 16}}
	for _, s := range sizes {
		t.Run(s.String(), func(t *testing.T) {
			for y := range s.Length {
				for x := range s.Width {
					p := image.Pt(x, y)
					i, err := s.Index(p)
					if err != nil {
						t.Fatalf("Index(%v): %v", p, err)
					}
					if i != x+y*s.Width {
						t.Errorf("Index(%v) = %d, want %d", p, i, x+y*s.Width)
					}
					if got := s.Point(i); got != p {
						t.Errorf("Point(Index(%v)) = %v", p, got)
					}
				}
			}
		})
	}
}

func TestIndexOutOfRange(t *testing.T) {
	s := Size{Width: 4, Length: 3}
	for _, p := range []image.Point{{4, 0}, {0, 3}, {-1, 0}, {0, -1}, {4, 3}} {
		if _, err := s.Index(p); !errors.Is(err, errors.ErrCodeOutOfRange) {
			t.Errorf("Index(%v) error = %v, want OUT_OF_RANGE", p, err)
		}
	}
}

func TestValidateRect(t *testing.T) {
	tests := []struct {
		name    string
		r       image.Rectangle
		wantErr bool
	}{
		{"normal", Rect(0, 0, 2, 2), false},
		{"empty", Rect(3, 3, 3, 3), false},
		{"negative origin", Rect(-2, -2, 1, 1), false},
		{"inverted x", Rect(2, 0, 1, 2), true},
		{"inverted y", Rect(0, 2, 2, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRect(tt.r)
			if tt.wantErr != (err != nil) {
				t.Fatalf("ValidateRect(%v) = %v, wantErr %v", tt.r, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeRange) {
				t.Errorf("error code = %q, want RANGE_ERROR", errors.GetCode(err))
			}
		})
	}
}

func TestWithin(t *testing.T) {
	s := Size{Width: 4, Length: 4}
	if !Within(Rect(0, 0, 4, 4), s) {
		t.Error("full bounds should be within")
	}
	if Within(Rect(-1, 0, 2, 2), s) {
		t.Error("negative origin should not be within")
	}
	if Within(Rect(2, 2, 5, 4), s) {
		t.Error("overhanging region should not be within")
	}
}

func TestSizeOfKeepsSign(t *testing.T) {
	if got := SizeOf(Rect(3, 1, 1, 4)); got != (Size{Width: -2, Length: 3}) {
		t.Errorf("SizeOf inverted rect = %v", got)
	}
}
