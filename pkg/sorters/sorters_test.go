package sorters

import (
	"image/color"
	"slices"
	"testing"

	"github.com/matzehuels/tessera/pkg/errors"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	grey  = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

func palette() []color.NRGBA {
	return []color.NRGBA{white, blue, grey, red, black, green}
}

func sameMultiset(a, b []color.NRGBA) bool {
	key := func(c color.NRGBA) uint32 {
		return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
	}
	ka, kb := make([]uint32, len(a)), make([]uint32, len(b))
	for i := range a {
		ka[i] = key(a[i])
	}
	for i := range b {
		kb[i] = key(b[i])
	}
	slices.Sort(ka)
	slices.Sort(kb)
	return slices.Equal(ka, kb)
}

func TestSortersAreReorderings(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Lookup(name)
			if err != nil {
				t.Fatal(err)
			}
			in := palette()
			out := s(in)
			if !sameMultiset(in, out) {
				t.Errorf("%s changed the values: %v -> %v", name, in, out)
			}
			if !slices.Equal(in, palette()) {
				t.Errorf("%s modified its input", name)
			}
		})
	}
}

func TestYIQOrdersByLuma(t *testing.T) {
	got := YIQ(palette())
	if got[0] != black || got[len(got)-1] != white {
		t.Errorf("YIQ = %v, want black first and white last", got)
	}
	if got[1] != blue {
		t.Errorf("YIQ[1] = %v, want blue (lowest luma colour)", got[1])
	}
}

func TestHSVOrdersByHue(t *testing.T) {
	got := HSV([]color.NRGBA{blue, green, red})
	if !slices.Equal(got, []color.NRGBA{red, green, blue}) {
		t.Errorf("HSV = %v", got)
	}
}

func TestRound(t *testing.T) {
	got := Round([]color.NRGBA{white, red, black})
	if !slices.Equal(got, []color.NRGBA{black, red, white}) {
		t.Errorf("Round = %v", got)
	}
}

func TestStable(t *testing.T) {
	a := color.NRGBA{R: 10, A: 255}
	b := color.NRGBA{R: 10, A: 0}
	got := Round([]color.NRGBA{a, b, a})
	if !slices.Equal(got, []color.NRGBA{a, b, a}) {
		t.Errorf("equal keys were reordered: %v", got)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	in := palette()
	if !slices.Equal(Shuffle(7)(in), Shuffle(7)(in)) {
		t.Error("same seed produced different orders")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"step:12", "gradient-step:4", "shuffle:42"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	for _, name := range []string{"hilbert", "step:0", "step:x", "shuffle:-1", "yiq:2", "", "YIQ", ":4", "-step:4"} {
		if _, err := Lookup(name); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Lookup(%q) error = %v, want INVALID_INPUT", name, err)
		}
	}
}
