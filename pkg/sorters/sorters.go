// Package sorters reorders pixel values by colour.
//
// A [Sorter] takes a run of pixels and returns the same pixels in a new
// order. Sorters are the rearrange functions passed to canvas, layer and
// splitter regions:
//
//	layer.Rearrange(sorters.HSV)
//
// All key-based sorters are stable: pixels with equal keys keep their
// relative order. Colour-space conversions go through go-colorful; alpha is
// ignored.
package sorters

import (
	"cmp"
	"image/color"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Sorter returns its input reordered. It never adds or drops values.
type Sorter func([]color.NRGBA) []color.NRGBA

// key is a lexicographically compared sort key.
type key [3]float64

func compareKeys(a, b key) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// byKey builds a stable Sorter from a per-pixel key.
func byKey(fn func(colorful.Color, color.NRGBA) key) Sorter {
	return func(in []color.NRGBA) []color.NRGBA {
		type keyed struct {
			k key
			c color.NRGBA
		}
		ks := make([]keyed, len(in))
		for i, c := range in {
			ks[i] = keyed{fn(toColorful(c), c), c}
		}
		slices.SortStableFunc(ks, func(a, b keyed) int { return compareKeys(a.k, b.k) })
		out := make([]color.NRGBA, len(in))
		for i, k := range ks {
			out[i] = k.c
		}
		return out
	}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// yiq converts RGB in [0, 1] to the NTSC YIQ space.
func yiq(c colorful.Color) key {
	y := 0.30*c.R + 0.59*c.G + 0.11*c.B
	i := 0.74*(c.R-y) - 0.27*(c.B-y)
	q := 0.48*(c.R-y) + 0.41*(c.B-y)
	return key{y, i, q}
}

// hsv returns hue in [0, 1), saturation and value.
func hsv(c colorful.Color) (h, s, v float64) {
	h, s, v = c.Hsv()
	return h / 360, s, v
}

// YIQ sorts by luma, then the I and Q chroma components.
var YIQ Sorter = byKey(func(c colorful.Color, _ color.NRGBA) key { return yiq(c) })

// HSV sorts by hue, then saturation, then value.
var HSV Sorter = byKey(func(c colorful.Color, _ color.NRGBA) key {
	h, s, v := hsv(c)
	return key{h, s, v}
})

// HLS sorts by hue, then lightness, then saturation.
var HLS Sorter = byKey(func(c colorful.Color, _ color.NRGBA) key {
	h, s, l := c.Hsl()
	return key{h / 360, l, s}
})

// Round sorts by the raw 8-bit channels, red first.
var Round Sorter = byKey(func(_ colorful.Color, c color.NRGBA) key {
	return key{float64(c.R), float64(c.G), float64(c.B)}
})

// DefaultRepetitions is the number of hue bands used by StepSort and
// GradientStepSort.
const DefaultRepetitions = 8

func step(c colorful.Color, repetitions int) (band, lum, value float64) {
	reps := float64(repetitions)
	lum = math.Sqrt(0.241*c.R + 0.691*c.G + 0.068*c.B)
	h, _, v := hsv(c)
	return math.Floor(h * reps), lum, math.Floor(v * reps)
}

// StepSort groups pixels into hue bands, then sorts each band by perceived
// luminance and quantised value.
func StepSort(repetitions int) Sorter {
	return byKey(func(c colorful.Color, _ color.NRGBA) key {
		band, lum, value := step(c, repetitions)
		return key{band, lum, value}
	})
}

// GradientStepSort is StepSort with every odd band reversed, so adjacent
// bands meet at similar brightness.
func GradientStepSort(repetitions int) Sorter {
	return byKey(func(c colorful.Color, _ color.NRGBA) key {
		band, lum, value := step(c, repetitions)
		if int(band)%2 == 1 {
			reps := float64(repetitions)
			value, lum = reps-value, reps-lum
		}
		return key{band, lum, value}
	})
}

// Shuffle returns a Sorter that permutes pixels uniformly at random. The
// same seed always yields the same permutation for the same input length.
func Shuffle(seed uint64) Sorter {
	return func(in []color.NRGBA) []color.NRGBA {
		out := slices.Clone(in)
		r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}
}
