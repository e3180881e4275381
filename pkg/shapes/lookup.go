package shapes

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/tessera/pkg/errors"
	"github.com/matzehuels/tessera/pkg/mask"
)

var registry = map[string]mask.Predicate{
	"circle":           Circle,
	"triangle":         Triangle,
	"vertical-lines":   VerticalLines,
	"horizontal-lines": HorizontalLines,
	"reversed":         Reversed,
}

// Names returns the registered shape names in sorted order, including the
// parameterised forms.
func Names() []string {
	names := make([]string, 0, len(registry)+2)
	for name := range registry {
		names = append(names, name)
	}
	names = append(names, "quad:x0,y0,x1,y1", "percentage:p[,q]")
	slices.Sort(names)
	return names
}

// Lookup resolves a shape by name. Besides the fixed names it accepts
// "quad:x0,y0,x1,y1" and "percentage:p" or "percentage:p,q".
func Lookup(name string) (mask.Predicate, error) {
	kind, args, ok := strings.Cut(name, ":")
	if err := errors.ValidateName("shape", kind); err != nil {
		return nil, err
	}
	if p, found := registry[name]; found {
		return p, nil
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown shape %q", name)
	}
	switch kind {
	case "quad":
		v, err := ints(args, 4)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "shape %q", name)
		}
		return Quadrilateral(v[0], v[1], v[2], v[3]), nil
	case "percentage":
		parts := strings.Split(args, ",")
		if len(parts) > 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "shape %q takes one or two fractions", name)
		}
		fs := make([]float64, len(parts))
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "shape %q", name)
			}
			fs[i] = f
		}
		if len(fs) == 1 {
			fs = append(fs, fs[0])
		}
		return Percentage(fs[0], fs[1]), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown shape %q", name)
}

func ints(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput, "want %d integers, got %d", n, len(parts))
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
