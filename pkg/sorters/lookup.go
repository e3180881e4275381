package sorters

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/tessera/pkg/errors"
)

var registry = map[string]Sorter{
	"yiq":           YIQ,
	"hsv":           HSV,
	"hls":           HLS,
	"round":         Round,
	"step":          StepSort(DefaultRepetitions),
	"gradient-step": GradientStepSort(DefaultRepetitions),
	"shuffle":       Shuffle(0),
}

// Names returns the registered sorter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup resolves a sorter by name. "step", "gradient-step" and "shuffle"
// accept a parameter after a colon: the band count or the seed, as in
// "step:12" or "shuffle:42".
func Lookup(name string) (Sorter, error) {
	kind, arg, ok := strings.Cut(name, ":")
	if err := errors.ValidateName("sorter", kind); err != nil {
		return nil, err
	}
	if s, found := registry[name]; found {
		return s, nil
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown sorter %q", name)
	}
	switch kind {
	case "step", "gradient-step":
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "sorter %q needs a positive band count", name)
		}
		if kind == "step" {
			return StepSort(n), nil
		}
		return GradientStepSort(n), nil
	case "shuffle":
		seed, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "sorter %q needs an unsigned seed", name)
		}
		return Shuffle(seed), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown sorter %q", name)
}
