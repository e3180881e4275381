package mask

import "github.com/matzehuels/tessera/pkg/canvas"

// Assigned returns the positions of s that carry data.
func Assigned[T any](s canvas.Surface[T]) Set {
	out := make(Set)
	for i := range s.Size().Area() {
		if !s.At(i).IsOpen() {
			out[i] = struct{}{}
		}
	}
	return out
}

// Open returns the positions of s that carry no data.
func Open[T any](s canvas.Surface[T]) Set {
	out := make(Set)
	for i := range s.Size().Area() {
		if s.At(i).IsOpen() {
			out[i] = struct{}{}
		}
	}
	return out
}

// Algebra edits the assigned region of Target. Positions that join the
// region take their value from Source at the same index; positions that
// leave it become open. Target and Source must have the same size.
//
// Every operation is expressed over the current assigned set U of Target
// and is idempotent: applying it twice has the same effect as once.
// Positions outside the grid are ignored.
type Algebra[T any] struct {
	Target canvas.Surface[T]
	Source canvas.Surface[T]
}

// Exclude opens every assigned position in ps.
func (a Algebra[T]) Exclude(ps Set) {
	n := a.Target.Size().Area()
	for p := range ps {
		if p < 0 || p >= n {
			continue
		}
		if !a.Target.At(p).IsOpen() {
			a.Target.SetAt(p, canvas.Open[T]())
		}
	}
}

// Unexclude fills every open position in ps from Source. Positions that are
// open in Source stay open.
func (a Algebra[T]) Unexclude(ps Set) {
	n := a.Target.Size().Area()
	for p := range ps {
		if p < 0 || p >= n {
			continue
		}
		if a.Target.At(p).IsOpen() {
			a.Target.SetAt(p, a.Source.At(p))
		}
	}
}

// Union makes the assigned set U ∪ ps. Positions already assigned keep
// their current values.
func (a Algebra[T]) Union(ps Set) {
	a.Unexclude(ps)
}

// Intersection makes the assigned set U ∩ ps.
func (a Algebra[T]) Intersection(ps Set) {
	a.Exclude(Assigned(a.Target).Difference(ps))
}

// Difference makes the assigned set U \ ps.
func (a Algebra[T]) Difference(ps Set) {
	a.Exclude(ps)
}

// Invert swaps the assigned and open sets. Newly assigned positions take
// their value from Source.
func (a Algebra[T]) Invert() {
	assigned := Assigned(a.Target)
	a.RemoveExcluded()
	a.Exclude(assigned)
}

// RemoveExcluded fills every open position from Source.
func (a Algebra[T]) RemoveExcluded() {
	a.Unexclude(Range(a.Target.Size().Area()))
}

// RemoveUnexcluded opens every position.
func (a Algebra[T]) RemoveUnexcluded() {
	a.Exclude(Range(a.Target.Size().Area()))
}
