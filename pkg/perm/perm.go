// Package perm enumerates orderings of n items.
//
// The merger package searches tile orders with it: each permutation of the
// source canvases is one candidate packing order. Permutations come from
// Heap's algorithm, which changes a single pair per step, and are produced
// lazily by [All]. [Distinct] never produces orders that only swap equal items.
package perm

import (
	"iter"
	"slices"
)

// Seq returns the sequence [0, 1, ..., n-1]. For n <= 0 it returns an empty
// slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n!. For n <= 1 it returns 1.
//
// Factorials grow fast: 13! already exceeds a 32-bit int. Callers bounding
// a search should clamp n before asking.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// All yields every permutation of [0, 1, ..., n-1] in Heap's order,
// starting with the identity. The yielded slice is reused between steps;
// clone it to keep it.
//
// For n <= 0 All yields one empty permutation.
func All(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		perm := Seq(n)
		if !yield(perm) || n <= 1 {
			return
		}
		state := make([]int, n)
		for i := 0; i < n; {
			if state[i] < i {
				if i&1 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[state[i]], perm[i] = perm[i], perm[state[i]]
				}
				if !yield(perm) {
					return
				}
				state[i]++
				i = 0
			} else {
				state[i] = 0
				i++
			}
		}
	}
}

// Distinct yields one permutation of [0, 1, ..., n-1] per distinct
// sequence of keys. key maps an item index to a comparable identity; items
// with equal keys are interchangeable, so orders that differ only by
// swapping them are never produced. Within a key, items keep ascending
// index order. Key sequences come in lexicographic order of first
// appearance, starting with all items of the first key.
// Every step yields a new order in O(n). The yielded slice is reused
// between steps.
func Distinct[K comparable](n int, key func(int) K) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		ids := make(map[K]int)
		var members [][]int
		classes := make([]int, max(n, 0))
		for i := range classes {
			k := key(i)
			id, ok := ids[k]
			if !ok {
				id = len(members)
				ids[k] = id
				members = append(members, nil)
			}
			classes[i] = id
			members[id] = append(members[id], i)
		}
		slices.Sort(classes)

		perm := make([]int, len(classes))
		used := make([]int, len(members))
		for {
			clear(used)
			for i, c := range classes {
				perm[i] = members[c][used[c]]
				used[c]++
			}
			if !yield(perm) || !nextPermutation(classes) {
				return
			}
		}
	}
}

// nextPermutation rearranges s into its lexicographic successor and
// reports false when s is already the last arrangement. Repeated values
// are handled, so each distinct arrangement is visited once.
func nextPermutation(s []int) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	slices.Reverse(s[i+1:])
	return true
}
