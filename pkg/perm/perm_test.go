package perm

import (
	"fmt"
	"slices"
	"testing"
)

func TestSeq(t *testing.T) {
	if got := Seq(4); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("Seq(4) = %v", got)
	}
	if got := Seq(-1); len(got) != 0 {
		t.Errorf("Seq(-1) = %v, want empty", got)
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct{ n, want int }{
		{-1, 1}, {0, 1}, {1, 1}, {5, 120}, {7, 5040},
	}
	for _, tt := range tests {
		if got := Factorial(tt.n); got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestAllIsComplete(t *testing.T) {
	for n := 0; n <= 6; n++ {
		seen := make(map[string]bool)
		for p := range All(n) {
			if !slices.Equal(slices.Sorted(slices.Values(p)), Seq(n)) {
				t.Fatalf("All(%d) produced non-permutation %v", n, p)
			}
			key := fmt.Sprint(p)
			if seen[key] {
				t.Fatalf("All(%d) repeated %v", n, p)
			}
			seen[key] = true
		}
		if len(seen) != Factorial(n) {
			t.Fatalf("All(%d) produced %d permutations, want %d", n, len(seen), Factorial(n))
		}
	}
}

func TestAllStopsEarly(t *testing.T) {
	count := 0
	for range All(8) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("count = %d", count)
	}
}

func TestDistinct(t *testing.T) {
	sizes := []string{"2x1", "2x1", "1x1"}
	var got [][]int
	for p := range Distinct(len(sizes), func(i int) string { return sizes[i] }) {
		got = append(got, slices.Clone(p))
	}
	if len(got) != 3 {
		t.Fatalf("Distinct produced %d orders, want 3: %v", len(got), got)
	}
	seen := make(map[string]bool)
	for _, p := range got {
		key := sizes[p[0]] + sizes[p[1]] + sizes[p[2]]
		if seen[key] {
			t.Errorf("Distinct repeated order %s", key)
		}
		seen[key] = true
	}
}

func TestDistinctCounts(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want int
	}{
		{"empty", nil, 1},
		{"all equal", []int{7, 7, 7, 7, 7, 7, 7, 7, 7, 7}, 1},
		{"all different", []int{1, 2, 3, 4}, 24},
		{"two kinds", []int{1, 1, 1, 2, 2}, 10},
		{"interleaved", []int{1, 2, 1, 3}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make(map[string]bool)
			count := 0
			for p := range Distinct(len(tt.keys), func(i int) int { return tt.keys[i] }) {
				count++
				if !slices.Equal(slices.Sorted(slices.Values(p)), Seq(len(tt.keys))) {
					t.Fatalf("non-permutation %v", p)
				}
				ks := make([]int, len(p))
				for i, idx := range p {
					ks[i] = tt.keys[idx]
				}
				sig := fmt.Sprint(ks)
				if seen[sig] {
					t.Fatalf("repeated key order %s", sig)
				}
				seen[sig] = true
			}
			if count != tt.want {
				t.Errorf("Distinct produced %d orders, want %d", count, tt.want)
			}
		})
	}
}

func TestDistinctStopsEarly(t *testing.T) {
	// 20 items of two kinds have C(20,10) distinct orders; stopping after
	// three must not walk the rest.
	keys := make([]int, 20)
	for i := range keys {
		keys[i] = i % 2
	}
	count := 0
	for range Distinct(len(keys), func(i int) int { return keys[i] }) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("count = %d", count)
	}
}
