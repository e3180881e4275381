package splitter_test

import (
	"fmt"
	"slices"

	"github.com/matzehuels/tessera/pkg/canvas"
	"github.com/matzehuels/tessera/pkg/splitter"
)

func ExampleSplitter_Crack() {
	c, _ := canvas.New([]int{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	}, canvas.Size{Width: 4, Length: 4})

	s := splitter.New(c)
	quads, _ := s.Crack(2, 2)
	for q := range quads {
		_ = q.Rearrange(func(v []int) []int {
			out := slices.Clone(v)
			slices.Reverse(out)
			return out
		})
	}
	for _, r := range s.Regions() {
		fmt.Println(r.Origin, r.Canvas.Values())
	}
	_ = s.UnscopeAll()
	fmt.Println(c)
	// Output:
	// (0,0) [5 4 1 0]
	// (2,0) [7 6 3 2]
	// (0,2) [13 12 9 8]
	// (2,2) [15 14 11 10]
	// 5 4 7 6
	// 1 0 3 2
	// 13 12 15 14
	// 9 8 11 10
}
