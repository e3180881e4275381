package sorters_test

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/tessera/pkg/sorters"
)

func ExampleLookup() {
	sort, err := sorters.Lookup("round")
	if err != nil {
		fmt.Println(err)
		return
	}
	px := []color.NRGBA{{R: 200, A: 255}, {R: 10, A: 255}, {R: 90, A: 255}}
	for _, c := range sort(px) {
		fmt.Println(c.R)
	}
	// Output:
	// 10
	// 90
	// 200
}
