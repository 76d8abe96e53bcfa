package conncomp_test

import (
	"fmt"
	"sort"

	"github.com/pixelgrid/cclabel/conncomp"
	"github.com/pixelgrid/cclabel/grid"
	"github.com/pixelgrid/cclabel/pixel"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Find
////////////////////////////////////////////////////////////////////////////////

// ExampleFind demonstrates labeling a small binary grid.
// Scenario:
//
//   - Grid values: 0 = background, nonzero = foreground
//   - Conn4 (default): 4-directional adjacency
//   - Expect two components: the L-shape {(0,0),(0,1),(1,1)} and the lone
//     pixel {(2,2)} — they touch only diagonally, so Conn4 keeps them apart.
//
// Complexity: O(rows×cols×4), Memory: O(rows×cols)
func ExampleFind() {
	img := [][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	comps, _ := conncomp.Find(img, 3, 3, pixel.Slice2D[int](), pixel.Nonzero[int]())

	fmt.Println("components:", len(comps))
	for label, comp := range comps {
		fmt.Printf("component %d:", label)
		for _, pos := range sorted(comp) {
			fmt.Printf(" (%d,%d)", pos.Row, pos.Col)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (0,0) (0,1) (1,1)
	// component 1: (2,2)
}

// ExampleFind_conn8 shows the same grid under 8-connectivity: the diagonal
// hop merges everything into a single component.
func ExampleFind_conn8() {
	img := [][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	comps, _ := conncomp.Find(img, 3, 3, pixel.Slice2D[int](), pixel.Nonzero[int](),
		conncomp.WithConnectivity(conncomp.Conn8))

	fmt.Println("components:", len(comps))
	for _, pos := range sorted(comps[0]) {
		fmt.Printf("(%d,%d) ", pos.Row, pos.Col)
	}
	fmt.Println()

	// Output:
	// components: 1
	// (0,0) (0,1) (1,1) (2,2)
}

// sorted returns a component's coordinates in row-major order for stable
// example output; membership itself is unordered.
func sorted(comp conncomp.Component) []grid.Coord {
	cs := comp.ToSlice()
	sort.Slice(cs, func(a, b int) bool {
		if cs[a].Row != cs[b].Row {
			return cs[a].Row < cs[b].Row
		}
		return cs[a].Col < cs[b].Col
	})
	return cs
}
