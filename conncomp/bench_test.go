package conncomp_test

import (
	"math/rand"
	"testing"

	"github.com/pixelgrid/cclabel/conncomp"
	"github.com/pixelgrid/cclabel/pixel"
)

// benchGrid builds a deterministic random n×n grid with values in [0,4];
// roughly 80% of cells are foreground under Nonzero.
func benchGrid(n int) [][]int {
	rng := rand.New(rand.NewSource(42))
	img := make([][]int, n)
	for i := range img {
		row := make([]int, n)
		for j := range row {
			row[j] = rng.Intn(5)
		}
		img[i] = row
	}
	return img
}

// BenchmarkFind_Conn4 measures labeling of a 1000×1000 grid under Conn4.
// Complexity: O(rows×cols×4)
func BenchmarkFind_Conn4(b *testing.B) {
	img := benchGrid(1000)
	acc, cls := pixel.Slice2D[int](), pixel.Nonzero[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conncomp.Find(img, 1000, 1000, acc, cls); err != nil {
			b.Fatalf("Find failed: %v", err)
		}
	}
}

// BenchmarkFind_Conn8 measures labeling of a 1000×1000 grid under Conn8.
// Complexity: O(rows×cols×8)
func BenchmarkFind_Conn8(b *testing.B) {
	img := benchGrid(1000)
	acc, cls := pixel.Slice2D[int](), pixel.Nonzero[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conncomp.Find(img, 1000, 1000, acc, cls,
			conncomp.WithConnectivity(conncomp.Conn8)); err != nil {
			b.Fatalf("Find failed: %v", err)
		}
	}
}
