package lowpoint_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvbasin/heightmap"
	"github.com/katalvlaran/lvbasin/lowpoint"
)

// BenchmarkDetect measures Detect on a random 1000×1000 grid.
// Complexity: O(R×C)
func BenchmarkDetect(b *testing.B) {
	const n = 1000
	rnd := rand.New(rand.NewSource(42))
	vals := make([][]int, n)
	for r := range vals {
		vals[r] = make([]int, n)
		for c := range vals[r] {
			vals[r][c] = rnd.Intn(10)
		}
	}
	g, err := heightmap.New(vals)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lowpoint.Detect(g)
	}
}
