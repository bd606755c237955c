package adjacency_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hexmesh/adjacency"
	"github.com/katalvlaran/hexmesh/cloud"
)

// BenchmarkBuild measures graph construction on a 200-point random
// cloud, the upper end of the intended input scale.
// Complexity: O(n² log n)
func BenchmarkBuild(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	points := make(cloud.Cloud, n)
	for i := range points {
		points[i] = cloud.Point{
			Pos:               r3.Vec{X: rng.Float64() * 10, Y: rng.Float64() * 10, Z: rng.Float64() * 10},
			RequiredNeighbors: 4,
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = adjacency.Build(points)
	}
}
