package adjacency

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hexmesh/cloud"
)

// ranked pairs a candidate neighbor index with its distance from the
// point being processed.
type ranked struct {
	dist float64
	idx  int
}

// Build constructs the adjacency graph for points. For every point i it
// computes the Euclidean distance to every other point, stable-sorts
// the candidates ascending by distance (ties break toward the lower
// index), and keeps the first min(points[i].RequiredNeighbors, n-1) as
// i's neighbor set. Negative required counts select no neighbors.
//
// The result is a fresh structure; points is never mutated. An empty
// cloud yields an empty, non-nil graph.
//
// Complexity: O(n²) distance computations plus O(n² log n) sorting.
func Build(points cloud.Cloud) Graph {
	n := len(points)
	g := make(Graph, n)
	if n == 0 {
		return g
	}

	candidates := make([]ranked, 0, n-1)
	for i := 0; i < n; i++ {
		candidates = candidates[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			candidates = append(candidates, ranked{
				dist: r3.Norm(r3.Sub(points[j].Pos, points[i].Pos)),
				idx:  j,
			})
		}
		sort.SliceStable(candidates, func(a, b int) bool {
			return candidates[a].dist < candidates[b].dist
		})

		k := points[i].RequiredNeighbors
		if k < 0 {
			k = 0
		}
		if k > len(candidates) {
			k = len(candidates)
		}
		set := make(map[int]struct{}, k)
		for _, c := range candidates[:k] {
			set[c.idx] = struct{}{}
		}
		g[i] = set
	}

	return g
}
