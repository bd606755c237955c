package quadface

import (
	"sort"

	"github.com/katalvlaran/hexmesh/adjacency"
	"github.com/katalvlaran/hexmesh/cloud"
)

// Find enumerates 4-cycles of the adjacency graph and returns the
// deduplicated faces passing the coplanarity and diagonal filters, in
// discovery order. Enumeration walks point indices ascending and
// neighbor lists sorted, so the output is fully deterministic for a
// given cloud and graph.
//
// Find never mutates its inputs and returns a fresh slice; an empty
// graph yields no faces. The only error path is ErrOptionViolation.
func Find(points cloud.Cloud, g adjacency.Graph, opts ...Option) ([]Face, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var faces []Face
	seen := make(map[[4]int]struct{})
	for p0 := 0; p0 < len(points); p0++ {
		nbrs := g.Neighbors(p0)
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				p1, p3 := nbrs[i], nbrs[j]
				for _, p2 := range g.Neighbors(p1) {
					if p2 == p0 || !g.Has(p3, p2) {
						continue
					}
					f := Face{p0, p1, p2, p3}
					if !coplanar(points, f, o.CoplanarTolerance) {
						continue
					}
					if !diagonalsDominate(points, f, o.DiagonalRatio) {
						continue
					}
					key := canonicalKey(f)
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
					faces = append(faces, f)
				}
			}
		}
	}

	return faces, nil
}

// canonicalKey is the sorted vertex tuple identifying a face regardless
// of discovery order.
func canonicalKey(f Face) [4]int {
	key := f
	sort.Ints(key[:])

	return [4]int(key)
}
