package adjacency

import "sort"

// Graph maps a point index to the set of its selected nearest-neighbor
// indices. Membership is directional: g[u] containing v does not imply
// g[v] contains u (see the package documentation on asymmetry).
type Graph map[int]map[int]struct{}

// Has reports whether u's neighbor set contains v. It consults only
// u's side of the graph, preserving directional semantics.
// Complexity: O(1).
func (g Graph) Has(u, v int) bool {
	_, ok := g[u][v]
	return ok
}

// Neighbors returns u's neighbor indices in ascending order, or nil if
// u has no entry. The returned slice is freshly allocated.
// Complexity: O(d log d) for degree d.
func (g Graph) Neighbors(u int) []int {
	set, ok := g[u]
	if !ok || len(set) == 0 {
		return nil
	}
	ids := make([]int, 0, len(set))
	for v := range set {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// Degree returns the number of neighbors selected for u.
// Complexity: O(1).
func (g Graph) Degree(u int) int { return len(g[u]) }

// Len returns the number of points with an entry in the graph.
func (g Graph) Len() int { return len(g) }

// EdgeCount returns the total number of directed neighbor selections.
// Complexity: O(n).
func (g Graph) EdgeCount() int {
	total := 0
	for _, set := range g {
		total += len(set)
	}

	return total
}

// Clone returns a deep copy of the graph.
// Complexity: O(n + e).
func (g Graph) Clone() Graph {
	if g == nil {
		return nil
	}
	out := make(Graph, len(g))
	for u, set := range g {
		cp := make(map[int]struct{}, len(set))
		for v := range set {
			cp[v] = struct{}{}
		}
		out[u] = cp
	}

	return out
}
