package hexa

import (
	"sort"

	"github.com/katalvlaran/hexmesh/adjacency"
	"github.com/katalvlaran/hexmesh/quadface"
)

// connectingEdges is the exact number of graph edges that must join two
// opposite faces of a hexahedron.
const connectingEdges = 4

// Build pairs the given faces into deduplicated hexahedral cells using
// the adjacency graph, in discovery order over unordered face pairs.
// It never mutates its inputs and returns a fresh slice; fewer than two
// faces yield no cells.
//
// Complexity: O(F²) pairs with O(1) work per pair.
func Build(faces []quadface.Face, g adjacency.Graph) []Cell {
	var cells []Cell
	seen := make(map[[8]int]struct{})
	for i := 0; i < len(faces); i++ {
		for j := i + 1; j < len(faces); j++ {
			c, ok := pair(faces[i], faces[j], g)
			if !ok {
				continue
			}
			key, distinct := canonicalKey(c)
			if !distinct {
				// Guard: the matching check should make this impossible.
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			cells = append(cells, c)
		}
	}

	return cells
}

// pair attempts to join two faces into a cell, applying the
// disjointness, connecting-edge, and matching checks in order.
func pair(f1, f2 quadface.Face, g adjacency.Graph) (Cell, bool) {
	for _, v := range f2 {
		if f1.Contains(v) {
			return Cell{}, false
		}
	}

	// Collect graph edges from f1's side toward f2, in face slot order.
	var edges [][2]int
	for _, a := range f1 {
		for _, b := range f2 {
			if g.Has(a, b) {
				edges = append(edges, [2]int{a, b})
			}
		}
	}
	if len(edges) != connectingEdges {
		return Cell{}, false
	}

	// The four endpoints on each side must cover that face exactly once.
	var from, to [connectingEdges]int
	for k, e := range edges {
		from[k], to[k] = e[0], e[1]
	}
	if !allDistinct(from) || !allDistinct(to) {
		return Cell{}, false
	}

	var c Cell
	for k, e := range edges {
		c[k] = e[0]
		c[k+connectingEdges] = e[1]
	}

	return c, true
}

// allDistinct reports whether the four values are pairwise distinct.
func allDistinct(vals [connectingEdges]int) bool {
	for i := 0; i < len(vals); i++ {
		for j := i + 1; j < len(vals); j++ {
			if vals[i] == vals[j] {
				return false
			}
		}
	}

	return true
}

// canonicalKey returns the sorted vertex tuple identifying the cell and
// whether all eight indices are distinct.
func canonicalKey(c Cell) ([8]int, bool) {
	key := [8]int(c)
	sort.Ints(key[:])
	for i := 1; i < len(key); i++ {
		if key[i] == key[i-1] {
			return key, false
		}
	}

	return key, true
}
