// Package hexa defines the hexahedral cell type and its fixed face
// decomposition table.
package hexa

import "github.com/katalvlaran/hexmesh/quadface"

// Cell is an 8-tuple of point indices: slots 0-3 come from one source
// face in connecting-edge discovery order, slots 4-7 from the matched
// opposite face in the same order. All eight indices are pairwise
// distinct. The slot order is not winding-safe; see CellQuadIndex.
type Cell [8]int

// CellQuadIndex maps a cell's eight vertex slots to its six quad faces
// with a consistent back-face-cullable winding: the two source faces
// first, then the four side faces. Consumers needing oriented quads
// must go through this table rather than the raw slot order.
var CellQuadIndex = [6][4]int{
	{0, 3, 2, 1}, {4, 5, 6, 7},
	{0, 4, 7, 3}, {1, 2, 6, 5},
	{0, 1, 5, 4}, {3, 7, 6, 2},
}

// Quads expands the cell into its six quad faces via CellQuadIndex.
// Complexity: O(1).
func (c Cell) Quads() [6]quadface.Face {
	var out [6]quadface.Face
	for i, q := range CellQuadIndex {
		out[i] = quadface.Face{c[q[0]], c[q[1]], c[q[2]], c[q[3]]}
	}

	return out
}

// Contains reports whether idx is one of the cell's vertices.
func (c Cell) Contains(idx int) bool {
	for _, v := range c {
		if v == idx {
			return true
		}
	}

	return false
}
