package cloud

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Canonical required-neighbor counts for axis-aligned cube layouts:
// a corner of the whole block touches 3 edges, a vertex shared between
// two stacked cubes touches 4.
const (
	cornerDegree   = 3
	interiorDegree = 4
)

// layerOffsets lists the (x, y) corners of one horizontal layer in the
// order the reference layout enumerates them.
var layerOffsets = [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// CubeColumn returns the point cloud of n axis-aligned unit cubes
// stacked along +Z, sharing faces: n+1 layers of 4 points each. End
// layers carry required degree 3, interior layers degree 4, so the
// k-nearest-neighbor graph reproduces exactly the cube edges.
//
// Complexity: O(n) time and memory.
// Returns ErrBadLayout if n < 1.
func CubeColumn(n int) (Cloud, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: cube count %d", ErrBadLayout, n)
	}
	pts := make(Cloud, 0, 4*(n+1))
	for z := 0; z <= n; z++ {
		deg := interiorDegree
		if z == 0 || z == n {
			deg = cornerDegree
		}
		for _, xy := range layerOffsets {
			pts = append(pts, Point{
				Pos:               r3.Vec{X: xy[0], Y: xy[1], Z: float64(z)},
				RequiredNeighbors: deg,
			})
		}
	}

	return pts, nil
}

// UnitCube returns a single axis-aligned unit cube: 8 points with
// required degree 3. It reconstructs into 6 faces and 1 cell.
func UnitCube() Cloud {
	c, _ := CubeColumn(1)
	return c
}

// TwoCubeColumn returns the 12-point reference layout of two stacked
// unit cubes sharing a middle face. It reconstructs into 11 faces
// (6 per cube minus the shared one counted once) and exactly 2 cells.
func TwoCubeColumn() Cloud {
	c, _ := CubeColumn(2)
	return c
}
