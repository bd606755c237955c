package quadface

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hexmesh/cloud"
)

// coplanar reports whether the four face points lie in a common plane
// within tol. The measure is the scalar triple product of the three
// edge vectors from f[0]: the signed volume of the parallelepiped they
// span, exactly zero for coplanar points. A face referencing an index
// outside the cloud is treated as non-coplanar.
func coplanar(points cloud.Cloud, f Face, tol float64) bool {
	for _, idx := range f {
		if idx < 0 || idx >= len(points) {
			return false
		}
	}
	p0 := points[f[0]].Pos
	v1 := r3.Sub(points[f[1]].Pos, p0)
	v2 := r3.Sub(points[f[2]].Pos, p0)
	v3 := r3.Sub(points[f[3]].Pos, p0)
	volume := r3.Dot(v1, r3.Cross(v2, v3))

	return math.Abs(volume) < tol
}

// diagonalsDominate reports whether both squared diagonals of the face
// exceed ratio times its longest squared edge. Slivers and triangular
// degenerations fail this: their "diagonal" is no longer than an edge.
// Indices must already be validated by coplanar.
func diagonalsDominate(points cloud.Cloud, f Face, ratio float64) bool {
	edge01 := dist2(points, f[0], f[1])
	edge12 := dist2(points, f[1], f[2])
	edge23 := dist2(points, f[2], f[3])
	edge30 := dist2(points, f[3], f[0])

	diag02 := dist2(points, f[0], f[2])
	diag13 := dist2(points, f[1], f[3])

	maxEdge := math.Max(math.Max(edge01, edge12), math.Max(edge23, edge30))

	return diag02 > maxEdge*ratio && diag13 > maxEdge*ratio
}

// dist2 returns the squared distance between points a and b.
func dist2(points cloud.Cloud, a, b int) float64 {
	return r3.Norm2(r3.Sub(points[a].Pos, points[b].Pos))
}
