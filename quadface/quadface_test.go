package quadface_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/hexmesh/adjacency"
	"github.com/katalvlaran/hexmesh/cloud"
	"github.com/katalvlaran/hexmesh/quadface"
)

// pt is a test helper building a Point from coordinates; the degree is
// irrelevant for hand-built graphs.
func pt(x, y, z float64) cloud.Point {
	return cloud.Point{Pos: r3.Vec{X: x, Y: y, Z: z}}
}

// unitSquare is four points of the z=0 unit square in ring order.
func unitSquare() cloud.Cloud {
	return cloud.Cloud{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0), pt(0, 1, 0)}
}

// fullGraph links every point to every other, both directions.
func fullGraph(n int) adjacency.Graph {
	g := make(adjacency.Graph, n)
	for u := 0; u < n; u++ {
		g[u] = make(map[int]struct{}, n-1)
		for v := 0; v < n; v++ {
			if v != u {
				g[u][v] = struct{}{}
			}
		}
	}
	return g
}

func TestFind_OptionViolations(t *testing.T) {
	points := unitSquare()
	g := fullGraph(4)

	_, err := quadface.Find(points, g, quadface.WithCoplanarTolerance(0))
	assert.ErrorIs(t, err, quadface.ErrOptionViolation, "zero tolerance must error")

	_, err = quadface.Find(points, g, quadface.WithCoplanarTolerance(-1e-3))
	assert.ErrorIs(t, err, quadface.ErrOptionViolation, "negative tolerance must error")

	_, err = quadface.Find(points, g, quadface.WithDiagonalRatio(0.5))
	assert.ErrorIs(t, err, quadface.ErrOptionViolation, "sub-unit diagonal ratio must error")
}

func TestFind_EmptyInputs(t *testing.T) {
	faces, err := quadface.Find(nil, adjacency.Graph{})
	require.NoError(t, err)
	assert.Empty(t, faces, "empty cloud must yield no faces")

	faces, err = quadface.Find(unitSquare(), adjacency.Graph{})
	require.NoError(t, err)
	assert.Empty(t, faces, "empty graph must yield no faces")
}

func TestFind_ThreePointsNoCycle(t *testing.T) {
	points := cloud.Cloud{pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0)}
	faces, err := quadface.Find(points, fullGraph(3))
	require.NoError(t, err)
	assert.Empty(t, faces, "no 4-cycle exists among 3 points")
}

// TestFind_SquareDedup checks that a fully connected square yields
// exactly one face, in the ordering of its first discovery, and that
// the bowtie orderings through the diagonals are filtered out.
func TestFind_SquareDedup(t *testing.T) {
	faces, err := quadface.Find(unitSquare(), fullGraph(4))
	require.NoError(t, err)
	require.Len(t, faces, 1)
	assert.Equal(t, quadface.Face{0, 1, 2, 3}, faces[0], "first discovery ordering must be kept")
}

// TestFind_UnitCube expects exactly the six cube faces.
func TestFind_UnitCube(t *testing.T) {
	points := cloud.UnitCube()
	g := adjacency.Build(points)
	faces, err := quadface.Find(points, g)
	require.NoError(t, err)
	assert.Len(t, faces, 6)
	assertFacesValid(t, points, g, faces)
}

// TestFind_TwoCubeColumn expects the 11 distinct faces of two stacked
// cubes sharing the middle one.
func TestFind_TwoCubeColumn(t *testing.T) {
	points := cloud.TwoCubeColumn()
	g := adjacency.Build(points)
	faces, err := quadface.Find(points, g)
	require.NoError(t, err)
	assert.Len(t, faces, 11)
	assertFacesValid(t, points, g, faces)
}

// TestFind_OutOfRangeIndexRejected hand-builds a graph whose only extra
// cycle runs through a vertex index beyond the cloud.
func TestFind_OutOfRangeIndexRejected(t *testing.T) {
	points := unitSquare()
	g := adjacency.Graph{
		0: {1: {}, 3: {}},
		1: {0: {}, 2: {}, 9: {}},
		2: {1: {}, 3: {}},
		3: {0: {}, 2: {}, 9: {}},
	}
	faces, err := quadface.Find(points, g)
	require.NoError(t, err)
	require.Len(t, faces, 1, "cycle through index 9 must be silently rejected")
	assert.Equal(t, quadface.Face{0, 1, 2, 3}, faces[0])
}

// TestFind_ToleranceWidening verifies a slightly bent quad is rejected
// by the default tolerance but accepted by a wider one.
func TestFind_ToleranceWidening(t *testing.T) {
	points := cloud.Cloud{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0.1), pt(0, 1, 0)}
	g := fullGraph(4)

	faces, err := quadface.Find(points, g)
	require.NoError(t, err)
	assert.Empty(t, faces, "bent quad must fail the default tolerance")

	faces, err = quadface.Find(points, g, quadface.WithCoplanarTolerance(0.2))
	require.NoError(t, err)
	assert.Len(t, faces, 1, "bent quad must pass the widened tolerance")
}

// TestFind_Deterministic re-runs discovery and expects identical slices.
func TestFind_Deterministic(t *testing.T) {
	points := cloud.TwoCubeColumn()
	g := adjacency.Build(points)
	first, err := quadface.Find(points, g)
	require.NoError(t, err)
	for run := 0; run < 5; run++ {
		next, err := quadface.Find(points, g)
		require.NoError(t, err)
		assert.Equal(t, first, next, "run %d diverged", run)
	}
}

// assertFacesValid checks the face-validity and face-uniqueness
// properties: distinct in-range vertices, 4-cycle membership in the
// graph, coplanarity, diagonal dominance, and unique vertex sets.
func assertFacesValid(t *testing.T, points cloud.Cloud, g adjacency.Graph, faces []quadface.Face) {
	t.Helper()
	seen := make(map[[4]int]struct{}, len(faces))
	for _, f := range faces {
		for i, a := range f {
			require.GreaterOrEqual(t, a, 0)
			require.Less(t, a, len(points))
			for _, b := range f[i+1:] {
				require.NotEqual(t, a, b, "face %v repeats a vertex", f)
			}
		}

		// Cycle edges must exist in at least one direction each, as the
		// discovery rule demands.
		assert.True(t, g.Has(f[0], f[1]) || g.Has(f[1], f[0]), "face %v misses edge p0-p1", f)
		assert.True(t, g.Has(f[1], f[2]) || g.Has(f[2], f[1]), "face %v misses edge p1-p2", f)
		assert.True(t, g.Has(f[3], f[2]) || g.Has(f[2], f[3]), "face %v misses edge p2-p3", f)
		assert.True(t, g.Has(f[0], f[3]) || g.Has(f[3], f[0]), "face %v misses edge p3-p0", f)

		// Coplanarity within the default tolerance.
		p0 := points[f[0]].Pos
		v1 := r3.Sub(points[f[1]].Pos, p0)
		v2 := r3.Sub(points[f[2]].Pos, p0)
		v3 := r3.Sub(points[f[3]].Pos, p0)
		assert.Less(t, math.Abs(r3.Dot(v1, r3.Cross(v2, v3))), quadface.DefaultCoplanarTolerance,
			"face %v is not coplanar", f)

		// Diagonal dominance, squared comparison.
		d2 := func(a, b int) float64 { return r3.Norm2(r3.Sub(points[a].Pos, points[b].Pos)) }
		maxEdge := math.Max(math.Max(d2(f[0], f[1]), d2(f[1], f[2])), math.Max(d2(f[2], f[3]), d2(f[3], f[0])))
		assert.Greater(t, d2(f[0], f[2]), maxEdge*quadface.DefaultDiagonalRatio, "face %v diagonal p0-p2 too short", f)
		assert.Greater(t, d2(f[1], f[3]), maxEdge*quadface.DefaultDiagonalRatio, "face %v diagonal p1-p3 too short", f)

		key := f
		sort.Ints(key[:])
		_, dup := seen[[4]int(key)]
		require.False(t, dup, "faces share the vertex set %v", key)
		seen[[4]int(key)] = struct{}{}
	}
}
