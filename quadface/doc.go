// Package quadface discovers planar quadrilateral faces implied by a
// point cloud's adjacency graph.
//
// What:
//
//   - Find enumerates 4-cycles p0-p1-p2-p3-p0 in the graph: for each
//     point p0, each unordered pair (p1, p3) of its neighbors, and each
//     neighbor p2 of p1 that is also a neighbor of p3 and distinct from
//     p0 yields a candidate face.
//   - A candidate is accepted only if its four points are coplanar
//     within a tolerance and both diagonals exceed a fixed ratio of the
//     longest edge (squared comparison), which rejects slivers and
//     triangular degenerations.
//   - Faces with the same vertex set are deduplicated; the first
//     discovery's cycle ordering is the one kept.
//
// Why:
//
//   - The adjacency graph alone over-generates 4-cycles (skew cycles,
//     near-triangles with a repeated-ish corner); the two geometric
//     filters keep exactly the cycles that can serve as hexahedron
//     faces downstream.
//
// Error model:
//
//   - Geometric and index anomalies are handled by silent exclusion: a
//     candidate referencing an index outside the cloud is rejected as
//     if non-coplanar, never reported. The only error Find returns is
//     ErrOptionViolation for invalid tolerance options.
//
// Complexity:
//
//   - O(sum over p0 of d² · d) neighbor probes for maximum degree d,
//     bounded by O(n · d³); the geometric filters are O(1) each.
//
// Options:
//
//   - WithCoplanarTolerance: |triple product| bound, default 1e-3.
//   - WithDiagonalRatio: diagonal-vs-edge factor, default 1.01.
//     Both defaults are tuned for unit-scale coordinates and do not
//     adapt to the input scale.
package quadface
