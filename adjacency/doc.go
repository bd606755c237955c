// Package adjacency builds the connectivity graph of a point cloud from
// spatial proximity and per-point expected-degree constraints.
//
// What:
//
//   - Build ranks, for every point, all other points by Euclidean
//     distance and keeps the point's own required-neighbor count of
//     nearest points as its neighbor set.
//   - Graph is the resulting index-keyed adjacency structure, read-only
//     after construction, with sorted neighbor accessors.
//
// Why:
//
//   - The required-neighbor count is caller-supplied domain knowledge
//     (block corners touch 3 edges, shared internal vertices 4), which
//     lets a plain k-nearest-neighbor rule recover structured
//     connectivity without any global fitting.
//
// Asymmetry:
//
//   - Each point's neighbor set is computed independently from its own
//     top-k rule, so the graph is NOT guaranteed symmetric: A may select
//     B while B does not select A. This is an inherent property of the
//     per-point selection, preserved deliberately; downstream stages
//     consult edge direction exactly as stored. Do not symmetrize.
//
// Determinism:
//
//   - Candidates are generated in ascending index order and ranked with
//     a stable sort, so equal distances break toward the lower index.
//     Repeated builds over the same cloud yield identical graphs.
//
// Complexity:
//
//   - Build: O(n² log n) time, O(n²) memory for n points. Intended for
//     tens to low hundreds of points.
//
// Edge cases:
//
//   - An empty cloud yields an empty (non-nil) graph.
//   - A required count above n-1 is clamped to n-1; a negative count
//     selects no neighbors. Neither raises an error.
package adjacency
