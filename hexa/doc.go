// Package hexa assembles eight-vertex hexahedral cells by pairing
// discovered quadrilateral faces through the adjacency graph.
//
// What:
//
//   - Build considers every unordered pair of faces and accepts a pair
//     as a cell when three checks pass in order: the faces share no
//     vertex; exactly four graph edges connect them; and those four
//     edges form a one-to-one correspondence covering each face's
//     vertices exactly once.
//   - Cells with the same 8-vertex set are deduplicated, with a
//     defensive re-check that the canonical key really holds 8 distinct
//     indices.
//
// Why:
//
//   - Two opposite faces plus a perfect 4-edge matching is precisely
//     the combinatorial signature of a hexahedron in the neighbor
//     graph; side-face pairings of the same cell reduce to the same
//     8-vertex set and vanish in deduplication.
//
// Ordering caveat:
//
//   - A cell's slots hold the first face's connecting endpoints in edge
//     discovery order, then the matched opposite endpoints in the same
//     order. This slot order is NOT a geometrically consistent winding
//     for all six faces; renderers must derive per-face quads through
//     the fixed CellQuadIndex table instead of trusting slot order.
//
// Edge direction:
//
//   - Connecting edges are probed from the first face's side only,
//     honoring the graph's documented asymmetry.
//
// Complexity:
//
//   - O(F²) face pairs, each with O(16) edge lookups for F faces.
package hexa
