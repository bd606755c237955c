// Package hexmesh reconstructs hexahedral (cube-like) cells from small
// unstructured 3D point clouds in three explicit stages.
//
// 🚀 What is hexmesh?
//
//	A small, deterministic reconstruction toolkit that brings together:
//		• cloud:     point-cloud types, TOML loading, canonical sample layouts
//		• adjacency: per-point k-nearest-neighbor connectivity graphs
//		• quadface:  planar quadrilateral face discovery over the graph
//		• hexa:      pairing of faces into closed eight-vertex cells
//		• pipeline:  a staged coordinator mirroring the step-by-step workflow
//
// ✨ Why choose hexmesh?
//
//   - Explicit stages – inspect the graph, the faces, and the cells separately
//   - Deterministic – fixed iteration order, stable distance ranking
//   - Pure results – every stage returns a fresh structure and never
//     mutates its inputs
//   - Tunable – coplanarity tolerance and diagonal ratio exposed as options
//
// The pipeline is intentionally combinatorial (pairwise distances, 4-cycle
// enumeration, face pairing) and is meant for tens to low hundreds of
// points, such as hand-measured block structures or probe grids.
//
// Quick ASCII example:
//
//	    4───────5
//	   /│      /│
//	  7───────6 │        a cube: 8 points, required degree 3 each,
//	  │ 0─────│─1        6 quad faces, 1 hexahedral cell.
//	  │/      │/
//	  3───────2
//
// Dive into each package's doc.go for contracts, complexity notes, and
// error semantics, or start from pipeline.New for the end-to-end flow.
//
//	go get github.com/katalvlaran/hexmesh
package hexmesh
