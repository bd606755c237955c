// Package cloud defines the input point-cloud model for hexahedral
// reconstruction, together with loaders and canonical sample layouts.
//
// What:
//
//   - Point couples a 3D position with a required-neighbor count, the
//     expected graph degree supplied by the caller as domain knowledge
//     (a block corner has 3 neighbors, an internal shared vertex has 4).
//   - Cloud is an immutable-by-convention sequence of points; a point is
//     identified solely by its index, which stays stable across all
//     reconstruction stages.
//   - DecodeTOML reads a point set from a TOML document.
//   - CubeColumn and friends build canonical layouts used in tests,
//     examples, and the CLI demo.
//
// Why:
//
//   - Every downstream stage (adjacency, quadface, hexa) consumes the
//     same Cloud by index; keeping the model in one leaf package keeps
//     the stages free of I/O and parsing concerns.
//
// Errors:
//
//   - ErrNoPoints: decoded document contains no points.
//   - ErrBadPosition: a point's pos array does not have 3 coordinates.
//   - ErrBadNeighbors: a point declares a negative neighbor count.
//   - ErrBadLayout: a layout constructor received an invalid size.
package cloud
