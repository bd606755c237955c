// Package pipeline coordinates the three reconstruction stages over a
// single point cloud, exposing them as explicit steps that can be run
// and inspected one at a time.
//
// What:
//
//   - Pipeline holds the canonical point sequence and the artifacts of
//     each completed stage (graph, faces, cells).
//   - BuildGraph, FindFaces, and BuildHexahedra run the stages in
//     strict order; invoking a stage before its predecessor completed
//     returns ErrGraphMissing or ErrFacesMissing rather than running on
//     stale or absent inputs.
//   - Running a stage invalidates every downstream artifact; Reset
//     discards all three and keeps only the points.
//   - Run executes the full sequence in one call.
//
// Why:
//
//   - The stages themselves are pure functions in adjacency, quadface,
//     and hexa; something still has to own the data between steps,
//     enforce ordering, and report progress. Keeping that here leaves
//     the stage packages free of state and logging.
//
// Logging:
//
//   - Stage completions are logged through a logrus.FieldLogger with
//     structured fields (counts, durations). The default logger
//     discards everything; inject one via WithLogger to observe runs.
//
// Concurrency:
//
//   - A Pipeline is not safe for concurrent use; stages hold no
//     internal synchronization and must be driven from one goroutine.
package pipeline
