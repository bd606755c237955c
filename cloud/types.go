// Package cloud defines point-cloud types and sentinel errors.
package cloud

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for cloud loading and layout construction.
var (
	// ErrNoPoints indicates a decoded document with no point entries.
	ErrNoPoints = errors.New("cloud: document contains no points")
	// ErrBadPosition indicates a position with a coordinate count other than 3.
	ErrBadPosition = errors.New("cloud: position must have exactly 3 coordinates")
	// ErrBadNeighbors indicates a negative required-neighbor count.
	ErrBadNeighbors = errors.New("cloud: required-neighbor count must be non-negative")
	// ErrBadLayout indicates an invalid size passed to a layout constructor.
	ErrBadLayout = errors.New("cloud: layout size must be at least 1")
)

// Point is a single input sample: a position plus the expected graph
// degree for that position. Points are immutable once loaded for a
// given reconstruction run and are identified by their index in the
// containing Cloud.
type Point struct {
	// Pos is the point's position in model space.
	Pos r3.Vec

	// RequiredNeighbors is the number of nearest points that should be
	// selected as this point's graph neighbors. Values above n-1 are
	// clamped during graph construction; negative values select none.
	RequiredNeighbors int
}

// Cloud is the ordered input point sequence. Indices into a Cloud are
// the vertex identifiers used by every reconstruction stage.
type Cloud []Point

// Len returns the number of points in the cloud.
func (c Cloud) Len() int { return len(c) }

// Clone returns a deep copy of the cloud.
// Complexity: O(n) time and memory.
func (c Cloud) Clone() Cloud {
	if c == nil {
		return nil
	}
	out := make(Cloud, len(c))
	copy(out, c)

	return out
}
