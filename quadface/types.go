// Package quadface defines face types, tunable options, and sentinel
// errors for quadrilateral face discovery.
package quadface

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("quadface: invalid option supplied")

// Heuristic thresholds tuned for unit-scale input coordinates. They are
// absolute, not scale-invariant; callers working at other scales should
// override them via options.
const (
	// DefaultCoplanarTolerance bounds the absolute scalar triple product
	// (the signed parallelepiped volume) of the three edge vectors from
	// a face's first vertex.
	DefaultCoplanarTolerance = 1e-3

	// DefaultDiagonalRatio is the factor by which both squared diagonals
	// must exceed the longest squared edge of the face.
	DefaultDiagonalRatio = 1.01
)

// Face is an ordered 4-tuple of point indices in the cycle order of the
// traversal that discovered it. The ordering reflects the discovery
// path, not a canonical winding; faces with equal vertex sets compare
// equal for deduplication purposes.
type Face [4]int

// Contains reports whether idx is one of the face's vertices.
func (f Face) Contains(idx int) bool {
	return f[0] == idx || f[1] == idx || f[2] == idx || f[3] == idx
}

// Option configures face discovery via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Find is invoked.
type Option func(*Options)

// Options holds the geometric thresholds for face validation.
type Options struct {
	// CoplanarTolerance is the maximum |triple product| accepted as flat.
	CoplanarTolerance float64

	// DiagonalRatio scales the longest squared edge; both squared
	// diagonals must exceed the product.
	DiagonalRatio float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options carrying the package defaults.
func DefaultOptions() Options {
	return Options{
		CoplanarTolerance: DefaultCoplanarTolerance,
		DiagonalRatio:     DefaultDiagonalRatio,
	}
}

// WithCoplanarTolerance overrides the coplanarity tolerance.
// Non-positive values are invalid and surface ErrOptionViolation.
func WithCoplanarTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: coplanar tolerance must be positive (%v)", ErrOptionViolation, tol)
			return
		}
		o.CoplanarTolerance = tol
	}
}

// WithDiagonalRatio overrides the diagonal-vs-edge factor. Values below
// 1 would admit faces whose diagonal is shorter than an edge and are
// invalid.
func WithDiagonalRatio(ratio float64) Option {
	return func(o *Options) {
		if ratio < 1 {
			o.err = fmt.Errorf("%w: diagonal ratio must be at least 1 (%v)", ErrOptionViolation, ratio)
			return
		}
		o.DiagonalRatio = ratio
	}
}
