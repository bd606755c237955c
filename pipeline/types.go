// Package pipeline defines the staged coordinator, its options, and
// sentinel errors.
package pipeline

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hexmesh/adjacency"
	"github.com/katalvlaran/hexmesh/cloud"
	"github.com/katalvlaran/hexmesh/hexa"
	"github.com/katalvlaran/hexmesh/quadface"
)

// Sentinel errors for stage sequencing.
var (
	// ErrGraphMissing is returned when FindFaces runs before BuildGraph.
	ErrGraphMissing = errors.New("pipeline: adjacency graph not built yet")
	// ErrFacesMissing is returned when BuildHexahedra runs before FindFaces.
	ErrFacesMissing = errors.New("pipeline: faces not discovered yet")
)

// stage tracks how far the pipeline has progressed.
type stage int

const (
	stageLoaded stage = iota // points held, nothing derived
	stageGraph               // adjacency graph materialized
	stageFaces               // face list materialized
	stageCells               // cell list materialized
)

// Pipeline owns the canonical point cloud and the derived artifacts of
// each completed reconstruction stage.
type Pipeline struct {
	points cloud.Cloud
	graph  adjacency.Graph
	faces  []quadface.Face
	cells  []hexa.Cell

	stage    stage
	log      logrus.FieldLogger
	faceOpts []quadface.Option
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithLogger injects a structured logger for stage reporting.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithFaceOptions forwards quadface options (tolerances) to every
// FindFaces invocation.
func WithFaceOptions(opts ...quadface.Option) Option {
	return func(p *Pipeline) {
		p.faceOpts = opts
	}
}

// New returns a Pipeline over a private copy of points. The default
// logger discards all output.
func New(points cloud.Cloud, opts ...Option) *Pipeline {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	p := &Pipeline{
		points: points.Clone(),
		stage:  stageLoaded,
		log:    silent,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}
