package pipeline

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hexmesh/adjacency"
	"github.com/katalvlaran/hexmesh/cloud"
	"github.com/katalvlaran/hexmesh/hexa"
	"github.com/katalvlaran/hexmesh/quadface"
)

// Reset discards the graph, faces, and cells, keeping only the points.
func (p *Pipeline) Reset() {
	p.graph, p.faces, p.cells = nil, nil, nil
	p.stage = stageLoaded
	p.log.Info("pipeline reset, points retained")
}

// BuildGraph runs stage 1 over the held points. Any previously derived
// faces and cells are invalidated. Always succeeds on a loaded cloud.
func (p *Pipeline) BuildGraph() adjacency.Graph {
	start := time.Now()
	p.graph = adjacency.Build(p.points)
	p.faces, p.cells = nil, nil
	p.stage = stageGraph
	p.log.WithFields(logrus.Fields{
		"points":  len(p.points),
		"edges":   p.graph.EdgeCount(),
		"elapsed": time.Since(start),
	}).Info("adjacency graph built")

	return p.graph
}

// FindFaces runs stage 2. Returns ErrGraphMissing if the graph has not
// been built since the last Reset, or an option error from quadface.
func (p *Pipeline) FindFaces() ([]quadface.Face, error) {
	if p.stage < stageGraph {
		return nil, ErrGraphMissing
	}
	start := time.Now()
	faces, err := quadface.Find(p.points, p.graph, p.faceOpts...)
	if err != nil {
		return nil, err
	}
	p.faces = faces
	p.cells = nil
	p.stage = stageFaces
	p.log.WithFields(logrus.Fields{
		"faces":   len(faces),
		"elapsed": time.Since(start),
	}).Info("faces discovered")

	return faces, nil
}

// BuildHexahedra runs stage 3. Returns ErrFacesMissing if faces have
// not been discovered since the last Reset or graph rebuild.
func (p *Pipeline) BuildHexahedra() ([]hexa.Cell, error) {
	if p.stage < stageFaces {
		return nil, ErrFacesMissing
	}
	start := time.Now()
	p.cells = hexa.Build(p.faces, p.graph)
	p.stage = stageCells
	p.log.WithFields(logrus.Fields{
		"cells":   len(p.cells),
		"elapsed": time.Since(start),
	}).Info("hexahedra assembled")

	return p.cells, nil
}

// Run executes all three stages in order and returns the final cells.
func (p *Pipeline) Run() ([]hexa.Cell, error) {
	p.BuildGraph()
	if _, err := p.FindFaces(); err != nil {
		return nil, err
	}

	return p.BuildHexahedra()
}

// Points returns the held point cloud. Treat it as read-only.
func (p *Pipeline) Points() cloud.Cloud { return p.points }

// Graph returns the stage-1 artifact, or nil before BuildGraph.
func (p *Pipeline) Graph() adjacency.Graph { return p.graph }

// Faces returns the stage-2 artifact, or nil before FindFaces.
func (p *Pipeline) Faces() []quadface.Face { return p.faces }

// Hexahedra returns the stage-3 artifact, or nil before BuildHexahedra.
func (p *Pipeline) Hexahedra() []hexa.Cell { return p.cells }
