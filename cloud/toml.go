package cloud

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/gonum/spatial/r3"
)

// tomlPoint mirrors one [[point]] table in a point-set document.
type tomlPoint struct {
	Pos       []float64 `toml:"pos"`
	Neighbors int       `toml:"neighbors"`
}

// tomlDoc is the top-level TOML document shape.
type tomlDoc struct {
	Point []tomlPoint `toml:"point"`
}

// DecodeTOML reads a point set from r. The expected document is a list
// of [[point]] tables:
//
//	[[point]]
//	pos = [0.0, 0.0, 1.0]
//	neighbors = 4
//
// Returns ErrNoPoints for an empty document, ErrBadPosition when a pos
// array does not hold exactly 3 coordinates, and ErrBadNeighbors for a
// negative neighbor count. Decoding stops at the first invalid point.
func DecodeTOML(r io.Reader) (Cloud, error) {
	var doc tomlDoc
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cloud: decode TOML: %w", err)
	}
	if len(doc.Point) == 0 {
		return nil, ErrNoPoints
	}

	pts := make(Cloud, 0, len(doc.Point))
	for i, tp := range doc.Point {
		if len(tp.Pos) != 3 {
			return nil, fmt.Errorf("%w: point %d has %d", ErrBadPosition, i, len(tp.Pos))
		}
		if tp.Neighbors < 0 {
			return nil, fmt.Errorf("%w: point %d has %d", ErrBadNeighbors, i, tp.Neighbors)
		}
		pts = append(pts, Point{
			Pos:               r3.Vec{X: tp.Pos[0], Y: tp.Pos[1], Z: tp.Pos[2]},
			RequiredNeighbors: tp.Neighbors,
		})
	}

	return pts, nil
}
