package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/hexmesh/cloud"
	"github.com/katalvlaran/hexmesh/hexa"
)

// writeOBJ emits every point as a vertex and every cell's six quads as
// faces. Vertex indices are 1-based per the OBJ format, and shared
// faces of neighboring cells are emitted once per cell.
func writeOBJ(w io.Writer, points cloud.Cloud, cells []hexa.Cell) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# hexmesh: %d vertices, %d cells\n", len(points), len(cells))
	for _, p := range points {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", p.Pos.X, p.Pos.Y, p.Pos.Z)
	}
	for i, c := range cells {
		fmt.Fprintf(bw, "g cell%d\n", i)
		for _, q := range c.Quads() {
			fmt.Fprintf(bw, "f %d %d %d %d\n", q[0]+1, q[1]+1, q[2]+1, q[3]+1)
		}
	}

	return bw.Flush()
}
