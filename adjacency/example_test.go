package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/hexmesh/adjacency"
	"github.com/katalvlaran/hexmesh/cloud"
)

// ExampleBuild constructs the neighbor graph of a unit cube, where the
// required degree of 3 per corner recovers exactly the cube edges.
func ExampleBuild() {
	g := adjacency.Build(cloud.UnitCube())

	fmt.Println("points:", g.Len())
	fmt.Println("neighbors of 0:", g.Neighbors(0))
	fmt.Println("0 selects 6 (body diagonal):", g.Has(0, 6))
	// Output:
	// points: 8
	// neighbors of 0: [1 3 4]
	// 0 selects 6 (body diagonal): false
}
