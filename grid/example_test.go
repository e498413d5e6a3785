// Package grid_test provides runnable examples for the lattice generators.
package grid_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dijkstramap/core"
	"github.com/katalvlaran/dijkstramap/dijkstra"
	"github.com/katalvlaran/dijkstramap/grid"
)

// ExampleSquare demonstrates generating an orthogonal-only square grid and
// solving a flow field across it in one go.
func ExampleSquare() {
	m := dijkstra.NewMap()

	// 1) A 3×3 lattice with unit orthogonal steps; +Inf omits the diagonals.
	ids, err := grid.Square(m.Graph(), grid.Rect(3, 3), core.DefaultTerrain, 1.0, math.Inf(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Solve toward the top-left corner.
	if err := m.Recalculate([]core.PointID{ids[grid.Coord{X: 0, Y: 0}]}); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The opposite corner sits a Manhattan distance of 4 away.
	fmt.Printf("points=%d cost(2,2)=%v\n", m.Graph().PointCount(), m.CostAt(ids[grid.Coord{X: 2, Y: 2}]))
	// Output: points=9 cost(2,2)=4
}

// ExampleHexagonal demonstrates the 6-neighbor adjacency of a hexagonal grid.
func ExampleHexagonal() {
	g := core.NewGraph()

	// 1) A 3×3 pointy-top hexagonal lattice with unit steps.
	ids, err := grid.Hexagonal(g, grid.Rect(3, 3), core.DefaultTerrain, 1.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) The center cell touches all 6 of its hexagonal neighbors.
	center := ids[grid.Coord{X: 1, Y: 1}]
	fmt.Printf("center neighbors: %d\n", len(g.OutgoingConnections(center)))
	// Output: center neighbors: 6
}
