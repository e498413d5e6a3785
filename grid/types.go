// Package grid: shared types, sentinel errors, and neighbor-offset tables for
// the lattice generators.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid generation.
var (
	// ErrNilGraph indicates a nil destination graph.
	ErrNilGraph = errors.New("grid: graph is nil")

	// ErrEmptyBounds indicates bounds spanning no cells.
	ErrEmptyBounds = errors.New("grid: bounds must span at least one cell")
)

// Coord is one integer grid cell. Generators key their returned id mapping by
// Coord; the engine itself never stores coordinates.
type Coord struct {
	X, Y int
}

// Bounds describes the rectangle of cells to generate: Width×Height cells
// whose top-left cell is (X, Y). The offset lets several grids share one
// coordinate space without overlapping.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Rect is a convenience constructor for origin-anchored bounds.
func Rect(width, height int) Bounds {
	return Bounds{Width: width, Height: height}
}

// Neighbor-offset tables. Hexagonal layout is pointy-top “odd-r”: odd rows are
// shifted half a cell to the right, so the 6 offsets depend on row parity.
var (
	orthogonalOffsets = [4]Coord{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	diagonalOffsets   = [4]Coord{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}

	hexEvenOffsets = [6]Coord{
		{X: 1}, {X: -1},
		{Y: -1}, {X: -1, Y: -1},
		{Y: 1}, {X: -1, Y: 1},
	}
	hexOddOffsets = [6]Coord{
		{X: 1}, {X: -1},
		{X: 1, Y: -1}, {Y: -1},
		{X: 1, Y: 1}, {Y: 1},
	}
)

// classEnabled reports whether a connection-class weight produces connections
// at all: +Inf, -Inf and NaN disable the whole class.
func classEnabled(weight float64) bool {
	return !math.IsInf(weight, 0) && !math.IsNaN(weight)
}
