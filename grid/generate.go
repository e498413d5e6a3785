// File: generate.go
// Role: The Square and Hexagonal lattice generators.
//
// Both run in two passes: allocate-and-add every cell first, then connect
// neighbor pairs, so connections only ever reference present points.
package grid

import (
	"fmt"

	"github.com/katalvlaran/dijkstramap/core"
)

// Square populates g with a Width×Height lattice of points carrying the given
// terrain. Each cell is connected bidirectionally to its up-to-4 orthogonal
// neighbors with orthogonalCost and its up-to-4 diagonal neighbors with
// diagonalCost; an infinite or NaN cost omits that whole class.
//
// Returns the mapping from cell coordinate to allocated point id.
// Complexity: O(W×H) point insertions, O(W×H) connection upserts — each
// allocation scans AvailableID, so a store with a dense non-negative id range
// costs O(W×H×V) worst case.
func Square(g *core.Graph, bounds Bounds, terrain core.Terrain, orthogonalCost, diagonalCost float64) (map[Coord]core.PointID, error) {
	if err := validCost("orthogonal", orthogonalCost); err != nil {
		return nil, err
	}
	if err := validCost("diagonal", diagonalCost); err != nil {
		return nil, err
	}
	ids, err := populate(g, bounds, terrain)
	if err != nil {
		return nil, err
	}

	var cell Coord
	var id core.PointID
	for cell, id = range ids {
		if classEnabled(orthogonalCost) {
			connectClass(g, ids, cell, id, orthogonalOffsets[:], orthogonalCost)
		}
		if classEnabled(diagonalCost) {
			connectClass(g, ids, cell, id, diagonalOffsets[:], diagonalCost)
		}
	}

	return ids, nil
}

// Hexagonal populates g with a Width×Height pointy-top hexagonal lattice of
// points carrying the given terrain, connecting each cell bidirectionally to
// its up-to-6 neighbors with the given weight; an infinite or NaN weight
// yields points without any connections. Row parity is taken on the absolute
// y coordinate, so offset grids stitch consistently.
//
// Returns the mapping from cell coordinate to allocated point id.
// Complexity: as Square.
func Hexagonal(g *core.Graph, bounds Bounds, terrain core.Terrain, weight float64) (map[Coord]core.PointID, error) {
	if err := validCost("hexagonal", weight); err != nil {
		return nil, err
	}
	ids, err := populate(g, bounds, terrain)
	if err != nil {
		return nil, err
	}
	if !classEnabled(weight) {
		return ids, nil
	}

	var cell Coord
	var id core.PointID
	for cell, id = range ids {
		offsets := hexEvenOffsets[:]
		if parity(cell.Y) == 1 {
			offsets = hexOddOffsets[:]
		}
		connectClass(g, ids, cell, id, offsets, weight)
	}

	return ids, nil
}

// populate validates the inputs and adds one fresh point per cell.
func populate(g *core.Graph, bounds Bounds, terrain core.Terrain) (map[Coord]core.PointID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if bounds.Width < 1 || bounds.Height < 1 {
		return nil, ErrEmptyBounds
	}

	ids := make(map[Coord]core.PointID, bounds.Width*bounds.Height)
	var x, y int
	for y = bounds.Y; y < bounds.Y+bounds.Height; y++ {
		for x = bounds.X; x < bounds.X+bounds.Width; x++ {
			id := g.AvailableID()
			// AvailableID guarantees a fresh id, so AddPoint cannot collide.
			if err := g.AddPoint(id, terrain); err != nil {
				return nil, err
			}
			ids[Coord{X: x, Y: y}] = id
		}
	}

	return ids, nil
}

// connectClass upserts bidirectional connections from one cell to every
// neighbor of one offset class that belongs to the generated grid. Pairs are
// visited from both sides; the second upsert is an idempotent overwrite.
func connectClass(g *core.Graph, ids map[Coord]core.PointID, cell Coord, id core.PointID, offsets []Coord, weight float64) {
	var d Coord
	for _, d = range offsets {
		neighbor, inGrid := ids[Coord{X: cell.X + d.X, Y: cell.Y + d.Y}]
		if !inGrid {
			continue
		}
		// Endpoints were just added and the weight was validated, so the
		// upsert cannot fail.
		_ = g.ConnectPoints(id, neighbor, weight, true)
	}
}

// validCost rejects negative finite class weights before any mutation; a
// non-finite weight is legal and simply disables the class.
func validCost(class string, weight float64) error {
	if classEnabled(weight) && weight < 0 {
		return fmt.Errorf("grid: %s cost %v: %w", class, weight, core.ErrBadWeight)
	}

	return nil
}

// parity maps a possibly-negative row index to 0 (even) or 1 (odd).
func parity(y int) int {
	return ((y % 2) + 2) % 2
}
