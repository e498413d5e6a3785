// Package core: central types, sentinel errors, and the Graph constructor.
package core

import "errors"

// Sentinel errors for point-store operations.
var (
	// ErrPointNotFound indicates an operation referenced a point id that is not
	// currently present in the store.
	ErrPointNotFound = errors.New("core: point not found")

	// ErrIDCollision indicates AddPoint was called with an id already in use.
	ErrIDCollision = errors.New("core: point id already present")

	// ErrBadWeight indicates a connection weight that is negative, NaN or infinite.
	ErrBadWeight = errors.New("core: connection weight must be non-negative and finite")
)

// PointID identifies a point within a Graph. Ids are signed and need not be
// contiguous or non-negative; they are unique only among currently-present points.
type PointID int32

// Terrain tags a point for per-recalculation cost scaling. The sentinel
// DefaultTerrain always resolves to a multiplier of 1.0 regardless of any
// terrain-weight table supplied to a solve.
type Terrain int32

// DefaultTerrain is the terrain assigned when no explicit terrain is chosen.
const DefaultTerrain Terrain = -1

// point is the per-id record of the arena: terrain tag plus enabled flag.
// Points are enabled by default; the zero value of disabled reflects that.
type point struct {
	terrain  Terrain
	disabled bool
}

// Graph is the in-memory point store: an id-indexed arena of point records
// plus directed weighted adjacency, mirrored in both directions.
//
// Invariants:
//
//   - Every connection references two currently-present points; RemovePoint
//     deletes every connection touching the removed id.
//   - outgoing[s][t] exists iff incoming[t][s] exists, with equal weight.
//   - Stored weights are non-negative and finite.
type Graph struct {
	points   map[PointID]point
	outgoing map[PointID]map[PointID]float64 // source → target → weight
	incoming map[PointID]map[PointID]float64 // target → source → weight
}

// NewGraph creates an empty point store.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		points:   make(map[PointID]point),
		outgoing: make(map[PointID]map[PointID]float64),
		incoming: make(map[PointID]map[PointID]float64),
	}
}
