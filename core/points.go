// File: points.go
// Role: Point lifecycle and queries (add/remove, terrain, enabled flag, enumeration).
//
// Determinism:
//   - Points() returns ids sorted ascending.
//   - AvailableID() scans ascending from 0.
package core

import "sort"

// AddPoint inserts an enabled point with the given terrain.
//
// Returns ErrIDCollision (and leaves the store unchanged) if the id is already
// present. Use DefaultTerrain when no explicit terrain applies.
// Complexity: O(1) amortized.
func (g *Graph) AddPoint(id PointID, terrain Terrain) error {
	if _, exists := g.points[id]; exists {
		return ErrIDCollision
	}
	g.points[id] = point{terrain: terrain}

	return nil
}

// SetTerrain overwrites the terrain tag of an existing point. Idempotent.
//
// Returns ErrPointNotFound if the id is absent.
// Complexity: O(1).
func (g *Graph) SetTerrain(id PointID, terrain Terrain) error {
	p, exists := g.points[id]
	if !exists {
		return ErrPointNotFound
	}
	p.terrain = terrain
	g.points[id] = p

	return nil
}

// Terrain reports the terrain tag of a point. Pure query: absent ids report
// DefaultTerrain, so callers that must distinguish should check HasPoint first.
// Complexity: O(1).
func (g *Graph) Terrain(id PointID) Terrain {
	p, exists := g.points[id]
	if !exists {
		return DefaultTerrain
	}

	return p.terrain
}

// RemovePoint deletes a point together with every connection touching it, in
// either direction, preserving the graph-reference invariant.
//
// Returns ErrPointNotFound if the id is absent.
// Complexity: O(degree) — only the mirrored adjacency of the removed point is visited.
func (g *Graph) RemovePoint(id PointID) error {
	if _, exists := g.points[id]; !exists {
		return ErrPointNotFound
	}

	// Drop outgoing connections and their incoming mirrors.
	var other PointID
	for other = range g.outgoing[id] {
		delete(g.incoming[other], id)
	}
	delete(g.outgoing, id)

	// Drop incoming connections and their outgoing mirrors.
	for other = range g.incoming[id] {
		delete(g.outgoing[other], id)
	}
	delete(g.incoming, id)

	delete(g.points, id)

	return nil
}

// EnablePoint marks a point as traversable. Points are enabled by default;
// enabling an already-enabled point is a no-op success.
//
// Returns ErrPointNotFound if the id is absent.
// Complexity: O(1).
func (g *Graph) EnablePoint(id PointID) error {
	return g.setDisabled(id, false)
}

// DisablePoint excludes a point from traversal until re-enabled. Its stored
// connections are kept; a disabled point is simply never expanded from and
// never improved by relaxation during a solve.
//
// Returns ErrPointNotFound if the id is absent.
// Complexity: O(1).
func (g *Graph) DisablePoint(id PointID) error {
	return g.setDisabled(id, true)
}

// setDisabled flips the enabled flag of an existing point.
func (g *Graph) setDisabled(id PointID, disabled bool) error {
	p, exists := g.points[id]
	if !exists {
		return ErrPointNotFound
	}
	p.disabled = disabled
	g.points[id] = p

	return nil
}

// IsDisabled reports whether the point exists and is currently disabled.
// Pure query: absent ids report false.
// Complexity: O(1).
func (g *Graph) IsDisabled(id PointID) bool {
	return g.points[id].disabled
}

// HasPoint reports whether the id is currently present in the store.
// Complexity: O(1).
func (g *Graph) HasPoint(id PointID) bool {
	_, exists := g.points[id]

	return exists
}

// PointCount returns the number of points currently in the store.
// Complexity: O(1).
func (g *Graph) PointCount() int {
	return len(g.points)
}

// Points returns every point id in ascending order. A stable enumeration
// surface; higher layers rely on it for reproducible outputs.
// Complexity: O(V log V), Space O(V).
func (g *Graph) Points() []PointID {
	ids := make([]PointID, 0, len(g.points))
	var id PointID
	for id = range g.points {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// AvailableID returns the smallest non-negative id not currently used by any
// point, scanning ascending from 0. Convenient for bulk generators that must
// remain collision-free with pre-existing points.
// Complexity: O(V) worst case.
func (g *Graph) AvailableID() PointID {
	var id PointID
	for {
		if _, used := g.points[id]; !used {
			return id
		}
		id++
	}
}
