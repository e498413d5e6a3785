// File: query.go
// Role: Read-only accessors over the latest committed result set.
//
// Queries never fail: unknown or unsettled points yield sentinels (+Inf cost,
// NoDirection, empty path) rather than errors.
package dijkstra

import (
	"math"
	"sort"

	"github.com/katalvlaran/dijkstramap/core"
)

// CostAt returns the terrain-scaled cost from the point to its nearest origin,
// or +Inf if the point is unknown or was not reached by the latest solve.
// Complexity: O(1).
func (m *Map) CostAt(id core.PointID) float64 {
	if info, ok := m.result[id]; ok {
		return info.cost
	}

	return math.Inf(1)
}

// DirectionAt returns the adjacent point recorded for id by the latest solve
// (the next step toward the nearest origin in destination mode), or
// NoDirection if the point is unknown or unreached. An origin's own direction
// equals itself, denoting “already at goal”.
// Complexity: O(1).
func (m *Map) DirectionAt(id core.PointID) core.PointID {
	if info, ok := m.result[id]; ok {
		return info.direction
	}

	return NoDirection
}

// Result returns the cost and direction recorded for id, with ok reporting
// whether the point was reached at all. Prefer this over DirectionAt when the
// store uses negative point ids that could collide with the NoDirection sentinel.
// Complexity: O(1).
func (m *Map) Result(id core.PointID) (cost float64, direction core.PointID, ok bool) {
	info, ok := m.result[id]
	if !ok {
		return math.Inf(1), NoDirection, false
	}

	return info.cost, info.direction, true
}

// CostAtPoints resolves CostAt for each id in order.
// Complexity: O(len(ids)).
func (m *Map) CostAtPoints(ids ...core.PointID) []float64 {
	costs := make([]float64, len(ids))
	var i int
	var id core.PointID
	for i, id = range ids {
		costs[i] = m.CostAt(id)
	}

	return costs
}

// DirectionAtPoints resolves DirectionAt for each id in order.
// Complexity: O(len(ids)).
func (m *Map) DirectionAtPoints(ids ...core.PointID) []core.PointID {
	dirs := make([]core.PointID, len(ids))
	var i int
	var id core.PointID
	for i, id = range ids {
		dirs[i] = m.DirectionAt(id)
	}

	return dirs
}

// CostMap dumps the full cost side of the result set. Unreached points are
// absent. The returned map is a copy, safe to retain.
// Complexity: O(R), R = reached points.
func (m *Map) CostMap() map[core.PointID]float64 {
	costs := make(map[core.PointID]float64, len(m.result))
	var id core.PointID
	var info pathInfo
	for id, info = range m.result {
		costs[id] = info.cost
	}

	return costs
}

// DirectionMap dumps the full direction side of the result set. Unreached
// points are absent. The returned map is a copy, safe to retain.
// Complexity: O(R).
func (m *Map) DirectionMap() map[core.PointID]core.PointID {
	dirs := make(map[core.PointID]core.PointID, len(m.result))
	var id core.PointID
	var info pathInfo
	for id, info = range m.result {
		dirs[id] = info.direction
	}

	return dirs
}

// PointsWithCostBetween returns every reached point whose cost lies in the
// inclusive [min, max] range, ordered by ascending cost with ascending id as
// the deterministic tie-break.
// Complexity: O(R log R).
func (m *Map) PointsWithCostBetween(min, max float64) []core.PointID {
	ids := make([]core.PointID, 0)
	var id core.PointID
	var info pathInfo
	for id, info = range m.result {
		if info.cost >= min && info.cost <= max {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		ci, cj := m.result[ids[i]].cost, m.result[ids[j]].cost
		if ci != cj {
			return ci < cj
		}

		return ids[i] < ids[j]
	})

	return ids
}

// ShortestPathFrom follows direction links from id until reaching a point
// whose direction is itself (arrival at an origin) and returns the visited
// sequence, excluding the starting point.
//
// The result is empty when id is unknown, unreached, or already an origin.
// Iteration is bounded by the point count: the direction graph is acyclic by
// construction of shortest paths, and the bound guards against malformed state.
// Complexity: O(path length).
func (m *Map) ShortestPathFrom(id core.PointID) []core.PointID {
	info, ok := m.result[id]
	if !ok || info.direction == id {
		return nil
	}

	path := make([]core.PointID, 0)
	current := id
	bound := m.graph.PointCount()
	var i int
	for i = 0; i < bound; i++ {
		info, ok = m.result[current]
		if !ok {
			break
		}
		if info.direction == current {
			break
		}
		path = append(path, info.direction)
		current = info.direction
	}

	return path
}
