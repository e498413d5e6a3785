// File: map.go
// Role: The stateful Map engine — point-store ownership, result storage,
//       deep copy and reset.
package dijkstra

import "github.com/katalvlaran/dijkstramap/core"

// pathInfo is one committed result entry: the terrain-scaled cost to the
// nearest origin and the adjacent point recorded by the search (next step
// toward the origin in destination mode, predecessor in source mode).
type pathInfo struct {
	cost      float64
	direction core.PointID
}

// Map bundles a point store with the result set of its latest recalculation.
//
// The Map exclusively owns both: mutate the graph through Graph(), solve with
// Recalculate, read through the query methods. There is no internal locking;
// concurrent use of one Map requires external mutual exclusion.
type Map struct {
	graph  *core.Graph
	result map[core.PointID]pathInfo
}

// NewMap creates an empty Map with a fresh point store and no results.
// Complexity: O(1).
func NewMap() *Map {
	return &Map{
		graph:  core.NewGraph(),
		result: make(map[core.PointID]pathInfo),
	}
}

// Graph exposes the Map's point store for population and editing. The Map
// retains ownership; results are only refreshed by the next Recalculate.
func (m *Map) Graph() *core.Graph {
	return m.graph
}

// Clone returns a fully independent deep copy of the Map: its point store and
// its current result set. Later mutation of either side never affects the other.
// Complexity: O(V + E).
func (m *Map) Clone() *Map {
	clone := &Map{
		graph:  m.graph.Clone(),
		result: make(map[core.PointID]pathInfo, len(m.result)),
	}
	var id core.PointID
	var info pathInfo
	for id, info = range m.result {
		clone.result[id] = info
	}

	return clone
}

// Clear empties both the point store and the current result set.
// Complexity: O(1) for map reallocation.
func (m *Map) Clear() {
	m.graph.Clear()
	m.result = make(map[core.PointID]pathInfo)
}
