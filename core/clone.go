// File: clone.go
// Role: Deep copy and reset of point stores.
//
// Value semantics:
//   - Clone shares no mutable state with its source; later mutation of either
//     side never affects the other.
package core

// Clone returns a fully independent deep copy of the store: points, terrain
// tags, enabled flags, and both adjacency mirrors.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph()

	var id PointID
	var p point
	for id, p = range g.points {
		clone.points[id] = p
	}
	for id = range g.outgoing {
		clone.outgoing[id] = copyAdjacency(g.outgoing[id])
	}
	for id = range g.incoming {
		clone.incoming[id] = copyAdjacency(g.incoming[id])
	}

	return clone
}

// Clear empties the store: all points and connections are dropped.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.points = make(map[PointID]point)
	g.outgoing = make(map[PointID]map[PointID]float64)
	g.incoming = make(map[PointID]map[PointID]float64)
}
