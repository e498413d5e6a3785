// File: connections.go
// Role: Directed weighted connection upserts, removals, and adjacency queries.
//
// Storage invariant:
//   - outgoing[s][t] and incoming[t][s] are written and deleted together and
//     always carry the same weight.
package core

import "math"

// ConnectPoints upserts the directed weight source→target, overwriting any
// prior weight for that direction. If bidirectional is true, target→source is
// upserted with the same weight as an independent directed connection.
//
// Returns ErrPointNotFound if either endpoint is absent, ErrBadWeight if the
// weight is negative, NaN or infinite. On error the store is unchanged.
// Complexity: O(1) amortized.
func (g *Graph) ConnectPoints(source, target PointID, weight float64, bidirectional bool) error {
	if !g.HasPoint(source) || !g.HasPoint(target) {
		return ErrPointNotFound
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}

	g.upsert(source, target, weight)
	if bidirectional {
		g.upsert(target, source, weight)
	}

	return nil
}

// upsert writes one directed connection into both adjacency mirrors.
func (g *Graph) upsert(source, target PointID, weight float64) {
	out := g.outgoing[source]
	if out == nil {
		out = make(map[PointID]float64)
		g.outgoing[source] = out
	}
	out[target] = weight

	in := g.incoming[target]
	if in == nil {
		in = make(map[PointID]float64)
		g.incoming[target] = in
	}
	in[source] = weight
}

// RemoveConnection removes the directed connection source→target; when
// bidirectional is true, target→source is removed as well. Removing a
// connection that does not exist is a no-op success.
//
// Returns ErrPointNotFound if either endpoint is absent.
// Complexity: O(1).
func (g *Graph) RemoveConnection(source, target PointID, bidirectional bool) error {
	if !g.HasPoint(source) || !g.HasPoint(target) {
		return ErrPointNotFound
	}

	g.remove(source, target)
	if bidirectional {
		g.remove(target, source)
	}

	return nil
}

// remove deletes one directed connection from both adjacency mirrors.
func (g *Graph) remove(source, target PointID) {
	delete(g.outgoing[source], target)
	delete(g.incoming[target], source)
}

// HasConnection reports whether a directed connection source→target exists.
// Pure query: absent endpoints report false.
// Complexity: O(1).
func (g *Graph) HasConnection(source, target PointID) bool {
	_, exists := g.outgoing[source][target]

	return exists
}

// Weight returns the stored weight of the directed connection source→target
// and whether that connection exists.
// Complexity: O(1).
func (g *Graph) Weight(source, target PointID) (float64, bool) {
	w, exists := g.outgoing[source][target]

	return w, exists
}

// OutgoingConnections returns a copy of the directed connections leaving id
// (target → stored weight). Safe for callers to retain and iterate.
// Complexity: O(degree), Space O(degree).
func (g *Graph) OutgoingConnections(id PointID) map[PointID]float64 {
	return copyAdjacency(g.outgoing[id])
}

// IncomingConnections returns a copy of the directed connections entering id
// (source → stored weight). Traversals that walk edges in reverse rely on
// this mirror to stay O(degree).
// Complexity: O(degree), Space O(degree).
func (g *Graph) IncomingConnections(id PointID) map[PointID]float64 {
	return copyAdjacency(g.incoming[id])
}

// copyAdjacency duplicates one adjacency bucket; nil buckets yield an empty map.
func copyAdjacency(bucket map[PointID]float64) map[PointID]float64 {
	out := make(map[PointID]float64, len(bucket))
	var id PointID
	var w float64
	for id, w = range bucket {
		out[id] = w
	}

	return out
}
