// Package dijkstramap is a bulk shortest-path engine for directed weighted
// graphs with terrain-scaled traversal costs, built for tile-based games and
// crowd movement: solve once toward a set of origins, then answer unlimited
// cost and next-step queries in O(1).
//
// 🚀 What is dijkstramap?
//
//	A small, focused library that brings together:
//		• Point store: identifier-addressed points with terrain tags,
//		  enable/disable flags and mirrored weighted adjacency
//		• Recalculation: multi-source Dijkstra with terrain multipliers,
//		  cost ceilings, seeded initial costs and early termination
//		• Queries: per-point cost, next-step direction, full path walks,
//		  cost-band selection — all over one immutable result snapshot
//		• Grids: square (orthogonal + diagonal) and hexagonal generators
//		  that bulk-populate a graph in one call
//
// ✨ Why choose dijkstramap?
//
//   - Flow-field friendly – one solve serves every agent on the map
//   - Predictable – deterministic queries, atomic recalculation results
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     — the Graph point store: points, terrain, connections, cloning
//	dijkstra/ — the Map solver and its query layer
//	grid/     — square and hexagonal lattice generators over core.Graph
//
// Quick ASCII example:
//
//	    0───1───2      Recalculate({0}) yields
//	        │          cost: 0,1,2,2  direction: 0,0,1,1
//	        3          and ShortestPathFrom(2) = [1 0].
//
//	go get github.com/katalvlaran/dijkstramap
package dijkstramap
