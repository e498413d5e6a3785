// Package dijkstra implements a bulk, multi-source shortest-path map over a
// core.Graph point store.
//
// Unlike a single-pair solver, a Map computes — in one Recalculate call — the
// cost and next-step direction from every reachable point to the nearest of a
// set of origins, with terrain-dependent traversal cost, an optional cost
// ceiling, and optional early termination. The committed result set then backs
// a read-only query layer: cost and direction lookups, range queries, and path
// reconstruction.
//
// Model:
//
//   - Origins may be treated as destinations (default: the search relaxes each
//     point's incoming connections, so a point's direction is the next step to
//     take toward the nearest origin) or as sources (the search walks outgoing
//     connections in their natural direction, so a point's direction is its
//     predecessor toward the nearest origin).
//   - TerrainWeights maps terrain tags to cost multipliers for one call.
//     core.DefaultTerrain is always 1.0; terrains absent from the table are
//     impassable. The effective cost of a step into neighbor v is
//     storedWeight × multiplier(terrain(v)), in both search modes.
//   - Results are replaced wholesale on every successful Recalculate and left
//     completely intact when validation fails; callers never observe a
//     partially updated result set.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per Recalculate, using a lazy-decrease-key
//     min-heap (duplicates pushed, stale entries skipped on pop).
//   - Space: O(V + E).
//
// Options (functional, validated once at the Recalculate boundary):
//
//   - WithOriginsAsSources: flip the search mode (origins are destinations by default).
//   - WithMaxCost(c):       cost ceiling; points whose cost exceeds c are absent from results.
//   - WithInitialCosts(cs): per-origin seed costs, aligned by position, default 0.
//   - WithTerrainWeights(tw): terrain multiplier table for this call.
//   - WithTermination(ids): stop once every reachable listed point is settled.
//
// Errors (sentinel, all wrapping ErrInvalidParameter):
//
//   - ErrBadMaxCost:       maximum cost is NaN.
//   - ErrBadInitialCost:   an initial cost is negative, NaN or infinite.
//   - ErrBadTerrainWeight: a terrain multiplier is negative.
//
// Unreachability is never an error: queries yield +Inf costs, NoDirection, or
// empty paths for unknown and unsettled points.
//
// A Map holds no internal synchronization; one goroutine owns one Map, and
// Clone produces an independent deep copy sharing no mutable state.
package dijkstra
