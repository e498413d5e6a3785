// Package core defines the point store at the heart of the dijkstramap module:
// a directed weighted graph whose vertices (“points”) are identified by integer
// ids and carry a terrain tag plus an enabled flag.
//
// What:
//
//   - Graph owns the set of points, their terrain assignment, enabled/disabled
//     flags, and the directed weighted connection set.
//   - Connections are stored per direction; a “bidirectional” connect or remove
//     is sugar for two independent directed upserts/removals.
//   - Adjacency is mirrored (outgoing and incoming), so traversals that walk
//     edges in reverse cost O(degree) rather than O(E).
//   - Clone produces a fully independent deep copy; Clear empties the store.
//
// Why:
//
//   - Game worlds and similar interactive maps refer to locations by plain ids
//     and attach geometry externally; the store never reasons about coordinates.
//   - An id-indexed arena plus adjacency maps keeps edges as plain index
//     references: no pointer links, no ownership cycles, no dangling references.
//
// Concurrency:
//
//   - A Graph holds no internal synchronization. One goroutine owns one Graph;
//     concurrent mutation requires external mutual exclusion. This is a
//     deliberate contract: the store backs a blocking, single-owner solver.
//
// Errors:
//
//   - ErrPointNotFound: operation referenced an id not currently in the store.
//   - ErrIDCollision:   AddPoint on an id already present.
//   - ErrBadWeight:     connection weight is negative, NaN or infinite.
//
// Mutating operations fail atomically: on any error the store is left exactly
// as before the call. Pure queries (HasPoint, HasConnection, Terrain, ...)
// never fail and return zero-value sentinels for absent entities.
package core
