// Package grid bulk-populates a core.Graph with lattice topology: square grids
// with optional diagonals, and pointy-top hexagonal grids.
//
// What:
//
//   - Square adds one point per integer cell of a bounded rectangle and
//     connects each cell bidirectionally to its up-to-4 orthogonal and
//     up-to-4 diagonal neighbors, each class with its own weight.
//   - Hexagonal does the same with the 6-neighbor pointy-top adjacency
//     pattern, odd rows shifted right (neighbor offsets depend on row parity).
//   - Point ids are allocated through Graph.AvailableID, so generated grids
//     never collide with pre-existing points; both generators return the
//     mapping from grid coordinate to allocated id.
//
// Why:
//
//   - Tile-based game worlds almost always start from a regular lattice and
//     then carve it (remove points, disable cells, reweight connections); the
//     generators are pure composition over AddPoint + ConnectPoints and add no
//     invariants of their own.
//
// Weights:
//
//   - A +Inf, -Inf or NaN class weight omits that whole connection class
//     (e.g. diagonal +Inf yields a purely orthogonal grid).
//   - A negative finite class weight is rejected before any mutation.
//
// Errors:
//
//   - ErrNilGraph:    the destination graph is nil.
//   - ErrEmptyBounds: bounds have no cells (width or height < 1).
//   - core.ErrBadWeight (wrapped): a class weight is negative and finite.
//
// Both generators either fully succeed or leave the graph untouched.
package grid
