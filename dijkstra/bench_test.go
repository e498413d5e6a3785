// Package dijkstra_test provides benchmarks for Recalculate and the query
// layer on generated grids.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dijkstramap/core"
	"github.com/katalvlaran/dijkstramap/dijkstra"
	"github.com/katalvlaran/dijkstramap/grid"
)

// benchGrid builds an n×n orthogonal unit grid and returns the map together
// with the ids of two opposite corners.
func benchGrid(b *testing.B, n int) (*dijkstra.Map, core.PointID, core.PointID) {
	m := dijkstra.NewMap()
	ids, err := grid.Square(m.Graph(), grid.Rect(n, n), core.DefaultTerrain, 1.0, math.Inf(1))
	if err != nil {
		b.Fatalf("setup Square failed: %v", err)
	}

	return m, ids[grid.Coord{X: 0, Y: 0}], ids[grid.Coord{X: n - 1, Y: n - 1}]
}

// BenchmarkRecalculate_Grid measures a full single-origin solve over a
// 100×100 orthogonal grid. Complexity: O((V+E) log V).
func BenchmarkRecalculate_Grid(b *testing.B) {
	m, origin, _ := benchGrid(b, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Recalculate([]core.PointID{origin}); err != nil {
			b.Fatalf("Recalculate failed: %v", err)
		}
	}
}

// BenchmarkRecalculate_MaxCost measures a ceiling-bounded solve that settles
// only a small disc around the origin of a 100×100 grid.
func BenchmarkRecalculate_MaxCost(b *testing.B) {
	m, origin, _ := benchGrid(b, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Recalculate([]core.PointID{origin}, dijkstra.WithMaxCost(10)); err != nil {
			b.Fatalf("Recalculate failed: %v", err)
		}
	}
}

// BenchmarkRecalculate_Termination measures an early-exit solve targeting the
// far corner of a 100×100 grid.
func BenchmarkRecalculate_Termination(b *testing.B) {
	m, origin, far := benchGrid(b, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Recalculate([]core.PointID{origin}, dijkstra.WithTermination(far)); err != nil {
			b.Fatalf("Recalculate failed: %v", err)
		}
	}
}

// BenchmarkShortestPathFrom measures path reconstruction across the diagonal
// of a solved 100×100 grid. Complexity: O(path length).
func BenchmarkShortestPathFrom(b *testing.B) {
	m, origin, far := benchGrid(b, 100)
	if err := m.Recalculate([]core.PointID{origin}); err != nil {
		b.Fatalf("setup Recalculate failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.ShortestPathFrom(far)
	}
}
