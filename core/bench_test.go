// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/dijkstramap/core"
)

// BenchmarkAddPoint measures point insertion into a growing store.
func BenchmarkAddPoint(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddPoint(core.PointID(i), core.DefaultTerrain)
	}
}

// BenchmarkConnectPoints measures bidirectional connection upserts in a star
// topology around one hub.
func BenchmarkConnectPoints(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddPoint(0, core.DefaultTerrain)
	for i := 1; i <= 1000; i++ {
		_ = g.AddPoint(core.PointID(i), core.DefaultTerrain)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Cycle through the leaves; repeats exercise the overwrite path.
		_ = g.ConnectPoints(0, core.PointID(i%1000+1), 1.0, true)
	}
}

// BenchmarkClone measures a deep copy of a 1000-leaf star.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddPoint(0, core.DefaultTerrain)
	for i := 1; i <= 1000; i++ {
		_ = g.AddPoint(core.PointID(i), core.DefaultTerrain)
		_ = g.ConnectPoints(0, core.PointID(i), 1.0, true)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
