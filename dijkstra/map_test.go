package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstramap/core"
	"github.com/katalvlaran/dijkstramap/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Terrain resolution rules.
// ------------------------------------------------------------------------

func TestTerrainWeights_Multiplier(t *testing.T) {
	tw := dijkstra.TerrainWeights{0: 2.0, 1: 0.0, core.DefaultTerrain: 9.0}

	assert.Equal(t, 2.0, tw.Multiplier(0))
	assert.Zero(t, tw.Multiplier(1), "a present zero entry is used verbatim")
	assert.Equal(t, 1.0, tw.Multiplier(core.DefaultTerrain),
		"DefaultTerrain is pinned to 1.0 even when the table names it")
	assert.True(t, math.IsInf(tw.Multiplier(5), 1), "absent terrain is untraversable")

	var empty dijkstra.TerrainWeights
	assert.Equal(t, 1.0, empty.Multiplier(core.DefaultTerrain))
	assert.True(t, math.IsInf(empty.Multiplier(0), 1), "nil table: only DefaultTerrain traversable")
}

// ------------------------------------------------------------------------
// 2. Map lifecycle: clone independence and clearing.
// ------------------------------------------------------------------------

func TestMap_Clone_Independence(t *testing.T) {
	m := newMap(t, 3)
	connect(t, m, 0, 1, 1.0, true)
	connect(t, m, 1, 2, 1.0, true)
	require.NoError(t, m.Recalculate([]core.PointID{0}))

	clone := m.Clone()

	// The clone carries both the graph and the result snapshot.
	assert.True(t, clone.Graph().HasConnection(0, 1))
	assert.Equal(t, 2.0, clone.CostAt(2))

	// Mutating and re-solving the source must not leak into the clone.
	require.NoError(t, m.Graph().RemovePoint(1))
	require.NoError(t, m.Recalculate([]core.PointID{0}))
	assert.True(t, math.IsInf(m.CostAt(2), 1))
	assert.True(t, clone.Graph().HasPoint(1))
	assert.Equal(t, 2.0, clone.CostAt(2))

	// And the other way around.
	require.NoError(t, clone.Graph().AddPoint(9, core.DefaultTerrain))
	assert.False(t, m.Graph().HasPoint(9))
}

func TestMap_Clear_DropsGraphAndResults(t *testing.T) {
	m := newMap(t, 2)
	connect(t, m, 0, 1, 1.0, true)
	require.NoError(t, m.Recalculate([]core.PointID{0}))

	m.Clear()
	assert.Equal(t, 0, m.Graph().PointCount())
	assert.Empty(t, m.CostMap())
	assert.True(t, math.IsInf(m.CostAt(0), 1))
}
