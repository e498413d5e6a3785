// File: recalculate.go
// Role: The multi-source Dijkstra solve — seeding, the settle/relax loop, and
//       the wholesale result commit.
//
// Tie-breaking: when two relaxations produce equal tentative cost, the first
// one processed wins; the solve guarantees a shortest cost, not a canonical
// path among equal-cost alternatives.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/dijkstramap/core"
)

// Recalculate runs one full multi-source Dijkstra solve over the Map's point
// store and replaces the result set atomically on success.
//
// origins lists the seed points; order and duplicates are allowed, and ids
// that are unknown or disabled are silently skipped (not a failure). Options
// customize the solve (see Options); they are validated once before the loop
// runs, and on a validation error the previous result set is left completely
// intact.
//
// Complexity: O((V + E) log V), Space O(V + E).
func (m *Map) Recalculate(origins []core.PointID, opts ...Option) error {
	// 1) Assemble and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	// 2) Prepare the runner state. Capacity V is a reasonable starting point.
	V := m.graph.PointCount()
	r := &runner{
		graph:   m.graph,
		cfg:     cfg,
		dist:    make(map[core.PointID]float64, V),
		dir:     make(map[core.PointID]core.PointID, V),
		settled: make(map[core.PointID]pathInfo, V),
		pq:      make(nodePQ, 0, V),
	}
	heap.Init(&r.pq)

	// 3) Seed the frontier and run the settle/relax loop.
	r.seed(origins)
	r.process()

	// 4) Commit: the settled set becomes the new results only after the loop
	//    terminates, so callers never observe a partial update.
	m.result = r.settled

	return nil
}

// runner holds the mutable state of a single solve.
type runner struct {
	graph     *core.Graph
	cfg       Options
	dist      map[core.PointID]float64      // tentative cost per frontier point
	dir       map[core.PointID]core.PointID // tentative direction per frontier point
	settled   map[core.PointID]pathInfo     // finalized results, committed on success
	pq        nodePQ                        // lazy min-heap keyed by tentative cost
	remaining map[core.PointID]struct{}     // unsettled termination points; nil when unused
}

// seed pushes each usable origin at its initial cost. Initial costs pair with
// origins by position; origins beyond the list's length seed at 0. Duplicate
// origins keep their cheapest seeding. An origin's direction is itself,
// denoting “already at goal”.
func (r *runner) seed(origins []core.PointID) {
	var (
		i    int
		id   core.PointID
		cost float64
	)
	for i, id = range origins {
		if !r.graph.HasPoint(id) || r.graph.IsDisabled(id) {
			continue
		}
		cost = 0
		if i < len(r.cfg.InitialCosts) {
			cost = r.cfg.InitialCosts[i]
		}
		if best, seen := r.dist[id]; seen && best <= cost {
			continue
		}
		r.dist[id] = cost
		r.dir[id] = id
		heap.Push(&r.pq, &nodeItem{id: id, cost: cost})
	}

	if len(r.cfg.Termination) > 0 {
		r.remaining = make(map[core.PointID]struct{}, len(r.cfg.Termination))
		for _, id = range r.cfg.Termination {
			r.remaining[id] = struct{}{}
		}
	}
}

// process repeatedly extracts the minimum-cost unsettled point, settles it,
// and relaxes its neighbors.
//
// Loop termination:
//
//   - The frontier empties (all reachable points settled).
//   - The popped cost exceeds MaxCost: by the heap's monotonic pop order no
//     queued point can be cheaper, so everything left is out of budget.
//   - A termination set was supplied and all of its settled-able members are
//     settled.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entries for already-settled points.
		if _, done := r.settled[item.id]; done {
			continue
		}

		// Ceiling cutoff stops the whole loop, not just this entry.
		if item.cost > r.cfg.MaxCost {
			break
		}

		// Settle: cost and direction are now final for this point.
		r.settled[item.id] = pathInfo{cost: item.cost, direction: r.dir[item.id]}

		if r.remaining != nil {
			if _, wanted := r.remaining[item.id]; wanted {
				delete(r.remaining, item.id)
				if len(r.remaining) == 0 {
					break
				}
			}
		}

		r.relax(item.id, item.cost)
	}
}

// relax improves the tentative cost of each neighbor of the settled point u.
// The neighbor set depends on the search mode: destination mode walks u's
// incoming connections (the step u→v is the edge v→u as stored), source mode
// walks u's outgoing connections. Either way the effective step cost is the
// stored weight scaled by the terrain multiplier of v — the point entered as
// actually walked.
func (r *runner) relax(u core.PointID, du float64) {
	var neighbors map[core.PointID]float64
	if r.cfg.OriginsAsSources {
		neighbors = r.graph.OutgoingConnections(u)
	} else {
		neighbors = r.graph.IncomingConnections(u)
	}

	var (
		v    core.PointID
		w    float64
		mult float64
		cand float64
	)
	for v, w = range neighbors {
		// Disabled points are never improved by relaxation.
		if r.graph.IsDisabled(v) {
			continue
		}

		// An infinite or NaN multiplier makes the step impassable for this call.
		mult = r.weight(v)
		if math.IsInf(mult, 1) || math.IsNaN(mult) {
			continue
		}

		cand = du + w*mult
		if cand > r.cfg.MaxCost {
			continue
		}
		// Strict improvement only: on equal cost the first relaxation wins.
		if best, seen := r.dist[v]; seen && cand >= best {
			continue
		}

		r.dist[v] = cand
		r.dir[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, cost: cand})
	}
}

// weight resolves the effective terrain multiplier of one point.
func (r *runner) weight(id core.PointID) float64 {
	return r.cfg.TerrainWeights.Multiplier(r.graph.Terrain(id))
}

// nodeItem is one frontier entry: a point and its tentative cost at push time.
type nodeItem struct {
	id   core.PointID
	cost float64
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending. Lazy
// decrease-key: improvements push duplicates, and outdated entries are skipped
// when popped (the point is already settled).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
