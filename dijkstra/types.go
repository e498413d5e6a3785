// Package dijkstra: sentinel errors, the terrain-weight resolver, and the
// strongly-typed recalculation options with their functional constructors.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dijkstramap/core"
)

// Sentinel errors returned by Recalculate's validation boundary. Every option
// error wraps ErrInvalidParameter, so callers may match either the specific
// condition or the whole class with errors.Is.
var (
	// ErrInvalidParameter is the class of all recalculation-option failures.
	ErrInvalidParameter = errors.New("dijkstra: invalid recalculation parameter")

	// ErrBadMaxCost indicates a NaN cost ceiling. Negative ceilings are legal
	// (they simply yield an empty result set).
	ErrBadMaxCost = fmt.Errorf("%w: maximum cost must not be NaN", ErrInvalidParameter)

	// ErrBadInitialCost indicates a per-origin initial cost that is negative,
	// NaN or infinite.
	ErrBadInitialCost = fmt.Errorf("%w: initial costs must be finite and non-negative", ErrInvalidParameter)

	// ErrBadTerrainWeight indicates a negative terrain multiplier. NaN and +Inf
	// multipliers are legal: they mark the terrain impassable for the call.
	ErrBadTerrainWeight = fmt.Errorf("%w: terrain multipliers must not be negative", ErrInvalidParameter)
)

// NoDirection is the no-path sentinel returned by DirectionAt for unknown and
// unsettled points. It collides with a real point only if the caller assigns
// id -1; such callers should use Result, which reports presence explicitly.
const NoDirection core.PointID = -1

// TerrainWeights maps a terrain tag to its effective cost multiplier for one
// recalculation call. A nil table is legal: only DefaultTerrain is traversable.
type TerrainWeights map[core.Terrain]float64

// Multiplier resolves one terrain tag:
//
//   - core.DefaultTerrain is pinned to 1.0, regardless of any table entry.
//   - A terrain absent from the table resolves to +Inf (untraversable).
//   - A present entry is used verbatim, even if zero.
//
// Complexity: O(1).
func (tw TerrainWeights) Multiplier(t core.Terrain) float64 {
	if t == core.DefaultTerrain {
		return 1.0
	}
	if w, ok := tw[t]; ok {
		return w
	}

	return math.Inf(1)
}

// Options configures one Recalculate call.
//
// OriginsAsSources – false (default): origins are destinations; the search
//
//	relaxes incoming connections and directions point toward the nearest origin.
//	true: origins are sources; the search walks outgoing connections and
//	directions record the predecessor toward the nearest origin.
//
// MaxCost          – cost ceiling; points whose shortest cost exceeds it are
//
//	absent from the result set. Default +Inf (no ceiling).
//
// InitialCosts     – per-origin seed costs aligned by position with the origin
//
//	list; origins beyond its length seed at 0.
//
// TerrainWeights   – terrain multiplier table for this call (see Multiplier).
//
// Termination      – ids whose settlement stops the search early, once every
//
//	reachable member has been settled. Empty = run to frontier exhaustion.
type Options struct {
	OriginsAsSources bool
	MaxCost          float64
	InitialCosts     []float64
	TerrainWeights   TerrainWeights
	Termination      []core.PointID
}

// Option is a functional option for configuring Recalculate.
type Option func(*Options)

// WithOriginsAsSources makes the search walk connections in their natural
// direction, recording predecessors instead of next steps.
func WithOriginsAsSources() Option {
	return func(o *Options) { o.OriginsAsSources = true }
}

// WithMaxCost sets the cost ceiling. Validated at the Recalculate boundary:
// NaN is rejected with ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	return func(o *Options) { o.MaxCost = max }
}

// WithInitialCosts sets per-origin seed costs, paired by position with the
// origin list. Validated at the Recalculate boundary (ErrBadInitialCost).
func WithInitialCosts(costs ...float64) Option {
	return func(o *Options) { o.InitialCosts = costs }
}

// WithTerrainWeights supplies the terrain multiplier table for this call.
// Validated at the Recalculate boundary (ErrBadTerrainWeight).
func WithTerrainWeights(tw TerrainWeights) Option {
	return func(o *Options) { o.TerrainWeights = tw }
}

// WithTermination supplies the termination-point set. Duplicates are collapsed;
// unknown or unreachable members never block termination (the search simply
// runs until the frontier empties).
func WithTermination(ids ...core.PointID) Option {
	return func(o *Options) { o.Termination = ids }
}

// DefaultOptions returns the Options base for functional overrides:
// origins as destinations, no ceiling, no initial costs, no terrain table,
// no termination set.
func DefaultOptions() Options {
	return Options{
		MaxCost: math.Inf(1),
	}
}

// validate checks the assembled Options once, before the solve runs.
// Any failure leaves the previous result set completely intact.
func (o *Options) validate() error {
	if math.IsNaN(o.MaxCost) {
		return ErrBadMaxCost
	}
	var c float64
	for _, c = range o.InitialCosts {
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: got %v", ErrBadInitialCost, c)
		}
	}
	var t core.Terrain
	var w float64
	for t, w = range o.TerrainWeights {
		if w < 0 {
			return fmt.Errorf("%w: terrain %d has multiplier %v", ErrBadTerrainWeight, t, w)
		}
	}

	return nil
}
