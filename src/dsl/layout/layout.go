// Package layout implements the compiler's automatic diagram layout:
// level assignment, vertical placement, gateway branch redistribution
// and orthogonal edge routing (spec §4.4). It is deterministic by
// construction — every pass iterates elements and flows in the order
// the AST already preserves, never in map-iteration order — so the
// same Process produces byte-identical coordinates on every run (spec
// §8 P3).
package layout

import (
	"procdsl/src/core/config"
	"procdsl/src/dsl/ast"
)

// Rect is an element's position and size in diagram space.
type Rect struct {
	X, Y, Width, Height int
}

// CenterY is the vertical midpoint of the rect, used as the anchor for
// edge routing.
func (r Rect) CenterY() int { return r.Y + r.Height/2 }

// Waypoint is one (x, y) point on a routed edge's polyline.
type Waypoint struct{ X, Y int }

// Layout is the result of running the algorithm against a Process:
// a position for every element and a waypoint polyline for every flow,
// the latter keyed by ast.FlowID(source, target).
type Layout struct {
	Positions map[string]Rect
	Edges     map[string][]Waypoint
}

// Run executes all five phases against proc and returns the resulting
// Layout. proc is expected to already be the emitter's expanded working
// graph (synthetic ProcessEntity-expansion nodes included); layout
// itself has no notion of the surface DSL's sugar, it only reacts to
// element kinds and the flow list it is given.
func Run(proc *ast.Process, cfg *config.LayoutConfig) *Layout {
	levels, order := assignLevels(proc)
	positions := placeVertically(proc, cfg, levels, order)
	adjustGatewayBranches(proc, cfg, levels, positions)
	edges := routeEdges(proc, positions)

	return &Layout{Positions: positions, Edges: edges}
}

func dimensionsFor(kind ast.ElementKind, cfg *config.LayoutConfig) (width, height int) {
	switch kind {
	case ast.KindStartEvent, ast.KindEndEvent:
		return cfg.Dimensions.EventWidth, cfg.Dimensions.EventHeight
	case ast.KindXorGateway:
		return cfg.Dimensions.GatewayWidth, cfg.Dimensions.GatewayHeight
	default:
		return cfg.Dimensions.TaskWidth, cfg.Dimensions.TaskHeight
	}
}
