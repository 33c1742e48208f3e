package layout

import (
	"sort"

	"procdsl/src/core/config"
	"procdsl/src/dsl/ast"
)

// placeVertically runs phase 3: elements are laid out left to right by
// level, with each level's members centered on a shared baseline.
func placeVertically(proc *ast.Process, cfg *config.LayoutConfig, levels map[string]int, order map[int][]string) map[string]Rect {
	positions := make(map[string]Rect, len(proc.Elements))

	maxHeight := 0
	for _, e := range proc.Elements {
		_, h := dimensionsFor(e.Kind(), cfg)
		if h > maxHeight {
			maxHeight = h
		}
	}
	baseline := cfg.Margins.Top + maxHeight/2

	levelNumbers := make([]int, 0, len(order))
	for l := range order {
		levelNumbers = append(levelNumbers, l)
	}
	sort.Ints(levelNumbers)

	for _, l := range levelNumbers {
		ids := order[l]
		n := len(ids)
		mid := float64(n-1) / 2.0
		x := cfg.Margins.Left + l*cfg.LevelSpacing
		for i, id := range ids {
			el, ok := proc.ByID(id)
			if !ok {
				continue
			}
			w, h := dimensionsFor(el.Kind(), cfg)
			centerY := baseline + int((float64(i)-mid)*float64(cfg.Vertical))
			positions[id] = Rect{
				X:      x,
				Y:      centerY - h/2,
				Width:  w,
				Height: h,
			}
		}
	}
	return positions
}

// adjustGatewayBranches runs phase 4: every gateway's direct successors
// (those one level past the gateway) are redistributed symmetrically
// around the gateway's own y at gateway_branch_spacing pitch. Gateways
// are processed in declared element order, so a successor shared by two
// gateways ends up placed by whichever one is declared last.
func adjustGatewayBranches(proc *ast.Process, cfg *config.LayoutConfig, levels map[string]int, positions map[string]Rect) {
	for _, e := range proc.Elements {
		if e.Kind() != ast.KindXorGateway {
			continue
		}
		gwRect, ok := positions[e.ID()]
		if !ok {
			continue
		}
		gwLevel := levels[e.ID()]
		gwCenterY := gwRect.CenterY()

		successors := proc.Successors(e.ID())
		if len(successors) < 2 {
			continue
		}

		directSuccessors := make([]string, 0, len(successors))
		for _, s := range successors {
			if levels[s] == gwLevel+1 {
				directSuccessors = append(directSuccessors, s)
			}
		}
		if len(directSuccessors) < 2 {
			continue
		}

		mid := float64(len(directSuccessors)-1) / 2.0
		for i, id := range directSuccessors {
			rect, ok := positions[id]
			if !ok {
				continue
			}
			centerY := gwCenterY + int((float64(i)-mid)*float64(cfg.GatewayBranchSpacing))
			rect.Y = centerY - rect.Height/2
			positions[id] = rect
		}
	}
}
