package layout

import "procdsl/src/dsl/ast"

type dfsColor int

const (
	colorWhite dfsColor = iota
	colorGray
	colorBlack
)

// assignLevels runs phase 2 (longest-path level assignment). It first
// walks the graph with a colored DFS to find back-edges, then relaxes
// levels over the remaining forward-edge-only DAG until no level
// changes. It returns each element's level and, per level, the element
// ids in the order they first appear in the process's declared element
// list (spec §9: every pass iterates in author order, never hash-table
// order).
func assignLevels(proc *ast.Process) (levels map[string]int, order map[int][]string) {
	backEdges := findBackEdges(proc)

	levels = make(map[string]int, len(proc.Elements))
	for _, e := range proc.Elements {
		levels[e.ID()] = 0
	}

	var queue []string
	for _, e := range proc.Elements {
		if e.Kind() == ast.KindStartEvent {
			queue = append(queue, e.ID())
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range proc.Successors(u) {
			if backEdges[edgeKey{u, v}] {
				continue
			}
			if newLevel := levels[u] + 1; newLevel > levels[v] {
				levels[v] = newLevel
				queue = append(queue, v)
			}
		}
	}

	order = make(map[int][]string)
	for _, e := range proc.Elements {
		l := levels[e.ID()]
		order[l] = append(order[l], e.ID())
	}
	return levels, order
}

type edgeKey struct{ from, to string }

// findBackEdges runs a classic white/gray/black DFS over the process
// graph (traversing successors in declared flow order for determinism)
// and returns the set of edges whose target is an ancestor still on the
// DFS stack. DFS starts at every StartEvent in declaration order, then
// sweeps any element not yet reached so unreachable components still
// get a deterministic traversal.
func findBackEdges(proc *ast.Process) map[edgeKey]bool {
	color := make(map[string]dfsColor, len(proc.Elements))
	back := make(map[edgeKey]bool)

	var visit func(id string)
	visit = func(id string) {
		color[id] = colorGray
		for _, next := range proc.Successors(id) {
			switch color[next] {
			case colorWhite:
				visit(next)
			case colorGray:
				back[edgeKey{id, next}] = true
			case colorBlack:
				// forward/cross edge, not a back edge
			}
		}
		color[id] = colorBlack
	}

	for _, e := range proc.Elements {
		if e.Kind() == ast.KindStartEvent && color[e.ID()] == colorWhite {
			visit(e.ID())
		}
	}
	for _, e := range proc.Elements {
		if color[e.ID()] == colorWhite {
			visit(e.ID())
		}
	}
	return back
}
