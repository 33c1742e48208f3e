package layout

import "procdsl/src/dsl/ast"

// routeEdges runs phase 5: every flow is routed from the right-edge
// midpoint of its source to the left-edge midpoint of its target,
// either as a straight two-point segment or an orthogonal Z when the
// two midpoints differ in y by 10px or more.
func routeEdges(proc *ast.Process, positions map[string]Rect) map[string][]Waypoint {
	edges := make(map[string][]Waypoint, len(proc.Flows))

	for _, f := range proc.Flows {
		srcRect, okSrc := positions[f.SourceID]
		dstRect, okDst := positions[f.TargetID]
		if !okSrc || !okDst {
			continue
		}

		startX, startY := srcRect.X+srcRect.Width, srcRect.CenterY()
		endX, endY := dstRect.X, dstRect.CenterY()

		diff := startY - endY
		if diff < 0 {
			diff = -diff
		}

		var points []Waypoint
		if diff < 10 {
			points = []Waypoint{{startX, startY}, {endX, endY}}
		} else {
			xMid := (startX + endX) / 2
			points = []Waypoint{
				{startX, startY},
				{xMid, startY},
				{xMid, endY},
				{endX, endY},
			}
		}
		edges[ast.FlowID(f.SourceID, f.TargetID)] = points
	}
	return edges
}
