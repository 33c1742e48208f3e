package validate

import (
	"fmt"
	"strings"

	"procdsl/src/core/types"
	"procdsl/src/dsl/ast"
	"procdsl/src/dsl/exprlint"
	"procdsl/src/openapi"
)

// Validate runs the full semantic check suite against proc and returns
// every diagnostic found in a single pass (spec §4.2, §8 P7). strict
// controls whether an element unreachable from the rest of the graph is
// an error or a warning (spec §9 Open Question; default true). sidecar
// is the process's OpenAPI sidecar document, used to cross-check a
// ProcessEntity's entityName against the schemas it declares; it may be
// nil when compiling from source text with no known file path.
func Validate(proc *ast.Process, strict bool, sidecar *openapi.Sidecar) *Report {
	r := &Report{}
	checkUniqueIDs(proc, r)
	checkFlowEndpoints(proc, r)
	checkEventCardinality(proc, r)
	checkOutgoingDegree(proc, r)
	checkConnectivity(proc, r, strict)
	checkGatewayShape(proc, r)
	checkProcessEntityPlacement(proc, r)
	checkEngineCompat(proc, r)
	checkMappingPaths(proc, r)
	checkEntitySchema(proc, sidecar, r)
	return r
}

// checkEntitySchema cross-checks a ProcessEntity's entityName against
// the sidecar's declared component schemas. The sidecar contract only
// requires the file to exist (spec §6); an entityName that doesn't
// match any declared schema is reported as a warning, not rejected
// outright, since the compiler never validates the schema body itself.
func checkEntitySchema(proc *ast.Process, sidecar *openapi.Sidecar, r *Report) {
	if sidecar == nil {
		return
	}
	for _, e := range proc.Elements {
		entity, ok := e.(*ast.ProcessEntity)
		if !ok {
			continue
		}
		if !sidecar.HasSchema(entity.EntityName) {
			r.addWarning(types.ErrorCodeMissingOpenAPI, "entity-schema", entity.ID(),
				fmt.Sprintf("entityName %q has no matching schema in the sidecar OpenAPI document", entity.EntityName))
		}
	}
}

// checkUniqueIDs flags every element id seen more than once (invariant 1).
func checkUniqueIDs(proc *ast.Process, r *Report) {
	seen := make(map[string]bool, len(proc.Elements))
	for _, e := range proc.Elements {
		id := e.ID()
		if seen[id] {
			r.addError(types.ErrorCodeDuplicateID, "unique-ids", id,
				fmt.Sprintf("element id %q is declared more than once", id))
			continue
		}
		seen[id] = true
	}
}

// checkFlowEndpoints flags flows whose source or target doesn't resolve
// to a declared element (invariant 2).
func checkFlowEndpoints(proc *ast.Process, r *Report) {
	for _, f := range proc.Flows {
		if _, ok := proc.ByID(f.SourceID); !ok {
			r.addError(types.ErrorCodeDanglingFlow, "flow-endpoints", f.SourceID,
				fmt.Sprintf("flow references unknown source element %q", f.SourceID))
		}
		if _, ok := proc.ByID(f.TargetID); !ok {
			r.addError(types.ErrorCodeDanglingFlow, "flow-endpoints", f.TargetID,
				fmt.Sprintf("flow references unknown target element %q", f.TargetID))
		}
	}
}

// checkEventCardinality enforces invariants 4 and 5: at least one start
// and one end event, start events have no incoming edges, end events
// have no outgoing edges.
func checkEventCardinality(proc *ast.Process, r *Report) {
	starts, ends := 0, 0
	for _, e := range proc.Elements {
		switch e.Kind() {
		case ast.KindStartEvent:
			starts++
			if proc.InDegree(e.ID()) > 0 {
				r.addError(types.ErrorCodeCardinality, "event-cardinality", e.ID(),
					"start event has incoming edges")
			}
		case ast.KindEndEvent:
			ends++
			if proc.OutDegree(e.ID()) > 0 {
				r.addError(types.ErrorCodeCardinality, "event-cardinality", e.ID(),
					"end event has outgoing edges")
			}
		}
	}
	if starts == 0 {
		r.addError(types.ErrorCodeCardinality, "event-cardinality", "", "process has no start event")
	}
	if ends == 0 {
		r.addError(types.ErrorCodeCardinality, "event-cardinality", "", "process has no end event")
	}
}

// checkOutgoingDegree enforces invariant 8: every element other than a
// gateway or an end event has exactly one outgoing flow.
func checkOutgoingDegree(proc *ast.Process, r *Report) {
	for _, e := range proc.Elements {
		if e.Kind() == ast.KindXorGateway || e.Kind() == ast.KindEndEvent {
			continue
		}
		if proc.OutDegree(e.ID()) != 1 {
			r.addError(types.ErrorCodeCardinality, "outgoing-degree", e.ID(),
				fmt.Sprintf("element %q must have exactly one outgoing flow, has %d", e.ID(), proc.OutDegree(e.ID())))
		}
	}
}

// checkConnectivity enforces invariant 3: every element belongs to the
// single connected component spanning the whole process, treating flows
// as undirected for reachability purposes. Whether an orphan is an
// error or a warning is governed by strict (spec §9 Open Question).
func checkConnectivity(proc *ast.Process, r *Report, strict bool) {
	if len(proc.Elements) == 0 {
		return
	}
	adjacency := make(map[string][]string, len(proc.Elements))
	for _, f := range proc.Flows {
		adjacency[f.SourceID] = append(adjacency[f.SourceID], f.TargetID)
		adjacency[f.TargetID] = append(adjacency[f.TargetID], f.SourceID)
	}

	visited := make(map[string]bool, len(proc.Elements))
	queue := []string{proc.Elements[0].ID()}
	visited[proc.Elements[0].ID()] = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[id] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, e := range proc.Elements {
		if visited[e.ID()] {
			continue
		}
		msg := fmt.Sprintf("element %q is not reachable from the rest of the process", e.ID())
		if strict {
			r.addError(types.ErrorCodeDisconnected, "connectivity", e.ID(), msg)
		} else {
			r.addWarning(types.ErrorCodeDisconnected, "connectivity", e.ID(), msg)
		}
	}
}

// checkGatewayShape enforces invariant 7: a gateway has either a single
// outgoing edge, or two-or-more with at most one unconditional (default)
// branch. A single outgoing *conditional* edge is unusual enough to flag
// but not reject (spec §9 Open Question).
func checkGatewayShape(proc *ast.Process, r *Report) {
	for _, e := range proc.Elements {
		if e.Kind() != ast.KindXorGateway {
			continue
		}
		out := proc.OutFlows(e.ID())
		switch {
		case len(out) == 0:
			r.addError(types.ErrorCodeGatewayShape, "gateway-shape", e.ID(),
				"gateway has no outgoing edges")
		case len(out) == 1:
			if out[0].HasCondition() {
				r.addWarning(types.ErrorCodeGatewayShape, "gateway-shape", e.ID(),
					"gateway has a single outgoing edge and it carries a condition; the condition is never evaluated")
			}
		default:
			unconditional := 0
			for _, f := range out {
				if !f.HasCondition() {
					unconditional++
				}
			}
			if unconditional > 1 {
				r.addError(types.ErrorCodeGatewayShape, "gateway-shape", e.ID(),
					fmt.Sprintf("gateway has %d unconditional outgoing edges, at most one default branch is allowed", unconditional))
			}
		}
	}
}

// checkProcessEntityPlacement enforces invariant 6: at most one
// ProcessEntity, and when present it must be the sole, direct successor
// of a StartEvent.
func checkProcessEntityPlacement(proc *ast.Process, r *Report) {
	var entities []ast.Element
	for _, e := range proc.Elements {
		if e.Kind() == ast.KindProcessEntity {
			entities = append(entities, e)
		}
	}
	if len(entities) == 0 {
		return
	}
	if len(entities) > 1 {
		for _, e := range entities {
			r.addError(types.ErrorCodeEntityPlacement, "entity-placement", e.ID(),
				"at most one processEntity is allowed per process")
		}
		return
	}

	entity := entities[0]
	preds := proc.Predecessors(entity.ID())
	if len(preds) != 1 {
		r.addError(types.ErrorCodeEntityPlacement, "entity-placement", entity.ID(),
			"processEntity must have exactly one predecessor")
		return
	}
	pred, ok := proc.ByID(preds[0])
	if !ok || pred.Kind() != ast.KindStartEvent {
		r.addError(types.ErrorCodeEntityPlacement, "entity-placement", entity.ID(),
			"processEntity must be the direct successor of a start event")
	}
}

// checkEngineCompat rejects constructs that parse cleanly but the
// target engine cannot represent: a condition on an edge leaving
// anything other than a gateway, and legacy input_vars/output_vars
// coexisting with modern mappings on the same element (spec §4.2 #7).
func checkEngineCompat(proc *ast.Process, r *Report) {
	for _, f := range proc.Flows {
		if !f.HasCondition() {
			continue
		}
		src, ok := proc.ByID(f.SourceID)
		if !ok || src.Kind() == ast.KindXorGateway {
			continue
		}
		r.addEngineCompatError(types.ErrorCodeEngineCompat, "engine-compat", f.SourceID,
			fmt.Sprintf("edge %s -> %s carries a condition but %q is not a gateway", f.SourceID, f.TargetID, f.SourceID))
	}

	for _, e := range proc.Elements {
		var conflict bool
		switch el := e.(type) {
		case *ast.ScriptCall:
			conflict = el.LegacyMappingConflict
		case *ast.ServiceTask:
			conflict = el.LegacyMappingConflict
		}
		if conflict {
			r.addEngineCompatError(types.ErrorCodeEngineCompat, "engine-compat", e.ID(),
				fmt.Sprintf("element %q declares both legacy input_vars/output_vars and modern mappings; they are not merged", e.ID()))
		}
	}
}

// checkMappingPaths lints every mapping's source and target as a
// variable path, purely syntactically: it never evaluates a path
// against a runtime scope, it only catches the kind of malformed
// reference ("a..b", "a[") that would otherwise only surface once a job
// worker tried to resolve it against a live process instance.
func checkMappingPaths(proc *ast.Process, r *Report) {
	lintOne := func(elementID string, mappings []ast.Mapping) {
		for _, m := range mappings {
			source := strings.TrimPrefix(m.Source, "=")
			if !exprlint.Valid(source) {
				r.addError(types.ErrorCodeExpressionSyntax, "mapping-path", elementID,
					fmt.Sprintf("mapping source %q is not a well-formed variable path", m.Source))
			}
			if !exprlint.Valid(m.Target) {
				r.addError(types.ErrorCodeExpressionSyntax, "mapping-path", elementID,
					fmt.Sprintf("mapping target %q is not a well-formed variable path", m.Target))
			}
		}
	}

	for _, e := range proc.Elements {
		switch el := e.(type) {
		case *ast.ScriptCall:
			lintOne(el.ID(), el.InputMappings)
			lintOne(el.ID(), el.OutputMappings)
		case *ast.ServiceTask:
			lintOne(el.ID(), el.InputMappings)
			lintOne(el.ID(), el.OutputMappings)
		}
	}
}
