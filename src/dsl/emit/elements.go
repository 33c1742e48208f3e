package emit

import (
	"strconv"

	"procdsl/src/dsl/ast"
)

// buildProcessXML walks proc.Elements and proc.Flows in their declared
// order and fans each element out into the XML struct matching its
// kind. Cross-kind ordering in the output (start events, then script
// tasks, then service tasks, ...) is fixed by processXML's field order;
// within a kind, elements appear in the order they were declared.
// errorEndID is the id of the synthesized ProcessEntity validation-error
// end event, if any; that one end event alone gets an
// errorEventDefinition referencing the definitions-scope error
// declaration (spec §4.5 point 2).
func buildProcessXML(proc *ast.Process, errorEndID string) processXML {
	px := processXML{
		ID:           proc.ID,
		Name:         proc.Name,
		IsExecutable: true,
	}

	for _, e := range proc.Elements {
		incoming := flowIDs(proc.Predecessors(e.ID()), e.ID(), true)
		outgoing := flowIDs(proc.Successors(e.ID()), e.ID(), false)

		switch el := e.(type) {
		case *ast.StartEvent:
			px.StartEvents = append(px.StartEvents, startEventXML{
				ID: el.ID(), Name: el.Name(), Outgoing: outgoing,
			})
		case *ast.EndEvent:
			ee := endEventXML{ID: el.ID(), Name: el.Name(), Incoming: incoming}
			if errorEndID != "" && el.ID() == errorEndID {
				ee.ErrorEventDefinition = &errorEventDefXML{ErrorRef: processEntityErrorID}
			}
			px.EndEvents = append(px.EndEvents, ee)
		case *ast.ScriptCall:
			px.ScriptTasks = append(px.ScriptTasks, scriptTaskXML{
				ID: el.ID(), Name: el.Name(), Incoming: incoming, Outgoing: outgoing,
				Extensions: scriptCallExtensions(el),
			})
		case *ast.ServiceTask:
			px.ServiceTasks = append(px.ServiceTasks, serviceTaskXML{
				ID: el.ID(), Name: el.Name(), Incoming: incoming, Outgoing: outgoing,
				Extensions: serviceTaskExtensions(el),
			})
		case *ast.XorGateway:
			px.ExclusiveGateways = append(px.ExclusiveGateways, gatewayXML{
				ID: el.ID(), Name: el.Name(), Incoming: incoming, Outgoing: outgoing,
				Default: defaultEdge(proc, el.ID()),
			})
		}
	}

	for _, f := range proc.Flows {
		sf := sequenceFlowXML{
			ID:        ast.FlowID(f.SourceID, f.TargetID),
			SourceRef: f.SourceID,
			TargetRef: f.TargetID,
		}
		if f.HasCondition() {
			sf.ConditionExpression = &conditionExprXML{
				XSIType:    "tFormalExpression",
				Expression: f.Condition,
			}
		}
		px.SequenceFlows = append(px.SequenceFlows, sf)
	}

	return px
}

// flowIDs maps an element's adjacent ids (predecessors or successors)
// to their sequence flow ids, in the order the underlying flow list
// already gives them.
func flowIDs(neighbors []string, self string, incoming bool) []string {
	out := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		if incoming {
			out = append(out, ast.FlowID(n, self))
		} else {
			out = append(out, ast.FlowID(self, n))
		}
	}
	return out
}

// defaultEdge returns the sequence flow id of the gateway's single
// unconditional outgoing edge, or "" if there isn't exactly one.
func defaultEdge(proc *ast.Process, gatewayID string) string {
	var candidate string
	count := 0
	for _, f := range proc.OutFlows(gatewayID) {
		if !f.HasCondition() {
			count++
			candidate = ast.FlowID(f.SourceID, f.TargetID)
		}
	}
	if count == 1 {
		return candidate
	}
	return ""
}

func mappingsXML(mappings []ast.Mapping, asSource bool) []zeebeIOEntryXML {
	out := make([]zeebeIOEntryXML, 0, len(mappings))
	for _, m := range mappings {
		source := m.Source
		if asSource && len(source) > 0 && source[0] != '=' {
			source = "=" + source
		}
		out = append(out, zeebeIOEntryXML{Source: source, Target: m.Target})
	}
	return out
}

func ioMappingXML(in, out []ast.Mapping) *zeebeIoMappingXML {
	if len(in) == 0 && len(out) == 0 {
		return nil
	}
	return &zeebeIoMappingXML{
		Inputs:  mappingsXML(in, true),
		Outputs: mappingsXML(out, true),
	}
}

func scriptCallExtensions(el *ast.ScriptCall) *extensionElements {
	return &extensionElements{
		Script: &zeebeScriptXML{
			Expression:     el.Script,
			ResultVariable: el.ResultVariable,
		},
		IoMapping: ioMappingXML(el.InputMappings, el.OutputMappings),
	}
}

func serviceTaskExtensions(el *ast.ServiceTask) *extensionElements {
	ext := &extensionElements{
		TaskDefinition: &zeebeTaskDefinitionXML{
			Type:    el.TaskType,
			Retries: strconv.Itoa(el.Retries),
		},
		IoMapping: ioMappingXML(el.InputMappings, el.OutputMappings),
	}
	if len(el.Headers) > 0 {
		headers := make([]zeebeHeaderXML, 0, len(el.Headers))
		for _, k := range sortedKeys(el.Headers) {
			headers = append(headers, zeebeHeaderXML{Key: k, Value: el.Headers[k]})
		}
		ext.TaskHeaders = &zeebeTaskHeadersXML{Headers: headers}
	}
	return ext
}

// sortedKeys returns a map's keys in sorted order so header emission is
// deterministic despite Go's randomized map iteration (spec §8 P4).
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
