// Package ast defines the in-memory representation of a parsed process
// definition: a typed element set plus the flow graph connecting them.
// A Process is built once by the parser and never mutated afterward;
// every accessor here is read-only, which is what lets the validator,
// layout engine and emitter all walk the same graph without stepping
// on each other.
package ast

// ElementKind tags which variant a concrete Element value is, so a type
// switch on it is exhaustive and obvious at the call site.
type ElementKind string

const (
	KindStartEvent    ElementKind = "startEvent"
	KindEndEvent      ElementKind = "endEvent"
	KindScriptCall    ElementKind = "scriptCall"
	KindServiceTask   ElementKind = "serviceTask"
	KindProcessEntity ElementKind = "processEntity"
	KindXorGateway    ElementKind = "xorGateway"
)

// Mapping is a single source->target variable assignment, used for both
// input and output mappings on scriptCall and serviceTask elements.
type Mapping struct {
	Source string
	Target string
}

// Element is any node that can appear in a process's element list.
type Element interface {
	ID() string
	Name() string
	Kind() ElementKind
}

type base struct {
	id   string
	name string
	kind ElementKind
}

func (b *base) ID() string        { return b.id }
func (b *base) Name() string      { return b.name }
func (b *base) Kind() ElementKind { return b.kind }

// StartEvent marks a process entry point.
type StartEvent struct{ base }

// NewStartEvent constructs a StartEvent node.
func NewStartEvent(id, name string) *StartEvent {
	return &StartEvent{base{id, name, KindStartEvent}}
}

// EndEvent marks one of a process's terminal points.
type EndEvent struct{ base }

// NewEndEvent constructs an EndEvent node.
func NewEndEvent(id, name string) *EndEvent {
	return &EndEvent{base{id, name, KindEndEvent}}
}

// ScriptCall evaluates an inline expression against the process variable
// scope, optionally mapping variables in and out and storing the
// expression's result under ResultVariable.
type ScriptCall struct {
	base
	Script         string
	InputMappings  []Mapping
	OutputMappings []Mapping
	ResultVariable string
	// LegacyMappingConflict is true when the source declared both a
	// modern mapping list and the legacy input_vars/output_vars
	// shorthand for the same direction. The parser concatenates both into
	// the mapping list; the validator rejects this as an
	// engine-compatibility error.
	LegacyMappingConflict bool
}

// NewScriptCall constructs a ScriptCall node.
func NewScriptCall(id, name, script string, in, out []Mapping, resultVar string, legacyConflict bool) *ScriptCall {
	return &ScriptCall{
		base:                  base{id, name, KindScriptCall},
		Script:                script,
		InputMappings:         in,
		OutputMappings:        out,
		ResultVariable:        resultVar,
		LegacyMappingConflict: legacyConflict,
	}
}

// ServiceTask delegates work to an external job worker identified by
// TaskType, with Retries attempts and arbitrary worker Headers.
type ServiceTask struct {
	base
	TaskType              string
	Retries               int
	Headers               map[string]string
	InputMappings         []Mapping
	OutputMappings        []Mapping
	LegacyMappingConflict bool
}

// NewServiceTask constructs a ServiceTask node.
func NewServiceTask(id, name, taskType string, retries int, headers map[string]string, in, out []Mapping, legacyConflict bool) *ServiceTask {
	return &ServiceTask{
		base:                  base{id, name, KindServiceTask},
		TaskType:              taskType,
		Retries:               retries,
		Headers:               headers,
		InputMappings:         in,
		OutputMappings:        out,
		LegacyMappingConflict: legacyConflict,
	}
}

// ProcessEntity is surface sugar for a persistence round-trip against
// EntityName; the emitter expands it into a service task, a gateway and
// an error end event rather than a single BPMN element (spec §4.5).
type ProcessEntity struct {
	base
	EntityName string
}

// NewProcessEntity constructs a ProcessEntity node.
func NewProcessEntity(id, name, entityName string) *ProcessEntity {
	return &ProcessEntity{base{id, name, KindProcessEntity}, entityName}
}

// XorGateway is an exclusive branch point. Condition is informational
// only: the compiler never evaluates or emits it; the conditionExpression
// of an emitted flow comes from that Flow's own Condition.
type XorGateway struct {
	base
	Condition string
}

// NewXorGateway constructs an XorGateway node.
func NewXorGateway(id, name, condition string) *XorGateway {
	return &XorGateway{base{id, name, KindXorGateway}, condition}
}

// Flow is a directed edge between two element ids. Condition is empty
// for an unconditional flow.
type Flow struct {
	SourceID  string
	TargetID  string
	Condition string
}

// HasCondition reports whether this flow carries a condition expression.
func (f Flow) HasCondition() bool { return f.Condition != "" }

// FlowID returns the deterministic sequenceFlow id for an edge between
// source and target (spec §4.5 point 3): "flow_{source}_to_{target}".
func FlowID(source, target string) string {
	return "flow_" + source + "_to_" + target
}

// Process is a fully parsed process definition together with the
// indexes needed to walk its flow graph in constant time.
type Process struct {
	Name    string
	ID      string
	Version string
	// Elements preserves declaration order, which the layout engine and
	// the emitter both rely on for deterministic output.
	Elements []Element
	Flows    []Flow

	byID         map[string]Element
	successors   map[string][]string
	predecessors map[string][]string
}

// NewProcess builds a Process and its graph indexes from a flat element
// and flow list. Callers (the parser, and ProcessEntity expansion in the
// emitter) are expected to have already validated id uniqueness where it
// matters to them; NewProcess itself just indexes what it is given.
func NewProcess(name, id, version string, elements []Element, flows []Flow) *Process {
	p := &Process{
		Name:     name,
		ID:       id,
		Version:  version,
		Elements: elements,
		Flows:    flows,
	}
	p.buildIndex()
	return p
}

func (p *Process) buildIndex() {
	p.byID = make(map[string]Element, len(p.Elements))
	for _, e := range p.Elements {
		p.byID[e.ID()] = e
	}
	p.successors = make(map[string][]string, len(p.Flows))
	p.predecessors = make(map[string][]string, len(p.Flows))
	for _, f := range p.Flows {
		p.successors[f.SourceID] = append(p.successors[f.SourceID], f.TargetID)
		p.predecessors[f.TargetID] = append(p.predecessors[f.TargetID], f.SourceID)
	}
}

// ByID looks up an element by its declared id.
func (p *Process) ByID(id string) (Element, bool) {
	e, ok := p.byID[id]
	return e, ok
}

// Successors returns the ids reachable from id by a single outgoing flow,
// in flow-declaration order.
func (p *Process) Successors(id string) []string { return p.successors[id] }

// Predecessors returns the ids with a single outgoing flow into id, in
// flow-declaration order.
func (p *Process) Predecessors(id string) []string { return p.predecessors[id] }

// InDegree is the number of flows targeting id.
func (p *Process) InDegree(id string) int { return len(p.predecessors[id]) }

// OutDegree is the number of flows sourced at id.
func (p *Process) OutDegree(id string) int { return len(p.successors[id]) }

// OutFlows returns the Flow values sourced at id, in declaration order.
func (p *Process) OutFlows(id string) []Flow {
	var out []Flow
	for _, f := range p.Flows {
		if f.SourceID == id {
			out = append(out, f)
		}
	}
	return out
}
