// Package emit renders a validated Process as BPMN 2.0 XML, including
// the target engine's Zeebe-family extension elements and a diagram
// section built from the layout engine's coordinates (spec §4.5). The
// XML shape is plain encoding/xml struct tags, the same idiom a reader
// of the BPMN ecosystem already recognizes: one struct per element
// kind, ordered fields, no reflection-based builders.
package emit

import "encoding/xml"

const (
	nsBPMN   = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	nsBPMNDI = "http://www.omg.org/spec/BPMN/20100524/DI"
	nsDC     = "http://www.omg.org/spec/DD/20100524/DC"
	nsDI     = "http://www.omg.org/spec/DD/20100524/DI"
	nsZeebe  = "http://camunda.org/schema/zeebe/1.0"
	nsXSI    = "http://www.w3.org/2001/XMLSchema-instance"
)

type definitionsXML struct {
	XMLName         xml.Name     `xml:"definitions"`
	XmlnsBPMN       string       `xml:"xmlns,attr"`
	XmlnsBPMNDI     string       `xml:"xmlns:bpmndi,attr"`
	XmlnsDC         string       `xml:"xmlns:dc,attr"`
	XmlnsDI         string       `xml:"xmlns:di,attr"`
	XmlnsZeebe      string       `xml:"xmlns:zeebe,attr"`
	XmlnsXSI        string       `xml:"xmlns:xsi,attr"`
	ID              string       `xml:"id,attr"`
	TargetNamespace string       `xml:"targetNamespace,attr"`
	Exporter        string       `xml:"exporter,attr"`
	ExporterVersion string       `xml:"exporterVersion,attr"`
	Errors          []errorXML   `xml:"error"`
	Process         processXML  `xml:"process"`
	Diagram         diagramXML  `xml:"bpmndi:BPMNDiagram"`
}

type errorXML struct {
	ID        string `xml:"id,attr"`
	Name      string `xml:"name,attr,omitempty"`
	ErrorCode string `xml:"errorCode,attr"`
}

type processXML struct {
	ID                string             `xml:"id,attr"`
	Name              string             `xml:"name,attr"`
	IsExecutable      bool               `xml:"isExecutable,attr"`
	StartEvents       []startEventXML    `xml:"startEvent"`
	ScriptTasks       []scriptTaskXML    `xml:"scriptTask"`
	ServiceTasks      []serviceTaskXML   `xml:"serviceTask"`
	ExclusiveGateways []gatewayXML       `xml:"exclusiveGateway"`
	EndEvents         []endEventXML      `xml:"endEvent"`
	SequenceFlows     []sequenceFlowXML  `xml:"sequenceFlow"`
}

type startEventXML struct {
	ID       string   `xml:"id,attr"`
	Name     string   `xml:"name,attr"`
	Outgoing []string `xml:"outgoing"`
}

type endEventXML struct {
	ID                   string                `xml:"id,attr"`
	Name                 string                `xml:"name,attr"`
	Incoming             []string              `xml:"incoming"`
	ErrorEventDefinition *errorEventDefXML     `xml:"errorEventDefinition"`
}

type errorEventDefXML struct {
	ErrorRef string `xml:"errorRef,attr"`
}

type scriptTaskXML struct {
	ID         string             `xml:"id,attr"`
	Name       string             `xml:"name,attr"`
	Incoming   []string           `xml:"incoming"`
	Outgoing   []string           `xml:"outgoing"`
	Extensions *extensionElements `xml:"extensionElements"`
}

type serviceTaskXML struct {
	ID         string             `xml:"id,attr"`
	Name       string             `xml:"name,attr"`
	Incoming   []string           `xml:"incoming"`
	Outgoing   []string           `xml:"outgoing"`
	Extensions *extensionElements `xml:"extensionElements"`
}

type gatewayXML struct {
	ID       string   `xml:"id,attr"`
	Name     string   `xml:"name,attr"`
	Default  string   `xml:"default,attr,omitempty"`
	Incoming []string `xml:"incoming"`
	Outgoing []string `xml:"outgoing"`
}

type sequenceFlowXML struct {
	ID                  string               `xml:"id,attr"`
	SourceRef           string               `xml:"sourceRef,attr"`
	TargetRef           string               `xml:"targetRef,attr"`
	ConditionExpression *conditionExprXML    `xml:"conditionExpression"`
}

type conditionExprXML struct {
	XSIType    string `xml:"xsi:type,attr"`
	Expression string `xml:",chardata"`
}

type extensionElements struct {
	TaskDefinition *zeebeTaskDefinitionXML `xml:"zeebe:taskDefinition"`
	TaskHeaders    *zeebeTaskHeadersXML    `xml:"zeebe:taskHeaders"`
	IoMapping      *zeebeIoMappingXML      `xml:"zeebe:ioMapping"`
	Script         *zeebeScriptXML         `xml:"zeebe:script"`
}

type zeebeTaskDefinitionXML struct {
	Type    string `xml:"type,attr"`
	Retries string `xml:"retries,attr"`
}

type zeebeTaskHeadersXML struct {
	Headers []zeebeHeaderXML `xml:"zeebe:header"`
}

type zeebeHeaderXML struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

type zeebeIoMappingXML struct {
	Inputs  []zeebeIOEntryXML `xml:"zeebe:input"`
	Outputs []zeebeIOEntryXML `xml:"zeebe:output"`
}

type zeebeIOEntryXML struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

type zeebeScriptXML struct {
	Expression     string `xml:"expression,attr"`
	ResultVariable string `xml:"resultVariable,attr,omitempty"`
}

type diagramXML struct {
	ID    string   `xml:"id,attr"`
	Plane planeXML `xml:"bpmndi:BPMNPlane"`
}

type planeXML struct {
	ID          string      `xml:"id,attr"`
	BPMNElement string      `xml:"bpmnElement,attr"`
	Shapes      []shapeXML  `xml:"bpmndi:BPMNShape"`
	Edges       []edgeXML   `xml:"bpmndi:BPMNEdge"`
}

type shapeXML struct {
	ID          string    `xml:"id,attr"`
	BPMNElement string    `xml:"bpmnElement,attr"`
	Bounds      boundsXML `xml:"dc:Bounds"`
}

type boundsXML struct {
	X      int `xml:"x,attr"`
	Y      int `xml:"y,attr"`
	Width  int `xml:"width,attr"`
	Height int `xml:"height,attr"`
}

type edgeXML struct {
	ID          string        `xml:"id,attr"`
	BPMNElement string        `xml:"bpmnElement,attr"`
	Waypoints   []waypointXML `xml:"di:waypoint"`
}

type waypointXML struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
}
