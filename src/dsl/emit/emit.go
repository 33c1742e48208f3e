package emit

import (
	"encoding/xml"
	"fmt"

	"procdsl/src/core/config"
	"procdsl/src/dsl/ast"
	"procdsl/src/dsl/layout"
)

// Options configures one Emit call.
type Options struct {
	// Sidecar is the path to the process's OpenAPI sidecar document, used
	// to populate the entityModel header on an expanded ProcessEntity's
	// validator service task. Empty when unknown.
	Sidecar string
	// Exporter/ExporterVersion are recorded on the definitions root.
	Exporter        string
	ExporterVersion string
	Layout          *config.LayoutConfig
}

// Result is the emitter's output: the XML bytes and the layout actually
// used to produce them, handed back mostly so tests can assert on
// coordinates without re-running layout themselves.
type Result struct {
	XML    []byte
	Layout *layout.Layout
}

// Emit renders proc as a complete BPMN 2.0 XML document (spec §4.5).
// proc is assumed to have already passed validation; Emit performs the
// ProcessEntity expansion, runs the layout engine against the expanded
// graph, and serializes both the semantic and diagram sections.
func Emit(proc *ast.Process, opts Options) (*Result, error) {
	if opts.Layout == nil {
		opts.Layout = &config.Default().Layout
	}

	exp := expandProcessEntities(proc, opts.Sidecar)
	lay := layout.Run(exp.process, opts.Layout)

	def := definitionsXML{
		XmlnsBPMN:       nsBPMN,
		XmlnsBPMNDI:     nsBPMNDI,
		XmlnsDC:         nsDC,
		XmlnsDI:         nsDI,
		XmlnsZeebe:      nsZeebe,
		XmlnsXSI:        nsXSI,
		ID:              "definitions_" + proc.ID,
		TargetNamespace: "http://procdsl/schema/1.0",
		Exporter:        opts.Exporter,
		ExporterVersion: opts.ExporterVersion,
		Process:         buildProcessXML(exp.process, exp.errorEndID),
		Diagram:         buildDiagramXML(exp.process, lay),
	}
	if exp.hasEntity {
		def.Errors = []errorXML{{
			ID:        processEntityErrorID,
			ErrorCode: processEntityErrorCode,
		}}
	}

	out, err := xml.MarshalIndent(def, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal BPMN document: %w", err)
	}
	out = append([]byte(xml.Header), out...)

	return &Result{XML: out, Layout: lay}, nil
}

func buildDiagramXML(proc *ast.Process, lay *layout.Layout) diagramXML {
	plane := planeXML{
		ID:          "plane_" + proc.ID,
		BPMNElement: proc.ID,
	}

	for _, e := range proc.Elements {
		rect, ok := lay.Positions[e.ID()]
		if !ok {
			continue
		}
		plane.Shapes = append(plane.Shapes, shapeXML{
			ID:          "shape_" + e.ID(),
			BPMNElement: e.ID(),
			Bounds: boundsXML{
				X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height,
			},
		})
	}

	for _, f := range proc.Flows {
		flowID := ast.FlowID(f.SourceID, f.TargetID)
		points, ok := lay.Edges[flowID]
		if !ok {
			continue
		}
		wp := make([]waypointXML, 0, len(points))
		for _, p := range points {
			wp = append(wp, waypointXML{X: p.X, Y: p.Y})
		}
		plane.Edges = append(plane.Edges, edgeXML{
			ID:          "edge_" + flowID,
			BPMNElement: flowID,
			Waypoints:   wp,
		})
	}

	return diagramXML{ID: "diagram_" + proc.ID, Plane: plane}
}
