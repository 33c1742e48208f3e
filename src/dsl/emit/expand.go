package emit

import (
	"github.com/google/uuid"

	"procdsl/src/dsl/ast"
)

// Synthetic identifiers and constants fixed by the ProcessEntity
// expansion scheme (spec §4.5 point 2). uniqueSyntheticID below derives
// the gateway and error-end ids from these suffixes, falling back to a
// deterministic UUID if the plain suffix happens to collide with a
// user-declared id.
const (
	validationGatewaySuffix = "-validation-gateway"
	validationErrorSuffix   = "-validation-error"

	entityValidatorTaskType = "process-entity-validator"
	entityValidatorRetries  = 3

	processEntityErrorID   = "process-entity-validation-error"
	processEntityErrorCode = "PROCESS_ENTITY_VALIDATION_ERROR"

	validationGatewayName = "Validation Check"
	validationErrorName   = "Validation Error"

	validationFailureCondition = "=entityValidationResult.isValid = false"
)

// expansion is the emitter's private working copy of a process after
// ProcessEntity sugar has been expanded. It is built fresh from the
// immutable AST on every Emit call and never written back.
type expansion struct {
	process      *ast.Process
	hasEntity    bool
	entityGWName string
	errorEndID   string
}

// expandProcessEntities returns a new ast.Process with the first
// ProcessEntity in declaration order replaced by a service task, a
// validation gateway and an error end event, and the affected flows
// rewired accordingly; any further ProcessEntity is left unexpanded (the
// validator rejects more than one per process). sidecar
// is the path to the OpenAPI sidecar document (used as the validator
// service task's entityModel header); it may be empty when unknown.
func expandProcessEntities(proc *ast.Process, sidecar string) *expansion {
	var entity *ast.ProcessEntity
	for _, e := range proc.Elements {
		if pe, ok := e.(*ast.ProcessEntity); ok {
			entity = pe
			break
		}
	}
	if entity == nil {
		return &expansion{process: proc}
	}

	gatewayID := uniqueSyntheticID(proc, entity.ID(), validationGatewaySuffix)
	errorEndID := uniqueSyntheticID(proc, entity.ID(), validationErrorSuffix)

	elements := make([]ast.Element, 0, len(proc.Elements)+2)
	for _, e := range proc.Elements {
		if e.ID() == entity.ID() {
			elements = append(elements, ast.NewServiceTask(
				entity.ID(), entity.Name(), entityValidatorTaskType, entityValidatorRetries,
				map[string]string{
					"entityName":  entity.EntityName,
					"entityModel": sidecar,
				},
				[]ast.Mapping{{Source: "=processEntity", Target: "processEntity"}},
				[]ast.Mapping{{Source: "=validationResult", Target: "entityValidationResult"}},
				false,
			))
			continue
		}
		elements = append(elements, e)
	}
	elements = append(elements,
		ast.NewXorGateway(gatewayID, validationGatewayName, ""),
		ast.NewEndEvent(errorEndID, validationErrorName),
	)

	flows := make([]ast.Flow, 0, len(proc.Flows)+2)
	for _, f := range proc.Flows {
		if f.SourceID == entity.ID() {
			flows = append(flows,
				ast.Flow{SourceID: entity.ID(), TargetID: gatewayID},
				ast.Flow{SourceID: gatewayID, TargetID: f.TargetID},
			)
			continue
		}
		flows = append(flows, f)
	}
	flows = append(flows, ast.Flow{SourceID: gatewayID, TargetID: errorEndID, Condition: validationFailureCondition})

	expanded := ast.NewProcess(proc.Name, proc.ID, proc.Version, elements, flows)
	return &expansion{process: expanded, hasEntity: true, entityGWName: gatewayID, errorEndID: errorEndID}
}

// syntheticIDNamespace roots the deterministic fallback ids minted by
// uniqueSyntheticID. Using a fixed namespace UUID keeps the fallback
// derivation stable across runs and machines (spec §8 P3), unlike
// uuid.New()'s random variant.
var syntheticIDNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("procdsl.emit.synthetic"))

// uniqueSyntheticID returns entityID+suffix, the fixed-suffix scheme
// that keeps expansion ids readable and deterministic in the ordinary
// case. If that id happens to collide with one the author already
// declared, it falls back to a UUIDv5 derived from the same inputs:
// still fully deterministic (the same source always mints the same
// fallback id), but no longer guessable from entityID alone, so a
// second collision is vanishingly unlikely (spec §8 P2).
func uniqueSyntheticID(proc *ast.Process, entityID, suffix string) string {
	candidate := entityID + suffix
	if _, exists := proc.ByID(candidate); !exists {
		return candidate
	}
	return "synthetic-" + uuid.NewSHA1(syntheticIDNamespace, []byte(candidate)).String()
}
