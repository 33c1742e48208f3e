// Package validate implements the compiler's semantic validator: the
// structural and engine-compatibility checks a parsed Process must pass
// before the emitter is allowed to touch it.
package validate

import "procdsl/src/core/types"

// Report is the validator's exhaustive findings for one Process. Every
// check in the pass runs regardless of what earlier checks found —
// nothing here short-circuits emission decisions, that's left to the
// caller.
type Report struct {
	Errors   []types.Diagnostic
	Warnings []types.Diagnostic
}

// HasErrors reports whether the report contains at least one error-level
// diagnostic. A Report with only warnings still lets emission proceed
// when the caller's configuration allows it.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// All returns errors followed by warnings, in that order.
func (r *Report) All() []types.Diagnostic {
	out := make([]types.Diagnostic, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return out
}

func (r *Report) addError(code types.ErrorCode, rule, elementID, message string) {
	r.Errors = append(r.Errors, types.Diagnostic{
		Severity:  types.SeverityError,
		Type:      types.ErrorTypeSemantic,
		Code:      code,
		Rule:      rule,
		ElementID: elementID,
		Message:   message,
	})
}

func (r *Report) addEngineCompatError(code types.ErrorCode, rule, elementID, message string) {
	r.Errors = append(r.Errors, types.Diagnostic{
		Severity:  types.SeverityError,
		Type:      types.ErrorTypeEngineCompat,
		Code:      code,
		Rule:      rule,
		ElementID: elementID,
		Message:   message,
	})
}

func (r *Report) addWarning(code types.ErrorCode, rule, elementID, message string) {
	r.Warnings = append(r.Warnings, types.Diagnostic{
		Severity:  types.SeverityWarning,
		Type:      types.ErrorTypeSemantic,
		Code:      code,
		Rule:      rule,
		ElementID: elementID,
		Message:   message,
	})
}
