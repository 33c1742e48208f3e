package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procdsl/src/dsl/ast"
	"procdsl/src/dsl/validate"
)

func minimalProcess() *ast.Process {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewEndEvent("end", "End"),
	}
	flows := []ast.Flow{{SourceID: "start", TargetID: "end"}}
	return ast.NewProcess("Minimal", "minimal", "1.0", elements, flows)
}

func TestValidate_MinimalProcessIsClean(t *testing.T) {
	report := validate.Validate(minimalProcess(), true, nil)
	assert.False(t, report.HasErrors())
	assert.Empty(t, report.Warnings)
}

func TestValidate_DuplicateIDs(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewStartEvent("start", "Start Again"),
		ast.NewEndEvent("end", "End"),
	}
	flows := []ast.Flow{{SourceID: "start", TargetID: "end"}}
	proc := ast.NewProcess("Dup", "dup", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "unique-ids")
}

func TestValidate_DanglingFlow(t *testing.T) {
	elements := []ast.Element{ast.NewStartEvent("start", "Start"), ast.NewEndEvent("end", "End")}
	flows := []ast.Flow{{SourceID: "start", TargetID: "ghost"}}
	proc := ast.NewProcess("Dangling", "dangling", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "flow-endpoints")
}

func TestValidate_MissingStartOrEndEvent(t *testing.T) {
	elements := []ast.Element{ast.NewEndEvent("end", "End")}
	proc := ast.NewProcess("NoStart", "nostart", "1.0", elements, nil)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "event-cardinality")
}

func TestValidate_OutgoingDegreeMustBeOne(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewEndEvent("e1", "E1"),
		ast.NewEndEvent("e2", "E2"),
	}
	flows := []ast.Flow{
		{SourceID: "start", TargetID: "e1"},
		{SourceID: "start", TargetID: "e2"},
	}
	proc := ast.NewProcess("TwoOut", "twoout", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "outgoing-degree")
}

func TestValidate_ConnectivityStrictIsError(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewEndEvent("end", "End"),
		ast.NewEndEvent("orphan", "Orphan"),
	}
	flows := []ast.Flow{{SourceID: "start", TargetID: "end"}}
	proc := ast.NewProcess("Orphan", "orphan", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "connectivity")
}

func TestValidate_ConnectivityPermissiveIsWarning(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewEndEvent("end", "End"),
		ast.NewEndEvent("orphan", "Orphan"),
	}
	flows := []ast.Flow{{SourceID: "start", TargetID: "end"}}
	proc := ast.NewProcess("Orphan", "orphan", "1.0", elements, flows)

	report := validate.Validate(proc, false, nil)
	assert.False(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "connectivity")
}

func TestValidate_GatewaySingleConditionalEdgeIsWarning(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewXorGateway("gw", "GW", ""),
		ast.NewEndEvent("end", "End"),
	}
	flows := []ast.Flow{
		{SourceID: "start", TargetID: "gw"},
		{SourceID: "gw", TargetID: "end", Condition: "=x = 1"},
	}
	proc := ast.NewProcess("OneCond", "onecond", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	assert.False(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "gateway-shape")
}

func TestValidate_GatewayTwoUnconditionalEdgesIsError(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewXorGateway("gw", "GW", ""),
		ast.NewEndEvent("e1", "E1"),
		ast.NewEndEvent("e2", "E2"),
	}
	flows := []ast.Flow{
		{SourceID: "start", TargetID: "gw"},
		{SourceID: "gw", TargetID: "e1"},
		{SourceID: "gw", TargetID: "e2"},
	}
	proc := ast.NewProcess("TwoDefault", "twodefault", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "gateway-shape")
}

func TestValidate_GatewayOneUnconditionalOneConditionalIsClean(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewXorGateway("gw", "GW", ""),
		ast.NewEndEvent("e1", "E1"),
		ast.NewEndEvent("e2", "E2"),
	}
	flows := []ast.Flow{
		{SourceID: "start", TargetID: "gw"},
		{SourceID: "gw", TargetID: "e1"},
		{SourceID: "gw", TargetID: "e2", Condition: "=x = 1"},
	}
	proc := ast.NewProcess("Mixed", "mixed", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	assert.False(t, report.HasErrors())
	assert.Empty(t, report.Warnings)
}

func TestValidate_ProcessEntityMustFollowStartEvent(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewScriptCall("between", "Between", "1", nil, nil, "result", false),
		ast.NewProcessEntity("entity", "Entity", "Customer"),
		ast.NewEndEvent("end", "End"),
	}
	flows := []ast.Flow{
		{SourceID: "start", TargetID: "between"},
		{SourceID: "between", TargetID: "entity"},
		{SourceID: "entity", TargetID: "end"},
	}
	proc := ast.NewProcess("Misplaced", "misplaced", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "entity-placement")
}

func TestValidate_AtMostOneProcessEntity(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewProcessEntity("e1", "E1", "Customer"),
		ast.NewProcessEntity("e2", "E2", "Order"),
		ast.NewEndEvent("end", "End"),
	}
	flows := []ast.Flow{
		{SourceID: "start", TargetID: "e1"},
		{SourceID: "e1", TargetID: "e2"},
		{SourceID: "e2", TargetID: "end"},
	}
	proc := ast.NewProcess("TwoEntities", "twoentities", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "entity-placement")
}

func TestValidate_EngineCompat_ConditionOnNonGatewayEdge(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewEndEvent("end", "End"),
	}
	flows := []ast.Flow{{SourceID: "start", TargetID: "end", Condition: "=x = 1"}}
	proc := ast.NewProcess("CondOnStart", "condonstart", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "engine-compat")
}

func TestValidate_EngineCompat_LegacyMappingConflict(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewScriptCall("calc", "Calc", "a+b", []ast.Mapping{{Source: "a", Target: "x"}}, nil, "result", true),
		ast.NewEndEvent("end", "End"),
	}
	flows := []ast.Flow{
		{SourceID: "start", TargetID: "calc"},
		{SourceID: "calc", TargetID: "end"},
	}
	proc := ast.NewProcess("Conflict", "conflict", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "engine-compat")
}

func TestValidate_MappingPathSyntax(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewScriptCall("calc", "Calc", "a+b", []ast.Mapping{{Source: "a..b", Target: "x"}}, nil, "result", false),
		ast.NewEndEvent("end", "End"),
	}
	flows := []ast.Flow{
		{SourceID: "start", TargetID: "calc"},
		{SourceID: "calc", TargetID: "end"},
	}
	proc := ast.NewProcess("BadPath", "badpath", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
	assert.Contains(t, diagnosticRules(report), "mapping-path")
}

func TestValidate_SelfLoopRejectedByConnectivityRule(t *testing.T) {
	elements := []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewScriptCall("loop", "Loop", "1", nil, nil, "result", false),
		ast.NewEndEvent("end", "End"),
	}
	flows := []ast.Flow{
		{SourceID: "start", TargetID: "loop"},
		{SourceID: "loop", TargetID: "loop"},
	}
	proc := ast.NewProcess("SelfLoop", "selfloop", "1.0", elements, flows)

	report := validate.Validate(proc, true, nil)
	require.True(t, report.HasErrors())
}

func diagnosticRules(r *validate.Report) []string {
	var rules []string
	for _, d := range r.All() {
		rules = append(rules, d.Rule)
	}
	return rules
}
