package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procdsl/src/dsl/ast"
)

func minimalElements() []ast.Element {
	return []ast.Element{
		ast.NewStartEvent("start", "Start"),
		ast.NewEndEvent("end", "End"),
	}
}

func TestNewProcess_Indexes(t *testing.T) {
	elements := minimalElements()
	flows := []ast.Flow{{SourceID: "start", TargetID: "end"}}
	proc := ast.NewProcess("Demo", "demo", "1.0", elements, flows)

	start, ok := proc.ByID("start")
	require.True(t, ok)
	assert.Equal(t, ast.KindStartEvent, start.Kind())

	assert.Equal(t, []string{"end"}, proc.Successors("start"))
	assert.Equal(t, []string{"start"}, proc.Predecessors("end"))
	assert.Equal(t, 1, proc.OutDegree("start"))
	assert.Equal(t, 0, proc.InDegree("start"))
	assert.Equal(t, 1, proc.InDegree("end"))
	assert.Equal(t, 0, proc.OutDegree("end"))

	_, ok = proc.ByID("missing")
	assert.False(t, ok)
}

func TestNewProcess_OutFlows(t *testing.T) {
	elements := append(minimalElements(), ast.NewXorGateway("gw", "Gateway", ""))
	flows := []ast.Flow{
		{SourceID: "start", TargetID: "gw"},
		{SourceID: "gw", TargetID: "end"},
		{SourceID: "gw", TargetID: "end", Condition: "=x = 1"},
	}
	proc := ast.NewProcess("Demo", "demo", "1.0", elements, flows)

	out := proc.OutFlows("gw")
	require.Len(t, out, 2)
	assert.False(t, out[0].HasCondition())
	assert.True(t, out[1].HasCondition())
}

func TestFlowID_IsDeterministicAndDirectional(t *testing.T) {
	assert.Equal(t, "flow_a_to_b", ast.FlowID("a", "b"))
	assert.NotEqual(t, ast.FlowID("a", "b"), ast.FlowID("b", "a"))
}

func TestScriptCall_LegacyMappingConflictField(t *testing.T) {
	sc := ast.NewScriptCall("s1", "Calc", "a+b", nil, nil, "result", true)
	assert.True(t, sc.LegacyMappingConflict)
	assert.Equal(t, ast.KindScriptCall, sc.Kind())
	assert.Equal(t, "result", sc.ResultVariable)
}

func TestServiceTask_Fields(t *testing.T) {
	st := ast.NewServiceTask("t1", "Call", "http", 5, map[string]string{"k": "v"}, nil, nil, false)
	assert.Equal(t, 5, st.Retries)
	assert.Equal(t, "http", st.TaskType)
	assert.Equal(t, "v", st.Headers["k"])
	assert.False(t, st.LegacyMappingConflict)
}
