package parser

import (
	"strconv"

	"procdsl/src/dsl/ast"
)

func toASTMappings(ms []Mapping) []ast.Mapping {
	out := make([]ast.Mapping, 0, len(ms))
	for _, m := range ms {
		out = append(out, ast.Mapping{Source: m.Source, Target: m.Target})
	}
	return out
}

// mergeMappings combines the modern mapping list with the legacy
// input_vars/output_vars shorthand for one direction, reporting whether
// both forms were present at once. Per spec they are not silently
// merged into one source of truth — their coexistence is an
// engine-compatibility violation the validator rejects — but the
// parser still needs a single mapping list to hand the rest of the
// pipeline, so it concatenates them and leaves the conflict flag for
// validate to act on.
func mergeMappings(ps *propSet, mappingsKey, varsKey string) ([]Mapping, bool) {
	mappings, hasMappings := ps.get(mappingsKey)
	vars, hasVars := ps.getStringList(varsKey)
	out := ps.getMappings(mappingsKey)
	if hasVars {
		for _, v := range vars {
			out = append(out, Mapping{Source: v, Target: v})
		}
	}
	_ = mappings
	return out, hasMappings && hasVars
}

// parseScriptCall parses:
//
//	scriptCall "name" {
//	  id: "..."
//	  script: "..."
//	  input_mappings: [ {source: "a", target: "x"} ]
//	  output_mappings: [ {source: "x", target: "out"} ]
//	  result_variable: "r"
//	}
func (p *Parser) parseScriptCall() ast.Element {
	p.expectKeyword("scriptCall")
	nameTok := p.expect(TokenString)
	ps := p.parsePropSet()

	id, ok := ps.getString("id")
	if !ok {
		p.missingField(nameTok, "scriptCall", "id")
	}
	script, ok := ps.getString("script")
	if !ok {
		p.missingField(nameTok, "scriptCall", "script")
	}

	in, inConflict := mergeMappings(ps, "input_mappings", "input_vars")
	out, outConflict := mergeMappings(ps, "output_mappings", "output_vars")
	resultVar := ps.getStringOr("result_variable", "result")

	return ast.NewScriptCall(id, nameTok.Text, script, toASTMappings(in), toASTMappings(out), resultVar, inConflict || outConflict)
}

// parseServiceTask parses:
//
//	serviceTask "name" {
//	  id: "..."
//	  task_type: "..."
//	  retries: "3"
//	  headers: { key: "value" }
//	  input_mappings: [ {source: "a", target: "x"} ]
//	  output_mappings: [ {source: "x", target: "out"} ]
//	}
func (p *Parser) parseServiceTask() ast.Element {
	p.expectKeyword("serviceTask")
	nameTok := p.expect(TokenString)
	ps := p.parsePropSet()

	id, ok := ps.getString("id")
	if !ok {
		p.missingField(nameTok, "serviceTask", "id")
	}
	taskType, ok := ps.getString("task_type")
	if !ok {
		p.missingField(nameTok, "serviceTask", "task_type")
	}

	retries := 3
	if retriesStr, ok := ps.getString("retries"); ok {
		n, err := strconv.Atoi(retriesStr)
		if err != nil {
			p.errorf(nameTok, "serviceTask %q: retries must be an integer, got %q", id, retriesStr)
		} else {
			retries = n
		}
	}

	headers, _ := ps.getObject("headers")

	in, inConflict := mergeMappings(ps, "input_mappings", "input_vars")
	out, outConflict := mergeMappings(ps, "output_mappings", "output_vars")

	return ast.NewServiceTask(id, nameTok.Text, taskType, retries, headers, toASTMappings(in), toASTMappings(out), inConflict || outConflict)
}

// parseProcessEntity parses `processEntity "name" { id: "...", entityName: "..." }`.
// id is optional: when omitted it is derived from the display name by
// lowercasing and hyphen-joining words (spec §3).
func (p *Parser) parseProcessEntity() ast.Element {
	p.expectKeyword("processEntity")
	nameTok := p.expect(TokenString)
	ps := p.parsePropSet()

	entityName, ok := ps.getString("entityName")
	if !ok {
		p.missingField(nameTok, "processEntity", "entityName")
	}
	id := ps.getStringOr("id", slugify(nameTok.Text))

	return ast.NewProcessEntity(id, nameTok.Text, entityName)
}

// slugify lowercases and hyphen-joins words, used to derive a
// ProcessEntity's id from its display name when id is omitted.
func slugify(name string) string {
	out := make([]rune, 0, len(name))
	lastHyphen := false
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			lastHyphen = false
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
			lastHyphen = false
		default:
			if !lastHyphen && len(out) > 0 {
				out = append(out, '-')
				lastHyphen = true
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
