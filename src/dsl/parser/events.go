package parser

import "procdsl/src/dsl/ast"

// parseStartEvent parses `start "name" { id: "..." }`.
func (p *Parser) parseStartEvent() ast.Element {
	p.expectKeyword("start")
	nameTok := p.expect(TokenString)
	ps := p.parsePropSet()

	id, ok := ps.getString("id")
	if !ok {
		p.missingField(nameTok, "start event", "id")
	}
	return ast.NewStartEvent(id, nameTok.Text)
}

// parseEndEvent parses `end "name" { id: "..." }`.
func (p *Parser) parseEndEvent() ast.Element {
	p.expectKeyword("end")
	nameTok := p.expect(TokenString)
	ps := p.parsePropSet()

	id, ok := ps.getString("id")
	if !ok {
		p.missingField(nameTok, "end event", "id")
	}
	return ast.NewEndEvent(id, nameTok.Text)
}
