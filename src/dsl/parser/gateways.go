package parser

import "procdsl/src/dsl/ast"

// parseXorGateway parses `xorGateway "name" { id: "...", condition: "..." }`.
// condition is optional: an unconditional gateway branch is valid syntax,
// left for the validator to judge (its gateway-shape rule).
func (p *Parser) parseXorGateway() ast.Element {
	p.expectKeyword("xorGateway")
	nameTok := p.expect(TokenString)
	ps := p.parsePropSet()

	id, ok := ps.getString("id")
	if !ok {
		p.missingField(nameTok, "xorGateway", "id")
	}
	condition, _ := ps.getString("condition")

	return ast.NewXorGateway(id, nameTok.Text, condition)
}
