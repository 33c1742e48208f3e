// Package parser turns process definition source text into an
// *ast.Process. It is a small hand-written recursive-descent parser:
// the grammar (spec §4.1) is irregular enough — bare "key:value" pairs,
// a dedicated "id" -> "id" flow mini-language, nested lists of objects
// for mappings — that a generic config-file parser would fight it more
// than a dozen functions following the grammar by hand.
//
// Parse never stops at the first problem. Every malformed construct it
// can resynchronize past is recorded as an error and skipped, so a
// caller sees every syntax error in one run instead of fixing them one
// at a time (spec §8 P7).
package parser

import (
	"procdsl/src/dsl/ast"
)

// Parser holds the state of one parse: the token stream and the errors
// accumulated so far.
type Parser struct {
	lex    *Lexer
	cur    Token
	ahead  *Token
	errors ErrorList
}

// Parse parses source text into a Process. The returned ErrorList is
// empty (nil) when parsing succeeded; a non-empty list means proc should
// not be trusted for compilation even when it is returned. proc is nil
// when the parse aborted on a structural error such as EOF inside a body.
func Parse(source string) (proc *ast.Process, errs ErrorList) {
	p := &Parser{lex: NewLexer(source)}
	p.advance()

	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseAbort); ok {
				_ = pe
				proc = nil
				errs = p.errors
				return
			}
			panic(r)
		}
	}()

	proc = p.parseProcess()
	return proc, p.errors
}

// parseAbort is used to unwind out of a parse that hit a structural
// problem too severe to resynchronize from (e.g. EOF inside a brace).
// It is caught in Parse and converted into the accumulated error list.
type parseAbort struct{}

func (p *Parser) abort() {
	panic(parseAbort{})
}

func (p *Parser) advance() {
	if p.ahead != nil {
		p.cur = *p.ahead
		p.ahead = nil
		return
	}
	p.cur = p.lex.Next()
}

func (p *Parser) peekNext() Token {
	if p.ahead == nil {
		t := p.lex.Next()
		p.ahead = &t
	}
	return *p.ahead
}

func (p *Parser) expect(tt TokenType) Token {
	if p.cur.Type != tt {
		p.errorf(p.cur, "expected %s, got %s %q", tt, p.cur.Type, p.cur.Text)
		if p.cur.Type == TokenEOF {
			p.abort()
		}
		return p.cur
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) expectKeyword(word string) Token {
	if p.cur.Type != TokenIdent || p.cur.Text != word {
		p.errorf(p.cur, "expected %q, got %q", word, p.cur.Text)
		if p.cur.Type == TokenEOF {
			p.abort()
		}
		return p.cur
	}
	tok := p.cur
	p.advance()
	return tok
}

// parseProcess parses the top-level "process "name" { ... }" block.
func (p *Parser) parseProcess() *ast.Process {
	p.expectKeyword("process")
	nameTok := p.expect(TokenString)
	p.expect(TokenLBrace)

	var id, version string
	var elements []ast.Element
	var flows []ast.Flow
	sawFlow := false

	for p.cur.Type != TokenRBrace {
		if p.cur.Type == TokenEOF {
			p.errorf(p.cur, "unexpected end of input inside process body")
			p.abort()
		}
		if p.cur.Type != TokenIdent {
			p.errorf(p.cur, "expected a declaration, got %q", p.cur.Text)
			p.advance()
			continue
		}
		switch p.cur.Text {
		case "id":
			p.advance()
			p.expect(TokenColon)
			tok := p.expect(TokenString)
			if id != "" {
				p.duplicateKey(tok, "id")
			}
			id = tok.Text
		case "version":
			p.advance()
			p.expect(TokenColon)
			tok := p.expect(TokenString)
			if version != "" {
				p.duplicateKey(tok, "version")
			}
			version = tok.Text
		case "flow":
			if sawFlow {
				p.errorf(p.cur, "duplicate flow section")
			}
			sawFlow = true
			flows = append(flows, p.parseFlowSection()...)
		default:
			if el := p.parseElement(); el != nil {
				elements = append(elements, el)
			}
		}
	}
	p.expect(TokenRBrace)

	if id == "" {
		p.missingField(nameTok, "process", "id")
	}

	return ast.NewProcess(nameTok.Text, id, version, elements, flows)
}

// parseElement dispatches on the leading keyword to one of the
// per-kind constructors in events.go, tasks.go and gateways.go.
func (p *Parser) parseElement() ast.Element {
	kind := p.cur.Text
	switch kind {
	case "start":
		return p.parseStartEvent()
	case "end":
		return p.parseEndEvent()
	case "scriptCall":
		return p.parseScriptCall()
	case "serviceTask":
		return p.parseServiceTask()
	case "processEntity":
		return p.parseProcessEntity()
	case "xorGateway":
		return p.parseXorGateway()
	default:
		p.errorf(p.cur, "unknown element kind %q", kind)
		p.advance()
		p.skipBalancedBody()
		return nil
	}
}

// skipBalancedBody consumes a "{ ... }" block without interpreting it,
// used to resynchronize past an unrecognized element keyword.
func (p *Parser) skipBalancedBody() {
	if p.cur.Type == TokenString {
		p.advance()
	}
	if p.cur.Type != TokenLBrace {
		return
	}
	depth := 0
	for {
		switch p.cur.Type {
		case TokenLBrace:
			depth++
		case TokenRBrace:
			depth--
		case TokenEOF:
			p.abort()
		}
		p.advance()
		if depth == 0 {
			return
		}
	}
}

// parsePropSet parses a "{ key: value ... }" body into a propSet.
func (p *Parser) parsePropSet() *propSet {
	p.expect(TokenLBrace)
	ps := newPropSet()
	for p.cur.Type != TokenRBrace {
		if p.cur.Type == TokenEOF {
			p.errorf(p.cur, "unexpected end of input inside body")
			p.abort()
		}
		if p.cur.Type != TokenIdent {
			p.errorf(p.cur, "expected a property key, got %q", p.cur.Text)
			p.advance()
			continue
		}
		keyTok := p.cur
		p.advance()
		p.expect(TokenColon)
		v := p.parseValue()
		ps.add(p, keyTok.Text, keyTok, v)
		if p.cur.Type == TokenComma {
			p.advance()
		}
	}
	p.expect(TokenRBrace)
	return ps
}

// parseValue parses a STRING, a "[ ... ]" list, or a "{ ident: STRING
// ... }" flat object.
func (p *Parser) parseValue() value {
	switch p.cur.Type {
	case TokenString:
		tok := p.cur
		p.advance()
		return value{str: tok.Text}
	case TokenLBracket:
		return p.parseListValue()
	case TokenLBrace:
		return p.parseObjectValue()
	default:
		p.errorf(p.cur, "expected a value, got %q", p.cur.Text)
		if p.cur.Type != TokenEOF {
			p.advance()
		} else {
			p.abort()
		}
		return value{}
	}
}

func (p *Parser) parseListValue() value {
	p.expect(TokenLBracket)
	var items []value
	for p.cur.Type != TokenRBracket {
		if p.cur.Type == TokenEOF {
			p.errorf(p.cur, "unexpected end of input inside list")
			p.abort()
		}
		items = append(items, p.parseValue())
		if p.cur.Type == TokenComma {
			p.advance()
		}
	}
	p.expect(TokenRBracket)
	return value{isList: true, list: items}
}

func (p *Parser) parseObjectValue() value {
	p.expect(TokenLBrace)
	var pairs []kv
	for p.cur.Type != TokenRBrace {
		if p.cur.Type == TokenEOF {
			p.errorf(p.cur, "unexpected end of input inside object")
			p.abort()
		}
		if p.cur.Type != TokenIdent {
			p.errorf(p.cur, "expected a key, got %q", p.cur.Text)
			p.advance()
			continue
		}
		key := p.cur.Text
		p.advance()
		p.expect(TokenColon)
		tok := p.expect(TokenString)
		pairs = append(pairs, kv{key: key, val: tok.Text})
		if p.cur.Type == TokenComma {
			p.advance()
		}
	}
	p.expect(TokenRBrace)
	return value{isObj: true, obj: pairs}
}

// parseFlowSection parses "flow { "a" -> "b" ["condition": "..."] ... }".
// The condition key may be written quoted or as a bare identifier.
func (p *Parser) parseFlowSection() []ast.Flow {
	p.expectKeyword("flow")
	p.expect(TokenLBrace)
	var flows []ast.Flow
	for p.cur.Type != TokenRBrace {
		if p.cur.Type == TokenEOF {
			p.errorf(p.cur, "unexpected end of input inside flow section")
			p.abort()
		}
		if p.cur.Type != TokenString {
			p.errorf(p.cur, "expected a flow source id, got %q", p.cur.Text)
			p.advance()
			continue
		}
		src := p.expect(TokenString).Text
		p.expect(TokenArrow)
		dst := p.expect(TokenString).Text

		var condition string
		if p.cur.Type == TokenLBracket {
			p.advance()
			for p.cur.Type != TokenRBracket {
				if p.cur.Type == TokenEOF {
					p.abort()
				}
				if (p.cur.Type == TokenIdent || p.cur.Type == TokenString) && p.cur.Text == "condition" {
					p.advance()
					p.expect(TokenColon)
					condition = p.expect(TokenString).Text
				} else {
					p.advance()
				}
			}
			p.expect(TokenRBracket)
		}
		flows = append(flows, ast.Flow{SourceID: src, TargetID: dst, Condition: condition})
	}
	p.expect(TokenRBrace)
	return flows
}
