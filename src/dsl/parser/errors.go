package parser

import (
	"fmt"

	"procdsl/src/core/types"
)

// ErrorList collects every syntax error the parser finds in one pass,
// rather than stopping at the first one. The caller decides what to do
// with a non-empty list; Parse itself keeps going as far as it can.
type ErrorList []*types.CoreError

func (el ErrorList) Error() string {
	if len(el) == 0 {
		return ""
	}
	if len(el) == 1 {
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", el[0].Error(), len(el)-1)
}

func (p *Parser) errorf(tok Token, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, types.NewSyntaxError(tok.Line, tok.Column, msg))
}

func (p *Parser) duplicateKey(tok Token, key string) {
	p.errorf(tok, "duplicate key %q", key)
}

func (p *Parser) missingField(tok Token, kind, field string) {
	p.errorf(tok, "%s is missing required field %q", kind, field)
}
