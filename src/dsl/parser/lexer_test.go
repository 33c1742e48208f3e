package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokensOf(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer(src)
	var toks []Token
	for {
		tok := lex.Next()
		toks = append(toks, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return toks
}

func TestLexer_Punctuation(t *testing.T) {
	toks := tokensOf(t, `{}[]:,->`)
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		TokenLBrace, TokenRBrace, TokenLBracket, TokenRBracket,
		TokenColon, TokenComma, TokenArrow, TokenEOF,
	}, types)
}

func TestLexer_StringWithEscapes(t *testing.T) {
	toks := tokensOf(t, `"a\nb\tc\"d\\e"`)
	require.Len(t, toks, 2)
	assert.Equal(t, TokenString, toks[0].Type)
	assert.Equal(t, "a\nb\tc\"d\\e", toks[0].Text)
}

func TestLexer_Comments(t *testing.T) {
	toks := tokensOf(t, "ident // this is a comment\nother")
	require.Len(t, toks, 3)
	assert.Equal(t, "ident", toks[0].Text)
	assert.Equal(t, "other", toks[1].Text)
}

func TestLexer_LineAndColumnTracking(t *testing.T) {
	toks := tokensOf(t, "a\nb")
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
}

func TestLexer_IllegalToken(t *testing.T) {
	toks := tokensOf(t, "@")
	require.Len(t, toks, 2)
	assert.Equal(t, TokenIllegal, toks[0].Type)
}
