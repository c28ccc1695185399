package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlang/volt/internal/lexer"
	"github.com/voltlang/volt/internal/token"
	"github.com/voltlang/volt/internal/volterr"
)

func typesOf(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestScanOperatorsAndKeywords(t *testing.T) {
	toks, err := lexer.Scan(`set x = 1 + 2 -- comment
show x`)
	require.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.SET, token.IDENT, token.ASSIGN, token.INT, token.PLUS, token.INT,
		token.NEWLINE, token.SHOW, token.IDENT, token.EOF,
	}, typesOf(toks))
}

func TestScanAliasesForLogicalOperators(t *testing.T) {
	toks, err := lexer.Scan(`a && b || !c`)
	require.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.IDENT, token.AND, token.IDENT, token.OR, token.NOT, token.IDENT, token.EOF,
	}, typesOf(toks))
}

func TestScanArrowAndFatArrow(t *testing.T) {
	toks, err := lexer.Scan(`ask "name" -> n
set f = (x) => x`)
	require.NoError(t, err)
	var arrowSeen, fatArrowSeen bool
	for _, tk := range toks {
		if tk.Type == token.ARROW {
			arrowSeen = true
		}
		if tk.Type == token.FATARROW {
			fatArrowSeen = true
		}
	}
	assert.True(t, arrowSeen, "expected an ARROW token")
	assert.True(t, fatArrowSeen, "expected a FATARROW token")
}

func TestScanStringEscapes(t *testing.T) {
	toks, err := lexer.Scan(`"a\nb\t\"c\\d"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "a\nb\t\"c\\d", toks[0].Literal)
}

func TestScanUnterminatedStringIsSyntaxError(t *testing.T) {
	_, err := lexer.Scan(`"abc`)
	require.Error(t, err)
	verr, ok := err.(*volterr.Error)
	require.True(t, ok)
	assert.Equal(t, volterr.SyntaxError, verr.Kind)
}

func TestScanFStringFragments(t *testing.T) {
	toks, err := lexer.Scan(`f"hi {name}, you are {age+1} {{literal}}"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	frag := toks[0].Fragments
	require.Len(t, frag, 5)
	assert.Equal(t, "hi ", frag[0].Text)
	assert.True(t, frag[1].IsExpr)
	assert.Equal(t, "name", frag[1].Raw)
	assert.Equal(t, ", you are ", frag[2].Text)
	assert.True(t, frag[3].IsExpr)
	assert.Equal(t, "age+1", frag[3].Raw)
	assert.Equal(t, " {literal}", frag[4].Text)
}

func TestScanNumberLiterals(t *testing.T) {
	toks, err := lexer.Scan(`42 3.14`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.INT, toks[0].Type)
	assert.Equal(t, "42", toks[0].Literal)
	assert.Equal(t, token.FLOAT, toks[1].Type)
	assert.Equal(t, "3.14", toks[1].Literal)
}

func TestScanUnexpectedCharacterIsSyntaxError(t *testing.T) {
	_, err := lexer.Scan("@")
	require.Error(t, err)
	verr, ok := err.(*volterr.Error)
	require.True(t, ok)
	assert.Equal(t, volterr.SyntaxError, verr.Kind)
}

func TestScanSemicolonActsAsStatementSeparator(t *testing.T) {
	toks, err := lexer.Scan(`set a=1; set b=2`)
	require.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.SET, token.IDENT, token.ASSIGN, token.INT, token.NEWLINE,
		token.SET, token.IDENT, token.ASSIGN, token.INT, token.EOF,
	}, typesOf(toks))
}
