package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlang/volt/internal/ast"
	"github.com/voltlang/volt/internal/parser"
	"github.com/voltlang/volt/internal/volterr"
)

func TestParseSetAndShow(t *testing.T) {
	prog, err := parser.Parse(`set x = 1 + 2
show x`)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 2)
	set, ok := prog.Decls[0].(*ast.SetStmt)
	require.True(t, ok)
	_, ok = set.Target.(*ast.IdentTarget)
	assert.True(t, ok)
	_, ok = prog.Decls[1].(*ast.ShowStmt)
	assert.True(t, ok)
}

func TestParseFuncWithDefaultParam(t *testing.T) {
	prog, err := parser.Parse(`func greet(name, greeting = "hi") {
  return greeting
}`)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 1)
	fn, ok := prog.Decls[0].(*ast.FuncDecl)
	require.True(t, ok)
	require.Len(t, fn.Params, 2)
	assert.Nil(t, fn.Params[0].Default)
	assert.NotNil(t, fn.Params[1].Default)
}

func TestParseClassWithExtends(t *testing.T) {
	prog, err := parser.Parse(`class A {
  func init(n) { set this.n = n }
}
class B extends A {
  func init(n) { super.init(n) }
}`)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 2)
	b, ok := prog.Decls[1].(*ast.ClassDecl)
	require.True(t, ok)
	assert.Equal(t, "A", b.Parent)
}

func TestParseDestructuringTargets(t *testing.T) {
	prog, err := parser.Parse(`set [a, b] = pair
set {name, age} = person`)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 2)
	_, ok := prog.Decls[0].(*ast.SetStmt).Target.(*ast.ListPatternTarget)
	assert.True(t, ok)
	_, ok = prog.Decls[1].(*ast.SetStmt).Target.(*ast.DictPatternTarget)
	assert.True(t, ok)
}

func TestParseForForms(t *testing.T) {
	prog, err := parser.Parse(`for i in 1 to 5 { show i }
for v in items { show v }
for k, v in items { show k }`)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 3)
	_, ok := prog.Decls[0].(*ast.ForRangeStmt)
	assert.True(t, ok)
	forIn, ok := prog.Decls[1].(*ast.ForInStmt)
	require.True(t, ok)
	assert.Empty(t, forIn.KeyName)
	forKV, ok := prog.Decls[2].(*ast.ForInStmt)
	require.True(t, ok)
	assert.Equal(t, "k", forKV.KeyName)
}

func TestParseMatchStmt(t *testing.T) {
	prog, err := parser.Parse(`match x {
  case 1 { show "one" }
  case 2 { show "two" }
  default { show "other" }
}`)
	require.NoError(t, err)
	m, ok := prog.Decls[0].(*ast.MatchStmt)
	require.True(t, ok)
	assert.Len(t, m.Cases, 2)
	assert.NotNil(t, m.Default)
}

func TestParseTryCatchFinally(t *testing.T) {
	prog, err := parser.Parse(`try {
  throw "x"
} catch e {
  show e
} finally {
  show "done"
}`)
	require.NoError(t, err)
	ts, ok := prog.Decls[0].(*ast.TryStmt)
	require.True(t, ok)
	assert.True(t, ts.HasCatch)
	assert.True(t, ts.HasFinally)
	assert.Equal(t, "e", ts.CatchName)
}

func TestParseTryWithoutCatchOrFinallyIsSyntaxError(t *testing.T) {
	_, err := parser.Parse(`try { show 1 }`)
	require.Error(t, err)
	verr, ok := err.(*volterr.Error)
	require.True(t, ok)
	assert.Equal(t, volterr.SyntaxError, verr.Kind)
}

func TestParseLambdaVsParenExpr(t *testing.T) {
	prog, err := parser.Parse(`set f = (x) => x * x
set g = (1 + 2)`)
	require.NoError(t, err)
	fset, ok := prog.Decls[0].(*ast.SetStmt)
	require.True(t, ok)
	_, ok = fset.Value.(*ast.LambdaExpr)
	assert.True(t, ok)
	gset, ok := prog.Decls[1].(*ast.SetStmt)
	require.True(t, ok)
	_, ok = gset.Value.(*ast.GroupExpr)
	assert.True(t, ok)
}

func TestParseDictShorthandEntry(t *testing.T) {
	prog, err := parser.Parse(`set d = {name, age}`)
	require.NoError(t, err)
	set := prog.Decls[0].(*ast.SetStmt)
	lit, ok := set.Value.(*ast.DictLit)
	require.True(t, ok)
	require.Len(t, lit.Keys, 2)
	assert.Equal(t, "name", lit.Keys[0])
	ident, ok := lit.Values[0].(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "name", ident.Name)
}

func TestParseSyntaxErrorHasPosition(t *testing.T) {
	_, err := parser.Parse(`set x = `)
	require.Error(t, err)
	verr, ok := err.(*volterr.Error)
	require.True(t, ok)
	assert.Equal(t, volterr.SyntaxError, verr.Kind)
	assert.Equal(t, 1, verr.Line)
	assert.Equal(t, 8, verr.Col)
}

func TestParseSemicolonSeparatesStatementsOnOneLine(t *testing.T) {
	prog, err := parser.Parse(`set a=1; set b=2; show a`)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 3)
	_, ok := prog.Decls[0].(*ast.SetStmt)
	assert.True(t, ok)
	_, ok = prog.Decls[1].(*ast.SetStmt)
	assert.True(t, ok)
	_, ok = prog.Decls[2].(*ast.ShowStmt)
	assert.True(t, ok)
}
