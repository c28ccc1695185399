// Package parser implements Volt's recursive-descent, Pratt-precedence
// parser, grounded on the teacher's parser.go (same match/consume/check/
// advance helper shape, same style of `p.error` bailing out on the first
// syntax error) but generalized to Volt's grammar: statement separators
// (newlines, and `;` which the lexer scans as the same token) are filtered
// out at construction time since the grammar is already unambiguous
// without them — every statement starts with a distinguishing keyword or
// is an expression/`set` statement — plus classes with single inheritance,
// destructuring `set` targets, f-string fragments, `match`, and
// `try`/`catch`/`finally`.
package parser

import (
	"github.com/voltlang/volt/internal/ast"
	"github.com/voltlang/volt/internal/lexer"
	"github.com/voltlang/volt/internal/token"
	"github.com/voltlang/volt/internal/volterr"
)

type Parser struct {
	toks []token.Token
	idx  int
	err  *volterr.Error
}

// Parse tokenizes and parses a complete Volt source file.
func Parse(src string) (*ast.Program, error) {
	toks, err := lexer.Scan(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens parses a pre-lexed token stream into a program (Parse calls it
// after lexing; f-string fragments are parsed by a separate bare Parser in
// fstring, not through this function).
func ParseTokens(toks []token.Token) (prog *ast.Program, err error) {
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Type != token.NEWLINE {
			filtered = append(filtered, t)
		}
	}
	p := &Parser{toks: filtered}

	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(*volterr.Error); ok {
				err = perr
				return
			}
			panic(r)
		}
	}()

	prog = p.program()
	return prog, nil
}

func (p *Parser) program() *ast.Program {
	prog := &ast.Program{}
	for !p.atEnd() {
		prog.Decls = append(prog.Decls, p.declaration())
	}
	return prog
}

// ----------------------------------------------------------- declarations

func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.FUNC):
		return p.funcDecl()
	case p.match(token.CLASS):
		return p.classDecl()
	case p.match(token.SET):
		return p.setStmt()
	default:
		return p.statement()
	}
}

func (p *Parser) funcDecl() ast.Stmt {
	line := p.previous().Line
	name := p.consume(token.IDENT, "expected a function name after 'func'")
	params := p.paramList()
	body := p.blockStmts()
	return &ast.FuncDecl{Name: name.Lexeme, Params: params, Body: body, Line: line}
}

func (p *Parser) paramList() []ast.Param {
	p.consume(token.LPAREN, "expected '(' after function name")
	var params []ast.Param
	if !p.check(token.RPAREN) {
		params = append(params, p.param())
		for p.match(token.COMMA) {
			params = append(params, p.param())
		}
	}
	p.consume(token.RPAREN, "expected ')' after parameters")
	return params
}

func (p *Parser) param() ast.Param {
	name := p.consume(token.IDENT, "expected a parameter name")
	pr := ast.Param{Name: name.Lexeme}
	if p.match(token.ASSIGN) {
		pr.Default = p.expression()
	}
	return pr
}

func (p *Parser) classDecl() ast.Stmt {
	line := p.previous().Line
	name := p.consume(token.IDENT, "expected a class name")
	cd := &ast.ClassDecl{Name: name.Lexeme, Line: line}
	if p.match(token.EXTENDS) {
		parent := p.consume(token.IDENT, "expected a parent class name after 'extends'")
		cd.Parent = parent.Lexeme
	}
	p.consume(token.LBRACE, "expected '{' before class body")
	for !p.check(token.RBRACE) && !p.atEnd() {
		p.consume(token.FUNC, "expected a method declaration inside a class body")
		cd.Methods = append(cd.Methods, p.funcDecl().(*ast.FuncDecl))
	}
	p.consume(token.RBRACE, "expected '}' after class body")
	return cd
}

func (p *Parser) setStmt() ast.Stmt {
	line := p.previous().Line
	target := p.target()
	p.consume(token.ASSIGN, "expected '=' in 'set' statement")
	value := p.expression()
	return &ast.SetStmt{Target: target, Value: value, Line: line}
}

func (p *Parser) target() ast.Target {
	switch {
	case p.match(token.LBRACKET):
		var names []string
		if !p.check(token.RBRACKET) {
			names = append(names, p.consume(token.IDENT, "expected an identifier in list pattern").Lexeme)
			for p.match(token.COMMA) {
				names = append(names, p.consume(token.IDENT, "expected an identifier in list pattern").Lexeme)
			}
		}
		p.consume(token.RBRACKET, "expected ']' after list pattern")
		return &ast.ListPatternTarget{Names: names}
	case p.match(token.LBRACE):
		var names []string
		if !p.check(token.RBRACE) {
			names = append(names, p.consume(token.IDENT, "expected an identifier in dict pattern").Lexeme)
			for p.match(token.COMMA) {
				names = append(names, p.consume(token.IDENT, "expected an identifier in dict pattern").Lexeme)
			}
		}
		p.consume(token.RBRACE, "expected '}' after dict pattern")
		return &ast.DictPatternTarget{Names: names}
	default:
		name := p.consume(token.IDENT, "expected an identifier, '[', or '{' after 'set'")
		var expr ast.Expr = &ast.Identifier{Name: name.Lexeme}
		for {
			if p.match(token.DOT) {
				prop := p.consume(token.IDENT, "expected a property name after '.'")
				expr = &ast.MemberExpr{Object: expr, Name: prop.Lexeme}
				continue
			}
			if p.match(token.LBRACKET) {
				idx := p.expression()
				p.consume(token.RBRACKET, "expected ']' after index expression")
				expr = &ast.IndexExpr{Object: expr, Index: idx}
				continue
			}
			break
		}
		switch e := expr.(type) {
		case *ast.Identifier:
			return &ast.IdentTarget{Name: e.Name}
		case *ast.MemberExpr:
			return &ast.MemberTarget{Object: e.Object, Name: e.Name}
		case *ast.IndexExpr:
			return &ast.IndexTarget{Object: e.Object, Index: e.Index}
		}
		p.error("invalid assignment target")
		return nil
	}
}

// ------------------------------------------------------------- statements

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.MATCH):
		return p.matchStmt()
	case p.match(token.TRY):
		return p.tryStmt()
	case p.match(token.THROW):
		return &ast.ThrowStmt{Value: p.expression(), Line: p.previous().Line}
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.BREAK):
		return &ast.BreakStmt{Line: p.previous().Line}
	case p.match(token.CONTINUE):
		return &ast.ContinueStmt{Line: p.previous().Line}
	case p.match(token.USE):
		line := p.previous().Line
		name := p.consume(token.STRING, "expected a module name string after 'use'")
		return &ast.UseStmt{Name: name.Literal, Line: line}
	case p.match(token.SHOW):
		return &ast.ShowStmt{Value: p.expression(), Line: p.previous().Line}
	case p.match(token.ASK):
		line := p.previous().Line
		prompt := p.expression()
		p.consume(token.ARROW, "expected '->' after ask prompt")
		target := p.consume(token.IDENT, "expected an identifier after '->'")
		return &ast.AskStmt{Prompt: prompt, Target: target.Lexeme, Line: line}
	case p.match(token.SET):
		return p.setStmt()
	default:
		line := p.current().Line
		return &ast.ExprStmt{X: p.expression(), Line: line}
	}
}

func (p *Parser) blockStmts() []ast.Stmt {
	p.consume(token.LBRACE, "expected '{'")
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RBRACE, "expected '}'")
	return stmts
}

func (p *Parser) ifStmt() ast.Stmt {
	line := p.previous().Line
	cond := p.expression()
	then := p.blockStmts()
	is := &ast.IfStmt{Cond: cond, Then: then, Line: line}
	if p.match(token.ELSE) {
		if p.match(token.IF) {
			is.Else = []ast.Stmt{p.ifStmt()}
		} else {
			is.Else = p.blockStmts()
		}
	}
	return is
}

func (p *Parser) whileStmt() ast.Stmt {
	line := p.previous().Line
	cond := p.expression()
	body := p.blockStmts()
	return &ast.WhileStmt{Cond: cond, Body: body, Line: line}
}

func (p *Parser) forStmt() ast.Stmt {
	line := p.previous().Line
	first := p.consume(token.IDENT, "expected an identifier after 'for'")

	if p.match(token.COMMA) {
		second := p.consume(token.IDENT, "expected a second identifier after ','")
		p.consume(token.IN, "expected 'in' in for loop")
		iter := p.expression()
		body := p.blockStmts()
		return &ast.ForInStmt{KeyName: first.Lexeme, ValueName: second.Lexeme, Iterable: iter, Body: body, Line: line}
	}

	p.consume(token.IN, "expected 'in' in for loop")
	start := p.expression()
	if p.match(token.TO) {
		to := p.expression()
		body := p.blockStmts()
		return &ast.ForRangeStmt{Name: first.Lexeme, From: start, To: to, Body: body, Line: line}
	}
	body := p.blockStmts()
	return &ast.ForInStmt{ValueName: first.Lexeme, Iterable: start, Body: body, Line: line}
}

func (p *Parser) matchStmt() ast.Stmt {
	line := p.previous().Line
	subject := p.expression()
	p.consume(token.LBRACE, "expected '{' after match subject")
	ms := &ast.MatchStmt{Subject: subject, Line: line}
	for p.match(token.CASE) {
		pattern := p.expression()
		body := p.blockStmts()
		ms.Cases = append(ms.Cases, ast.MatchCase{Pattern: pattern, Body: body})
	}
	if p.match(token.DEFAULT) {
		ms.Default = p.blockStmts()
	}
	p.consume(token.RBRACE, "expected '}' after match body")
	return ms
}

func (p *Parser) tryStmt() ast.Stmt {
	line := p.previous().Line
	ts := &ast.TryStmt{Try: p.blockStmts(), Line: line}
	if p.match(token.CATCH) {
		ts.HasCatch = true
		name := p.consume(token.IDENT, "expected an identifier after 'catch'")
		ts.CatchName = name.Lexeme
		ts.Catch = p.blockStmts()
	}
	if p.match(token.FINALLY) {
		ts.HasFinally = true
		ts.Finally = p.blockStmts()
	}
	if !ts.HasCatch && !ts.HasFinally {
		p.error("expected 'catch' or 'finally' after 'try' block")
	}
	return ts
}

func (p *Parser) returnStmt() ast.Stmt {
	line := p.previous().Line
	if p.checkReturnEnd() {
		return &ast.ReturnStmt{Line: line}
	}
	return &ast.ReturnStmt{Value: p.expression(), Line: line}
}

// checkReturnEnd reports whether a bare `return` (no expression) ends here.
// Newlines carry no statement-terminator meaning in this parser (they are
// stripped at construction, see ParseTokens), so a bare `return` is
// recognized structurally instead: the token immediately following `return`
// cannot begin an expression, meaning it must close the enclosing block or
// start the next statement.
func (p *Parser) checkReturnEnd() bool {
	return !startsExpression(p.current().Type)
}

// startsExpression lists every token type that can legally begin an
// expression (primary(), unary(), or a lambda's opening paren). Anything
// else — a closing brace, EOF, or another statement keyword — can never
// follow `return`/value position, so it unambiguously ends a bare `return`.
func startsExpression(t token.Type) bool {
	switch t {
	case token.TRUE, token.FALSE, token.NULL,
		token.INT, token.FLOAT, token.STRING, token.FSTRING,
		token.IDENT, token.THIS, token.SUPER, token.ISINSTANCE, token.NEW,
		token.LPAREN, token.LBRACKET, token.LBRACE,
		token.NOT, token.MINUS:
		return true
	default:
		return false
	}
}

// --------------------------------------------------------------- helpers

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	return !p.atEnd() && p.current().Type == t
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if !p.atEnd() {
		p.idx++
	}
	return tok
}

func (p *Parser) atEnd() bool { return p.current().Type == token.EOF }

func (p *Parser) current() token.Token { return p.toks[p.idx] }

func (p *Parser) previous() token.Token {
	if p.idx > 0 {
		return p.toks[p.idx-1]
	}
	return p.current()
}

func (p *Parser) consume(t token.Type, msg string) token.Token {
	if !p.check(t) {
		p.error(msg)
	}
	return p.advance()
}

func (p *Parser) error(msg string) {
	tok := p.current()
	panic(volterr.NewAt(volterr.SyntaxError, tok.Line, tok.Col, "at '%s': %s", tok.Lexeme, msg))
}
