package parser

import (
	"strconv"

	"github.com/voltlang/volt/internal/ast"
	"github.com/voltlang/volt/internal/lexer"
	"github.com/voltlang/volt/internal/token"
)

// expression precedence, low to high (spec §4.2):
//   logical-or, logical-and, equality, relational, additive, multiplicative,
//   unary, power(n/a), postfix (member/index/call).
func (p *Parser) expression() ast.Expr {
	return p.logicOr()
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.check(token.OR) {
		op := p.advance()
		right := p.logicAnd()
		expr = &ast.LogicalExpr{Base: pos(op), Left: expr, Op: token.OR, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.check(token.AND) {
		op := p.advance()
		right := p.equality()
		expr = &ast.LogicalExpr{Base: pos(op), Left: expr, Op: token.AND, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.relational()
	for p.check(token.EQ) || p.check(token.NEQ) {
		op := p.advance()
		right := p.relational()
		expr = &ast.BinaryExpr{Base: pos(op), Left: expr, Op: op.Type, Right: right}
	}
	return expr
}

func (p *Parser) relational() ast.Expr {
	expr := p.additive()
	for p.check(token.LT) || p.check(token.LE) || p.check(token.GT) || p.check(token.GE) {
		op := p.advance()
		right := p.additive()
		expr = &ast.BinaryExpr{Base: pos(op), Left: expr, Op: op.Type, Right: right}
	}
	return expr
}

func (p *Parser) additive() ast.Expr {
	expr := p.multiplicative()
	for p.check(token.PLUS) || p.check(token.MINUS) {
		op := p.advance()
		right := p.multiplicative()
		expr = &ast.BinaryExpr{Base: pos(op), Left: expr, Op: op.Type, Right: right}
	}
	return expr
}

func (p *Parser) multiplicative() ast.Expr {
	expr := p.unary()
	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
		op := p.advance()
		right := p.unary()
		expr = &ast.BinaryExpr{Base: pos(op), Left: expr, Op: op.Type, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.check(token.NOT) || p.check(token.MINUS) {
		op := p.advance()
		right := p.unary()
		return &ast.UnaryExpr{Base: pos(op), Op: op.Type, Right: right}
	}
	return p.postfix()
}

func (p *Parser) postfix() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.DOT):
			name := p.consume(token.IDENT, "expected a property name after '.'")
			expr = &ast.MemberExpr{Base: pos(name), Object: expr, Name: name.Lexeme}
		case p.match(token.LBRACKET):
			idx := p.expression()
			rb := p.consume(token.RBRACKET, "expected ']' after index expression")
			expr = &ast.IndexExpr{Base: pos(rb), Object: expr, Index: idx}
		case p.match(token.LPAREN):
			var args []ast.Expr
			if !p.check(token.RPAREN) {
				args = append(args, p.expression())
				for p.match(token.COMMA) {
					args = append(args, p.expression())
				}
			}
			rp := p.consume(token.RPAREN, "expected ')' after arguments")
			expr = &ast.CallExpr{Base: pos(rp), Callee: expr, Args: args}
		default:
			return expr
		}
	}
}

func (p *Parser) primary() ast.Expr {
	tok := p.current()

	switch {
	case p.match(token.TRUE):
		return &ast.BoolLit{Base: pos(tok), Value: true}
	case p.match(token.FALSE):
		return &ast.BoolLit{Base: pos(tok), Value: false}
	case p.match(token.NULL):
		return &ast.NullLit{Base: pos(tok)}
	case p.match(token.INT):
		n, _ := strconv.ParseInt(tok.Literal, 10, 64)
		return &ast.IntLit{Base: pos(tok), Value: n}
	case p.match(token.FLOAT):
		f, _ := strconv.ParseFloat(tok.Literal, 64)
		return &ast.FloatLit{Base: pos(tok), Value: f}
	case p.match(token.STRING):
		return &ast.StringLit{Base: pos(tok), Value: tok.Literal}
	case p.match(token.FSTRING):
		return p.fstring(tok)
	case p.match(token.LBRACKET):
		return p.listLit(tok)
	case p.match(token.LBRACE):
		return p.dictLit(tok)
	case p.match(token.THIS):
		return &ast.ThisExpr{Base: pos(tok)}
	case p.match(token.SUPER):
		p.consume(token.DOT, "expected '.' after 'super'")
		method := p.consume(token.IDENT, "expected a method name after 'super.'")
		return &ast.SuperExpr{Base: pos(tok), Method: method.Lexeme}
	case p.match(token.ISINSTANCE):
		p.consume(token.LPAREN, "expected '(' after 'isinstance'")
		obj := p.expression()
		p.consume(token.COMMA, "expected ',' between isinstance arguments")
		class := p.expression()
		p.consume(token.RPAREN, "expected ')' after isinstance arguments")
		return &ast.IsInstanceExpr{Base: pos(tok), Object: obj, Class: class}
	case p.match(token.NEW):
		name := p.consume(token.IDENT, "expected a class name after 'new'")
		p.consume(token.LPAREN, "expected '(' after class name")
		var args []ast.Expr
		if !p.check(token.RPAREN) {
			args = append(args, p.expression())
			for p.match(token.COMMA) {
				args = append(args, p.expression())
			}
		}
		p.consume(token.RPAREN, "expected ')' after constructor arguments")
		return &ast.NewExpr{Base: pos(tok), ClassName: name.Lexeme, Args: args}
	case p.check(token.LPAREN):
		return p.parenOrLambda()
	case p.match(token.IDENT):
		return &ast.Identifier{Base: pos(tok), Name: tok.Lexeme}
	default:
		p.error("expected an expression")
		return nil
	}
}

// parenOrLambda disambiguates `(expr)` from `(params) => body` by
// speculatively parsing a parameter list and rolling back on failure.
func (p *Parser) parenOrLambda() ast.Expr {
	start := p.idx
	tok := p.current()

	if params, ok := p.tryLambdaParams(); ok {
		body := p.expression()
		return &ast.LambdaExpr{Base: pos(tok), Params: params, Body: body}
	}

	p.idx = start
	p.consume(token.LPAREN, "expected '('")
	inner := p.expression()
	p.consume(token.RPAREN, "expected ')' after expression")
	return &ast.GroupExpr{Base: pos(tok), Inner: inner}
}

func (p *Parser) tryLambdaParams() (params []ast.Param, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	p.consume(token.LPAREN, "expected '('")
	if !p.check(token.RPAREN) {
		if !p.check(token.IDENT) {
			return nil, false
		}
		params = append(params, p.param())
		for p.match(token.COMMA) {
			if !p.check(token.IDENT) {
				return nil, false
			}
			params = append(params, p.param())
		}
	}
	if !p.check(token.RPAREN) {
		return nil, false
	}
	p.advance()
	if !p.check(token.FATARROW) {
		return nil, false
	}
	p.advance()
	return params, true
}

func (p *Parser) listLit(tok token.Token) ast.Expr {
	lit := &ast.ListLit{Base: pos(tok)}
	if !p.check(token.RBRACKET) {
		lit.Elements = append(lit.Elements, p.expression())
		for p.match(token.COMMA) {
			lit.Elements = append(lit.Elements, p.expression())
		}
	}
	p.consume(token.RBRACKET, "expected ']' after list elements")
	return lit
}

func (p *Parser) dictLit(tok token.Token) ast.Expr {
	lit := &ast.DictLit{Base: pos(tok)}
	if !p.check(token.RBRACE) {
		p.dictEntry(lit)
		for p.match(token.COMMA) {
			p.dictEntry(lit)
		}
	}
	p.consume(token.RBRACE, "expected '}' after dict entries")
	return lit
}

func (p *Parser) dictEntry(lit *ast.DictLit) {
	var key string
	switch {
	case p.check(token.IDENT):
		key = p.advance().Lexeme
	case p.check(token.STRING):
		key = p.advance().Literal
	default:
		p.error("expected a dict key")
	}
	if p.match(token.COLON) {
		lit.Keys = append(lit.Keys, key)
		lit.Values = append(lit.Values, p.expression())
		return
	}
	// `{name, age}` shorthand: value is the identifier looked up by that name.
	lit.Keys = append(lit.Keys, key)
	lit.Values = append(lit.Values, &ast.Identifier{Name: key})
}

// fstring re-lexes and re-parses each expression fragment captured by the
// lexer (spec §4.1); literal fragments are carried through verbatim.
func (p *Parser) fstring(tok token.Token) ast.Expr {
	fs := &ast.FString{Base: pos(tok)}
	for _, frag := range tok.Fragments {
		if !frag.IsExpr {
			fs.Parts = append(fs.Parts, ast.FStringPart{Literal: frag.Text})
			continue
		}
		toks, err := lexer.Scan(frag.Raw)
		if err != nil {
			panic(err)
		}
		sub := &Parser{toks: stripNewlines(toks)}
		expr := sub.expression()
		if !sub.atEnd() {
			sub.error("unexpected trailing tokens in f-string expression")
		}
		fs.Parts = append(fs.Parts, ast.FStringPart{Expr: expr})
	}
	return fs
}

func stripNewlines(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Type != token.NEWLINE {
			out = append(out, t)
		}
	}
	return out
}

func pos(t token.Token) ast.Base {
	return ast.Base{Line: t.Line, Col: t.Col}
}
