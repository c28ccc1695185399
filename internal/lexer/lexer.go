// Package lexer turns Volt source text into a token stream. Grounded on the
// teacher's Scanner (sam-decook-lox/codecrafters/cmd/lexer.go): a hand-rolled
// single-pass scanner walking the source with next()/peek(), generalized from
// bytes to runes so Volt's code-point-indexed strings (spec §3) and its
// f-string interpolation (spec §4.1) both work correctly over non-ASCII text.
package lexer

import (
	"fmt"
	"strings"

	"github.com/voltlang/volt/internal/token"
	"github.com/voltlang/volt/internal/volterr"
)

type Lexer struct {
	src  []rune
	idx  int // index of the current rune; -1 before the first next()
	line int
	col  int
}

func New(src string) *Lexer {
	return &Lexer{src: []rune(src), idx: -1, line: 1, col: 0}
}

func (l *Lexer) cur() rune {
	if l.idx < 0 || l.idx >= len(l.src) {
		return 0
	}
	return l.src[l.idx]
}

func (l *Lexer) next() bool {
	if l.idx >= len(l.src)-1 {
		l.idx = len(l.src)
		return false
	}
	l.idx++
	if l.src[l.idx] == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return true
}

func (l *Lexer) peek() rune {
	if l.idx+1 >= len(l.src) {
		return 0
	}
	return l.src[l.idx+1]
}

func (l *Lexer) peek2() rune {
	if l.idx+2 >= len(l.src) {
		return 0
	}
	return l.src[l.idx+2]
}

// Scan tokenizes the entire source, returning a SyntaxError on the first
// lexical failure (unterminated string or an unexpected character). An
// unterminated f-string or an unbalanced brace inside one is not reported.
func Scan(src string) ([]token.Token, error) {
	l := New(src)
	return l.scan()
}

func (l *Lexer) scan() ([]token.Token, error) {
	var toks []token.Token

	for l.next() {
		ch := l.cur()
		line, col := l.line, l.col

		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			// skip
		case ch == '\n':
			toks = append(toks, token.Token{Type: token.NEWLINE, Lexeme: "\\n", Line: line, Col: col})
		case ch == ';':
			// ';' is an explicit statement separator, equivalent to a
			// newline; the parser discards both uniformly.
			toks = append(toks, token.Token{Type: token.NEWLINE, Lexeme: ";", Line: line, Col: col})
		case ch == '-' && l.peek() == '-':
			l.skipLineComment()
		case ch == '(':
			toks = append(toks, l.simple(token.LPAREN, "("))
		case ch == ')':
			toks = append(toks, l.simple(token.RPAREN, ")"))
		case ch == '{':
			toks = append(toks, l.simple(token.LBRACE, "{"))
		case ch == '}':
			toks = append(toks, l.simple(token.RBRACE, "}"))
		case ch == '[':
			toks = append(toks, l.simple(token.LBRACKET, "["))
		case ch == ']':
			toks = append(toks, l.simple(token.RBRACKET, "]"))
		case ch == ',':
			toks = append(toks, l.simple(token.COMMA, ","))
		case ch == '.':
			toks = append(toks, l.simple(token.DOT, "."))
		case ch == ':':
			toks = append(toks, l.simple(token.COLON, ":"))
		case ch == '+':
			toks = append(toks, l.simple(token.PLUS, "+"))
		case ch == '-':
			toks = append(toks, l.simple(token.MINUS, "-"))
		case ch == '*':
			toks = append(toks, l.simple(token.STAR, "*"))
		case ch == '%':
			toks = append(toks, l.simple(token.PERCENT, "%"))
		case ch == '/':
			toks = append(toks, l.simple(token.SLASH, "/"))
		case ch == '=':
			if l.peek() == '=' {
				l.next()
				toks = append(toks, token.Token{Type: token.EQ, Lexeme: "==", Line: line, Col: col})
			} else if l.peek() == '>' {
				l.next()
				toks = append(toks, token.Token{Type: token.FATARROW, Lexeme: "=>", Line: line, Col: col})
			} else {
				toks = append(toks, token.Token{Type: token.ASSIGN, Lexeme: "=", Line: line, Col: col})
			}
		case ch == '!':
			if l.peek() == '=' {
				l.next()
				toks = append(toks, token.Token{Type: token.NEQ, Lexeme: "!=", Line: line, Col: col})
			} else {
				toks = append(toks, token.Token{Type: token.NOT, Lexeme: "!", Line: line, Col: col})
			}
		case ch == '<':
			if l.peek() == '=' {
				l.next()
				toks = append(toks, token.Token{Type: token.LE, Lexeme: "<=", Line: line, Col: col})
			} else {
				toks = append(toks, token.Token{Type: token.LT, Lexeme: "<", Line: line, Col: col})
			}
		case ch == '>':
			if l.peek() == '=' {
				l.next()
				toks = append(toks, token.Token{Type: token.GE, Lexeme: ">=", Line: line, Col: col})
			} else {
				toks = append(toks, token.Token{Type: token.GT, Lexeme: ">", Line: line, Col: col})
			}
		case ch == '&' && l.peek() == '&':
			l.next()
			toks = append(toks, token.Token{Type: token.AND, Lexeme: "&&", Line: line, Col: col})
		case ch == '|' && l.peek() == '|':
			l.next()
			toks = append(toks, token.Token{Type: token.OR, Lexeme: "||", Line: line, Col: col})
		case ch == '"':
			tok, err := l.stringLiteral(line, col)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case isDigit(ch):
			toks = append(toks, l.numberLiteral(line, col))
		case isAlpha(ch):
			toks = append(toks, l.identifier(line, col))
		default:
			return nil, volterr.NewAt(volterr.SyntaxError, line, col, "unexpected character: %q", string(ch))
		}
	}

	toks = append(toks, token.Token{Type: token.EOF, Line: l.line, Col: l.col})
	return toks, nil
}

func (l *Lexer) simple(typ token.Type, lexeme string) token.Token {
	line, col := l.line, l.col
	// '-' doubles as the start of '->'
	if typ == token.MINUS && l.peek() == '>' {
		l.next()
		return token.Token{Type: token.ARROW, Lexeme: "->", Line: line, Col: col}
	}
	return token.Token{Type: typ, Lexeme: lexeme, Line: line, Col: col}
}

func (l *Lexer) skipLineComment() {
	for l.peek() != 0 && l.peek() != '\n' {
		l.next()
	}
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isAlpha(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch > 127
}

func isAlphaNumeric(ch rune) bool { return isAlpha(ch) || isDigit(ch) }

func (l *Lexer) identifier(line, col int) token.Token {
	start := l.idx
	for isAlphaNumeric(l.peek()) {
		l.next()
	}
	word := string(l.src[start : l.idx+1])

	if word == "f" && l.peek() == '"' {
		l.next() // consume opening quote
		return l.fstring(line, col)
	}

	if typ, ok := token.Keywords[word]; ok {
		return token.Token{Type: typ, Lexeme: word, Line: line, Col: col}
	}
	return token.Token{Type: token.IDENT, Lexeme: word, Line: line, Col: col}
}

func (l *Lexer) numberLiteral(line, col int) token.Token {
	start := l.idx
	for isDigit(l.peek()) {
		l.next()
	}
	isFloat := false
	if l.peek() == '.' && isDigit(l.peek2()) {
		isFloat = true
		l.next()
		for isDigit(l.peek()) {
			l.next()
		}
	}
	lexeme := string(l.src[start : l.idx+1])
	typ := token.INT
	if isFloat {
		typ = token.FLOAT
	}
	return token.Token{Type: typ, Lexeme: lexeme, Literal: lexeme, Line: line, Col: col}
}

// stringLiteral scans a double-quoted string, honoring \n \t \" \\ escapes.
func (l *Lexer) stringLiteral(line, col int) (token.Token, error) {
	var sb strings.Builder
	for {
		if !l.next() {
			return token.Token{}, volterr.NewAt(volterr.SyntaxError, line, col, "unterminated string")
		}
		if l.cur() == '"' {
			break
		}
		if l.cur() == '\\' {
			if !l.next() {
				return token.Token{}, volterr.NewAt(volterr.SyntaxError, line, col, "unterminated string")
			}
			switch l.cur() {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteRune(l.cur())
			}
			continue
		}
		sb.WriteRune(l.cur())
	}
	return token.Token{Type: token.STRING, Lexeme: sb.String(), Literal: sb.String(), Line: line, Col: col}, nil
}

// fstring scans an f-string body after the opening `f"` has been consumed,
// splitting it into literal/expression fragments per spec §4.1. `{{` and
// `}}` are literal braces; other `{...}` spans are captured as raw
// expression source to be parsed later by the parser package (which imports
// this lexer recursively for nested fragments, avoiding a lexer->parser
// import cycle by keeping fragment re-lexing inside the parser).
func (l *Lexer) fstring(line, col int) token.Token {
	var frags []token.FStringFragment
	var lit strings.Builder
	flushLit := func() {
		if lit.Len() > 0 {
			frags = append(frags, token.FStringFragment{Text: lit.String()})
			lit.Reset()
		}
	}

	for {
		if !l.next() {
			break // unterminated: the fragments read so far become the token, with no error
		}
		ch := l.cur()
		switch {
		case ch == '"':
			flushLit()
			return token.Token{Type: token.FSTRING, Fragments: frags, Line: line, Col: col, Lexeme: `f"..."`}
		case ch == '{' && l.peek() == '{':
			l.next()
			lit.WriteByte('{')
		case ch == '}' && l.peek() == '}':
			l.next()
			lit.WriteByte('}')
		case ch == '{':
			flushLit()
			exprLine := l.line
			depth := 1
			var raw strings.Builder
			for depth > 0 {
				if !l.next() {
					break
				}
				if l.cur() == '{' {
					depth++
				} else if l.cur() == '}' {
					depth--
					if depth == 0 {
						break
					}
				}
				raw.WriteRune(l.cur())
			}
			frags = append(frags, token.FStringFragment{IsExpr: true, Raw: raw.String(), Line: exprLine})
		case ch == '\\':
			if l.next() {
				switch l.cur() {
				case 'n':
					lit.WriteByte('\n')
				case 't':
					lit.WriteByte('\t')
				case '"':
					lit.WriteByte('"')
				case '\\':
					lit.WriteByte('\\')
				default:
					lit.WriteRune(l.cur())
				}
			}
		default:
			lit.WriteRune(ch)
		}
	}

	flushLit()
	return token.Token{Type: token.FSTRING, Fragments: frags, Line: line, Col: col, Lexeme: fmt.Sprintf("f%q", lit.String())}
}
