package lexer

import (
	"decaf/internal/token"
)

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: k,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// skipTrivia drops whitespace and // line comments, counting newlines.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); b {
		case '\n':
			lx.line++
			lx.cursor.Bump()
		case ' ', '\t', '\r', '\f', '\v':
			lx.cursor.Bump()
		case '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || b1 != '/' {
				return
			}
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

// scanIdentOrKeyword reads [A-Za-z_][A-Za-z0-9_]*. A keyword matches only as
// a whole word, so "integer" is an identifier.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}

// scanNumber reads a run of decimal digits.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.IntLit, start)
}

// scanString reads the shortest "..." on the current line; there are no escapes.
// An unterminated literal leaves the cursor on the opening quote.
func (lx *Lexer) scanString() (token.Token, bool) {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('"') {
		return token.Token{}, false
	}
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '"':
			return lx.emit(token.StringLit, start), true
		case '\n':
			lx.cursor.Reset(start)
			return token.Token{}, false
		}
	}
	lx.cursor.Reset(start)
	return token.Token{}, false
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

var singleByteOps = [256]token.Kind{
	'=': token.Assign,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'<': token.Lt,
	'>': token.Gt,
	'!': token.Bang,
	'.': token.Dot,
	':': token.Colon,
	'@': token.At,
	'?': token.Question,
	'{': token.LBrace,
	'}': token.RBrace,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	';': token.Semicolon,
	',': token.Comma,
}

// scanOperatorOrPunct tries two-byte operators before their one-byte prefixes.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()
	switch {
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start), true
	case lx.try2('!', '='):
		return lx.emit(token.BangEq, start), true
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start), true
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start), true
	case lx.try2('&', '&'):
		return lx.emit(token.AndAnd, start), true
	case lx.try2('|', '|'):
		return lx.emit(token.OrOr, start), true
	}

	k := singleByteOps[lx.cursor.Peek()]
	if k == token.Invalid {
		return token.Token{}, false
	}
	lx.cursor.Bump()
	return lx.emit(k, start), true
}
