package token

import (
	"decaf/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Line uint32
}

// IsLiteral reports whether the token is an integer, string, boolean or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsTypeKeyword reports whether the token can start a Type production.
func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case KwInt, KwBool, KwString, KwVoid:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwPackage && t.Kind <= KwVoid
}

// IsPunctOrOp reports whether the token is an operator or punctuation.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= EqEq && t.Kind <= Comma
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Category names the token class shown by token dumps. true, false and null
// count as literals.
func (t Token) Category() string {
	switch {
	case t.IsLiteral():
		return "literal"
	case t.IsKeyword():
		return "keyword"
	case t.IsIdent():
		return "identifier"
	case t.IsPunctOrOp():
		return "operator"
	case t.Kind == EOF:
		return "eof"
	default:
		return "invalid"
	}
}

// String renders the token for messages: `identifier 'x'`, `integer literal '7'`,
// or just the quoted spelling for keywords and punctuation.
func (t Token) String() string {
	switch t.Kind {
	case Ident, IntLit, StringLit, Invalid:
		return t.Kind.String() + " '" + t.Text + "'"
	default:
		return t.Kind.String()
	}
}
