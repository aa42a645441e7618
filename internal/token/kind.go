package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	KwPackage // package
	KwFunc    // func
	KwInt     // int
	KwString  // string
	KwBool    // bool
	KwReturn  // return
	KwIf      // if
	KwElse    // else
	KwWhile   // while
	KwFor     // for
	KwClass   // class
	KwNew     // new
	KwTrue    // true
	KwFalse   // false
	KwNull    // null
	KwThis    // this
	KwVoid    // void

	// IntLit is a decimal integer literal.
	IntLit
	// StringLit is a double-quoted string literal.
	StringLit

	EqEq      // ==
	BangEq    // !=
	LtEq      // <=
	GtEq      // >=
	AndAnd    // &&
	OrOr      // ||
	Assign    // =
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Lt        // <
	Gt        // >
	Bang      // !
	Dot       // .
	Colon     // :
	At        // @
	Question  // ?
	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Semicolon // ;
	Comma     // ,
)

var kindNames = [...]string{
	Invalid:   "invalid",
	EOF:       "end of input",
	Ident:     "identifier",
	KwPackage: "'package'",
	KwFunc:    "'func'",
	KwInt:     "'int'",
	KwString:  "'string'",
	KwBool:    "'bool'",
	KwReturn:  "'return'",
	KwIf:      "'if'",
	KwElse:    "'else'",
	KwWhile:   "'while'",
	KwFor:     "'for'",
	KwClass:   "'class'",
	KwNew:     "'new'",
	KwTrue:    "'true'",
	KwFalse:   "'false'",
	KwNull:    "'null'",
	KwThis:    "'this'",
	KwVoid:    "'void'",
	IntLit:    "integer literal",
	StringLit: "string literal",
	EqEq:      "'=='",
	BangEq:    "'!='",
	LtEq:      "'<='",
	GtEq:      "'>='",
	AndAnd:    "'&&'",
	OrOr:      "'||'",
	Assign:    "'='",
	Plus:      "'+'",
	Minus:     "'-'",
	Star:      "'*'",
	Slash:     "'/'",
	Percent:   "'%'",
	Lt:        "'<'",
	Gt:        "'>'",
	Bang:      "'!'",
	Dot:       "'.'",
	Colon:     "':'",
	At:        "'@'",
	Question:  "'?'",
	LBrace:    "'{'",
	RBrace:    "'}'",
	LParen:    "'('",
	RParen:    "')'",
	LBracket:  "'['",
	RBracket:  "']'",
	Semicolon: "';'",
	Comma:     "','",
}

// String returns a human readable description used in syntax errors.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}
