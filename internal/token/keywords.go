package token

var keywords = map[string]Kind{
	"package": KwPackage,
	"func":    KwFunc,
	"int":     KwInt,
	"string":  KwString,
	"bool":    KwBool,
	"return":  KwReturn,
	"if":      KwIf,
	"else":    KwElse,
	"while":   KwWhile,
	"for":     KwFor,
	"class":   KwClass,
	"new":     KwNew,
	"true":    KwTrue,
	"false":   KwFalse,
	"null":    KwNull,
	"this":    KwThis,
	"void":    KwVoid,
}

// LookupKeyword returns the keyword kind for ident.
// Keywords are case sensitive; only the lowercase spelling is recognised.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
