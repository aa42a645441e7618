package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001

	// Syntax
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectType       Code = 2002
	SynExpectExpression Code = 2003
	SynExpectIdentifier Code = 2004
	SynTrailingTokens   Code = 2005

	// Semantic
	SemaInfo              Code = 3000
	SemaTypeMismatch      Code = 3001
	SemaUndefinedVariable Code = 3002
	SemaUndefinedMethod   Code = 3003
	SemaNotAMethod        Code = 3004
	SemaArityMismatch     Code = 3005
	SemaInvalidOperands   Code = 3006
	SemaInvalidCondition  Code = 3007
	SemaReturnMismatch    Code = 3008
	SemaRedefinition      Code = 3009
	SemaUndefinedClass    Code = 3010

	// I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Project
	ProjInvalidManifest Code = 5001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		LexUnknownChar:        "Unexpected character",
		SynInfo:               "Syntax information",
		SynUnexpectedToken:    "Unexpected token",
		SynExpectType:         "Expected type",
		SynExpectExpression:   "Expected expression",
		SynExpectIdentifier:   "Expected identifier",
		SynTrailingTokens:     "Additional tokens after program",
		SemaInfo:              "Semantic information",
		SemaTypeMismatch:      "Incompatible assignment",
		SemaUndefinedVariable: "Undefined variable",
		SemaUndefinedMethod:   "Undefined method",
		SemaNotAMethod:        "Callee is not a method",
		SemaArityMismatch:     "Wrong number of arguments",
		SemaInvalidOperands:   "Invalid operand types",
		SemaInvalidCondition:  "Condition is not boolean",
		SemaReturnMismatch:    "Return type mismatch",
		SemaRedefinition:      "Name redefined in the same scope",
		SemaUndefinedClass:    "Undefined class",
		IOLoadFileError:       "Failed to load file",
		IOCacheError:          "Cache failure",
		ProjInvalidManifest:   "Invalid project manifest",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
