package symbols

import (
	"decaf/internal/ast"
	"decaf/internal/source"
	"decaf/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVariable
	SymbolMethod
	SymbolClass
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolMethod:
		return "method"
	case SymbolClass:
		return "class"
	default:
		return "invalid"
	}
}

// Param is one declared method parameter.
type Param struct {
	Name string
	Type types.Type
}

// Symbol is a declared variable, method or class.
// For a method Type is the return type; for a class it is the class name.
type Symbol struct {
	Kind   SymbolKind
	Name   string
	Type   types.Type
	Params []Param
	Decl   ast.NodeID
	Span   source.Span
}

// ValueType is the type an identifier referring to s evaluates to.
func (s *Symbol) ValueType() types.Type {
	switch s.Kind {
	case SymbolVariable:
		return s.Type
	case SymbolMethod:
		return types.Function
	case SymbolClass:
		return types.Type(s.Name)
	default:
		return types.None
	}
}
