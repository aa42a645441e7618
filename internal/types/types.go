// Package types defines the type tags of the language, the directional
// compatibility relation and the operator rules used by the checker.
package types

// Type is a type tag: one of the builtin names or a declared class name.
// None means no usable type could be inferred.
type Type string

const (
	None     Type = ""
	Int      Type = "int"
	Float    Type = "float"
	Double   Type = "double"
	String   Type = "string"
	Bool     Type = "bool"
	Void     Type = "void"
	Null     Type = "null"
	Function Type = "function"
)

// Known reports whether t carries a usable type.
func (t Type) Known() bool { return t != None }

// IsNumeric reports whether t is int, float or double.
func (t Type) IsNumeric() bool {
	switch t {
	case Int, Float, Double:
		return true
	default:
		return false
	}
}

// String renders None the way diagnostics print a missing type.
func (t Type) String() string {
	if t == None {
		return "None"
	}
	return string(t)
}

// FromName maps a spelled type name to its tag. The grammar only spells
// int, bool, string and void; float and double come from synthesized trees.
func FromName(name string) Type {
	switch Type(name) {
	case Int, Float, Double, Bool, String, Void:
		return Type(name)
	default:
		return None
	}
}
