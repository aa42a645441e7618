package types

// widening lists, per source type, every target a value may be stored into.
var widening = map[Type][]Type{
	Int:    {Int, Float, Double},
	Float:  {Float, Double},
	Double: {Double},
	String: {String},
	Bool:   {Bool},
	Void:   {},
	Null:   {},
}

// Assignable reports whether a value of type src may be used where dst is
// expected. The relation is directional: int widens to double, never back.
// null goes only into string, the sole reference type.
func Assignable(src, dst Type) bool {
	if src == dst {
		return true
	}
	if src == Null {
		return dst == String
	}
	for _, t := range widening[src] {
		if t == dst {
			return true
		}
	}
	return false
}

// Promote returns the wider of two numeric types, or None if either is not numeric.
func Promote(a, b Type) Type {
	switch {
	case !a.IsNumeric() || !b.IsNumeric():
		return None
	case a == Double || b == Double:
		return Double
	case a == Float || b == Float:
		return Float
	default:
		return Int
	}
}
