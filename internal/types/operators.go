package types

// FamilyMask describes broad categories of types an operator accepts.
type FamilyMask uint8

const (
	FamilyNone    FamilyMask = 0
	FamilyNumeric FamilyMask = 1 << iota
	FamilyString
	FamilyBool
	FamilyNull
	FamilyOther // void, function and class names
)

const FamilyAny = FamilyNumeric | FamilyString | FamilyBool | FamilyNull | FamilyOther

// FamilyOf classifies t; None belongs to no family.
func FamilyOf(t Type) FamilyMask {
	switch {
	case t == None:
		return FamilyNone
	case t.IsNumeric():
		return FamilyNumeric
	case t == String:
		return FamilyString
	case t == Bool:
		return FamilyBool
	case t == Null:
		return FamilyNull
	default:
		return FamilyOther
	}
}

// BinaryResult describes how to derive the result type for an operator.
type BinaryResult uint8

const (
	BinaryResultUnknown BinaryResult = iota
	BinaryResultBool
	BinaryResultNumeric // promoted numeric type
	BinaryResultString
)

// BinaryFlags annotate special handling for binary operators.
type BinaryFlags uint8

const (
	BinaryFlagNone     BinaryFlags = 0
	BinaryFlagSameType BinaryFlags = 1 << iota // operands must be the identical tag
)

// BinarySpec lists operand families and expected result for an operation.
type BinarySpec struct {
	Left   FamilyMask
	Right  FamilyMask
	Result BinaryResult
	Flags  BinaryFlags
}

// OpClass groups operators that share diagnostics and failure results.
type OpClass uint8

const (
	OpInvalid OpClass = iota
	OpArithmetic
	OpRelational
	OpEquality
	OpLogical
)

type binaryRule struct {
	class OpClass
	specs []BinarySpec
}

var (
	arithmetic = []BinarySpec{
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric},
	}
	addition = []BinarySpec{
		{Left: FamilyString, Right: FamilyAny, Result: BinaryResultString},
		{Left: FamilyAny, Right: FamilyString, Result: BinaryResultString},
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric},
	}
	relational = []BinarySpec{
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool},
		{Left: FamilyString, Right: FamilyString, Result: BinaryResultBool},
	}
	equality = []BinarySpec{
		{Left: FamilyAny, Right: FamilyAny, Result: BinaryResultBool, Flags: BinaryFlagSameType},
		{Left: FamilyNull, Right: FamilyAny, Result: BinaryResultBool},
		{Left: FamilyAny, Right: FamilyNull, Result: BinaryResultBool},
		{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool},
	}
	logical = []BinarySpec{
		{Left: FamilyBool, Right: FamilyBool, Result: BinaryResultBool},
	}
)

var binaryRules = map[string]binaryRule{
	"+":  {OpArithmetic, addition},
	"-":  {OpArithmetic, arithmetic},
	"*":  {OpArithmetic, arithmetic},
	"/":  {OpArithmetic, arithmetic},
	"%":  {OpArithmetic, arithmetic},
	"<":  {OpRelational, relational},
	"<=": {OpRelational, relational},
	">":  {OpRelational, relational},
	">=": {OpRelational, relational},
	"==": {OpEquality, equality},
	"!=": {OpEquality, equality},
	"&&": {OpLogical, logical},
	"||": {OpLogical, logical},
}

// ClassifyBinary returns the class of a binary operator spelling.
func ClassifyBinary(op string) OpClass {
	return binaryRules[op].class
}

// BinarySpecs returns operand rules for the given operator.
func BinarySpecs(op string) []BinarySpec {
	return binaryRules[op].specs
}

// CheckBinary applies op to operand types l and r, both known.
// On mismatch ok is false and result is the type the expression still has:
// bool for comparisons and logical operators, None for arithmetic.
func CheckBinary(op string, l, r Type) (result Type, ok bool) {
	specs := BinarySpecs(op)
	if len(specs) == 0 {
		return None, false
	}
	lf, rf := FamilyOf(l), FamilyOf(r)
	for _, spec := range specs {
		if spec.Left&lf == 0 || spec.Right&rf == 0 {
			continue
		}
		if spec.Flags&BinaryFlagSameType != 0 && l != r {
			continue
		}
		switch spec.Result {
		case BinaryResultBool:
			return Bool, true
		case BinaryResultNumeric:
			return Promote(l, r), true
		case BinaryResultString:
			return String, true
		}
	}
	if ClassifyBinary(op) == OpArithmetic {
		return None, false
	}
	return Bool, false
}

// UnarySpec describes operand expectations for unary operators.
type UnarySpec struct {
	Operand FamilyMask
	// SameAsOperand means the result type is the operand type, otherwise bool.
	SameAsOperand bool
}

var unarySpecTable = map[string]UnarySpec{
	"-": {Operand: FamilyNumeric, SameAsOperand: true},
	"!": {Operand: FamilyBool},
}

// UnarySpecFor returns operand/result hints for unary operators.
func UnarySpecFor(op string) (UnarySpec, bool) {
	spec, ok := unarySpecTable[op]
	return spec, ok
}

// CheckUnary applies op to a known operand type; mismatches yield None.
func CheckUnary(op string, operand Type) (Type, bool) {
	spec, ok := UnarySpecFor(op)
	if !ok || spec.Operand&FamilyOf(operand) == 0 {
		return None, false
	}
	if spec.SameAsOperand {
		return operand, true
	}
	return Bool, true
}
