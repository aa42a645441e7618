package ast

// Kind is the closed set of syntax node tags.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Declarations
	KindProgram     // children: PackageDecl? then ClassDecl | FuncDecl | statement
	KindPackageDecl // value: package name
	KindClassDecl   // value: class name; children: MethodDecl*
	KindFuncDecl    // value: name; children: ParamList, Type|none, MethodBody
	KindMethodDecl  // value: name; children: ParamList, Type, MethodBody
	KindParamList   // children: Param*
	KindParam       // value: name; children: Type
	KindType        // value: int|bool|string|void
	KindMethodBody  // children: statements

	// Statements
	KindVarDecl    // value: name; children: Type, Expr|none
	KindIfStmt     // children: cond, then, else|none
	KindWhileStmt  // children: cond, body
	KindForStmt    // children: init|none, cond|none, update|none, body
	KindReturnStmt // children: Expr|none
	KindBlock      // children: statements
	KindExprStmt   // children: Expr

	// Expressions
	KindAssign         // value: "="; children: target, value
	KindLogicalOr      // value: operator; children: left, right
	KindLogicalAnd     // value: operator; children: left, right
	KindEquality       // value: operator; children: left, right
	KindRelational     // value: operator; children: left, right
	KindAdditive       // value: operator; children: left, right
	KindMultiplicative // value: operator; children: left, right
	KindUnary          // value: operator; children: operand
	KindMember         // value: member name; children: object
	KindIndex          // children: object, index
	KindCall           // children: callee, args...
	KindNew            // value: class name; children: args...
	KindParen          // children: inner
	KindIdent          // value: name
	KindIntLit         // value: digits
	KindStringLit      // value: lexeme with quotes
	KindBoolLit        // value: true|false
	KindNullLit
	KindThis
)

var kindNames = [...]string{
	KindInvalid:        "Invalid",
	KindProgram:        "Program",
	KindPackageDecl:    "PackageDecl",
	KindClassDecl:      "ClassDecl",
	KindFuncDecl:       "FunctionDecl",
	KindMethodDecl:     "MethodDecl",
	KindParamList:      "Params",
	KindParam:          "Param",
	KindType:           "Type",
	KindMethodBody:     "MethodBody",
	KindVarDecl:        "VarDecl",
	KindIfStmt:         "IfStmt",
	KindWhileStmt:      "WhileStmt",
	KindForStmt:        "ForStmt",
	KindReturnStmt:     "ReturnStmt",
	KindBlock:          "Block",
	KindExprStmt:       "ExprStmt",
	KindAssign:         "Assignment",
	KindLogicalOr:      "LogicalOr",
	KindLogicalAnd:     "LogicalAnd",
	KindEquality:       "Equality",
	KindRelational:     "Relational",
	KindAdditive:       "Additive",
	KindMultiplicative: "Multiplicative",
	KindUnary:          "Unary",
	KindMember:         "MemberAccess",
	KindIndex:          "IndexAccess",
	KindCall:           "MethodCall",
	KindNew:            "NewExpr",
	KindParen:          "ParenExpr",
	KindIdent:          "Identifier",
	KindIntLit:         "IntLiteral",
	KindStringLit:      "StringLiteral",
	KindBoolLit:        "BoolLiteral",
	KindNullLit:        "Null",
	KindThis:           "This",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsBinary reports whether k is one of the left-associative operator levels.
func (k Kind) IsBinary() bool {
	return k >= KindLogicalOr && k <= KindMultiplicative
}

// IsExpr reports whether k is an expression node.
func (k Kind) IsExpr() bool {
	return k >= KindAssign && k <= KindThis
}

// IsStmt reports whether k may appear in statement position.
func (k Kind) IsStmt() bool {
	return k >= KindVarDecl && k <= KindExprStmt
}
