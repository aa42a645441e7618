package parser

import (
	"decaf/internal/ast"
	"decaf/internal/token"
)

// Higher binds tighter.
const (
	precAssignment     = 1 // =
	precLogicalOr      = 2 // ||
	precLogicalAnd     = 3 // &&
	precEquality       = 4 // == !=
	precRelational     = 5 // < <= > >=
	precAdditive       = 6 // + -
	precMultiplicative = 7 // * / %
)

type binaryOp struct {
	prec       int
	rightAssoc bool
	kind       ast.Kind
}

// binaryOperator reports the precedence level of tok when it is a binary operator.
func binaryOperator(kind token.Kind) (binaryOp, bool) {
	switch kind {
	case token.Assign:
		return binaryOp{precAssignment, true, ast.KindAssign}, true
	case token.OrOr:
		return binaryOp{precLogicalOr, false, ast.KindLogicalOr}, true
	case token.AndAnd:
		return binaryOp{precLogicalAnd, false, ast.KindLogicalAnd}, true
	case token.EqEq, token.BangEq:
		return binaryOp{precEquality, false, ast.KindEquality}, true
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return binaryOp{precRelational, false, ast.KindRelational}, true
	case token.Plus, token.Minus:
		return binaryOp{precAdditive, false, ast.KindAdditive}, true
	case token.Star, token.Slash, token.Percent:
		return binaryOp{precMultiplicative, false, ast.KindMultiplicative}, true
	default:
		return binaryOp{}, false
	}
}

func isUnaryOperator(kind token.Kind) bool {
	return kind == token.Bang || kind == token.Minus
}

// isVarDeclStart reports whether a statement starting with kind is a variable declaration.
// 'void' is a valid Type but never starts a declaration.
func isVarDeclStart(kind token.Kind) bool {
	switch kind {
	case token.KwInt, token.KwBool, token.KwString:
		return true
	default:
		return false
	}
}
