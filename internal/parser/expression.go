package parser

import (
	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/token"
)

// parseExpr is the entry point for expressions.
func (p *Parser) parseExpr() (ast.NodeID, bool) {
	return p.parseBinaryExpr(precAssignment)
}

// parseBinaryExpr is precedence climbing over op_table.go. Each iteration
// folds one operator at or above minPrec into the left operand; the right
// operand is parsed one level tighter, or at the same level for
// right-associative operators.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.NodeID, bool) {
	start := p.peek()
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoNodeID, false
	}

	for {
		op, isBinary := binaryOperator(p.peek().Kind)
		if !isBinary || op.prec < minPrec {
			return left, true
		}
		opTok := p.advance()

		nextMin := op.prec + 1
		if op.rightAssoc {
			nextMin = op.prec
		}
		right, ok := p.parseBinaryExpr(nextMin)
		if !ok {
			return ast.NoNodeID, false
		}
		left = p.node(op.kind, opTok.Text, start, left, right)
	}
}

// parseUnaryExpr := ('!' | '-') Unary | Postfix
func (p *Parser) parseUnaryExpr() (ast.NodeID, bool) {
	if !isUnaryOperator(p.peek().Kind) {
		return p.parsePostfixExpr()
	}
	opTok := p.advance()
	operand, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoNodeID, false
	}
	return p.node(ast.KindUnary, opTok.Text, opTok, operand), true
}

// parsePostfixExpr := Primary ('.' ID | '[' Expr ']' | '(' Args? ')')*
func (p *Parser) parsePostfixExpr() (ast.NodeID, bool) {
	start := p.peek()
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoNodeID, false
	}
	for {
		switch p.peek().Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident)
			if !ok {
				return ast.NoNodeID, false
			}
			expr = p.node(ast.KindMember, name.Text, start, expr)
		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return ast.NoNodeID, false
			}
			if _, ok := p.expect(token.RBracket); !ok {
				return ast.NoNodeID, false
			}
			expr = p.node(ast.KindIndex, "", start, expr, index)
		case token.LParen:
			args, ok := p.parseArgs()
			if !ok {
				return ast.NoNodeID, false
			}
			expr = p.node(ast.KindCall, "", start, append([]ast.NodeID{expr}, args...)...)
		default:
			return expr, true
		}
	}
}

// parseArgs := '(' (Expr (',' Expr)*)? ')'
func (p *Parser) parseArgs() ([]ast.NodeID, bool) {
	if _, ok := p.expect(token.LParen); !ok {
		return nil, false
	}
	var args []ast.NodeID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, false
	}
	return args, true
}

// parsePrimaryExpr := ID | INT | STRING | BOOL | 'null' | 'this'
//
//	| '(' Expr ')' | 'new' ID '(' Args? ')'
func (p *Parser) parsePrimaryExpr() (ast.NodeID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return p.node(ast.KindIdent, tok.Text, tok), true
	case token.IntLit:
		p.advance()
		return p.node(ast.KindIntLit, tok.Text, tok), true
	case token.StringLit:
		p.advance()
		return p.node(ast.KindStringLit, tok.Text, tok), true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.node(ast.KindBoolLit, tok.Text, tok), true
	case token.KwNull:
		p.advance()
		return p.node(ast.KindNullLit, "", tok), true
	case token.KwThis:
		p.advance()
		return p.node(ast.KindThis, "", tok), true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoNodeID, false
		}
		if _, ok := p.expect(token.RParen); !ok {
			return ast.NoNodeID, false
		}
		return p.node(ast.KindParen, "", tok, inner), true
	case token.KwNew:
		p.advance()
		class, ok := p.expect(token.Ident)
		if !ok {
			return ast.NoNodeID, false
		}
		args, ok := p.parseArgs()
		if !ok {
			return ast.NoNodeID, false
		}
		return p.node(ast.KindNew, class.Text, tok, args...), true
	default:
		p.fail(diag.SynExpectExpression, "expression")
		return ast.NoNodeID, false
	}
}
