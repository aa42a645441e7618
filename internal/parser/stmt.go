package parser

import (
	"decaf/internal/ast"
	"decaf/internal/token"
)

// parseStmt picks the production from the current token alone.
func (p *Parser) parseStmt() (ast.NodeID, bool) {
	kind := p.peek().Kind
	switch {
	case isVarDeclStart(kind):
		return p.parseVarDecl()
	case kind == token.KwIf:
		return p.parseIf()
	case kind == token.KwWhile:
		return p.parseWhile()
	case kind == token.KwFor:
		return p.parseFor()
	case kind == token.KwReturn:
		return p.parseReturn()
	case kind == token.LBrace:
		return p.parseBody(ast.KindBlock)
	default:
		return p.parseExprStmt()
	}
}

// parseBody := '{' Stmt* '}' producing a Block or a MethodBody.
func (p *Parser) parseBody(kind ast.Kind) (ast.NodeID, bool) {
	start, ok := p.expect(token.LBrace)
	if !ok {
		return ast.NoNodeID, false
	}
	var stmts []ast.NodeID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			return ast.NoNodeID, false
		}
		stmts = append(stmts, stmt)
	}
	if _, ok := p.expect(token.RBrace); !ok {
		return ast.NoNodeID, false
	}
	return p.node(kind, "", start, stmts...), true
}

// parseVarDecl := Type ID ('=' Expr)? ';'?
// The terminating semicolon is optional here and nowhere else.
func (p *Parser) parseVarDecl() (ast.NodeID, bool) {
	start := p.peek()
	typ, ok := p.parseType()
	if !ok {
		return ast.NoNodeID, false
	}
	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.NoNodeID, false
	}
	init := ast.NoNodeID
	if p.at(token.Assign) {
		p.advance()
		if init, ok = p.parseExpr(); !ok {
			return ast.NoNodeID, false
		}
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
	return p.node(ast.KindVarDecl, name.Text, start, typ, init), true
}

// parseCondition := '(' Expr ')'
func (p *Parser) parseCondition() (ast.NodeID, bool) {
	if _, ok := p.expect(token.LParen); !ok {
		return ast.NoNodeID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoNodeID, false
	}
	if _, ok := p.expect(token.RParen); !ok {
		return ast.NoNodeID, false
	}
	return cond, true
}

// parseIf := 'if' '(' Expr ')' Stmt ('else' Stmt)?
// A dangling else binds to the nearest if.
func (p *Parser) parseIf() (ast.NodeID, bool) {
	start := p.advance()
	cond, ok := p.parseCondition()
	if !ok {
		return ast.NoNodeID, false
	}
	then, ok := p.parseStmt()
	if !ok {
		return ast.NoNodeID, false
	}
	els := ast.NoNodeID
	if p.at(token.KwElse) {
		p.advance()
		if els, ok = p.parseStmt(); !ok {
			return ast.NoNodeID, false
		}
	}
	return p.node(ast.KindIfStmt, "", start, cond, then, els), true
}

// parseWhile := 'while' '(' Expr ')' Stmt
func (p *Parser) parseWhile() (ast.NodeID, bool) {
	start := p.advance()
	cond, ok := p.parseCondition()
	if !ok {
		return ast.NoNodeID, false
	}
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoNodeID, false
	}
	return p.node(ast.KindWhileStmt, "", start, cond, body), true
}

// parseFor := 'for' '(' Expr? ';' Expr? ';' Expr? ')' Stmt
func (p *Parser) parseFor() (ast.NodeID, bool) {
	start := p.advance()
	if _, ok := p.expect(token.LParen); !ok {
		return ast.NoNodeID, false
	}
	var clauses [3]ast.NodeID
	terminators := [3]token.Kind{token.Semicolon, token.Semicolon, token.RParen}
	for i, term := range terminators {
		if !p.at(term) {
			expr, ok := p.parseExpr()
			if !ok {
				return ast.NoNodeID, false
			}
			clauses[i] = expr
		}
		if _, ok := p.expect(term); !ok {
			return ast.NoNodeID, false
		}
	}
	body, ok := p.parseStmt()
	if !ok {
		return ast.NoNodeID, false
	}
	return p.node(ast.KindForStmt, "", start, clauses[0], clauses[1], clauses[2], body), true
}

// parseReturn := 'return' Expr? ';'
func (p *Parser) parseReturn() (ast.NodeID, bool) {
	start := p.advance()
	value := ast.NoNodeID
	if !p.at(token.Semicolon) {
		var ok bool
		if value, ok = p.parseExpr(); !ok {
			return ast.NoNodeID, false
		}
	}
	if _, ok := p.expect(token.Semicolon); !ok {
		return ast.NoNodeID, false
	}
	return p.node(ast.KindReturnStmt, "", start, value), true
}

// parseExprStmt := Expr ';'
func (p *Parser) parseExprStmt() (ast.NodeID, bool) {
	start := p.peek()
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoNodeID, false
	}
	if _, ok := p.expect(token.Semicolon); !ok {
		return ast.NoNodeID, false
	}
	return p.node(ast.KindExprStmt, "", start, expr), true
}
