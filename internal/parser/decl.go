package parser

import (
	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/token"
)

// parseProgram := PackageDecl? (ClassDecl | FunctionDecl | Stmt)*
func (p *Parser) parseProgram() (ast.NodeID, bool) {
	start := p.peek()
	var items []ast.NodeID

	if p.at(token.KwPackage) {
		pkg, ok := p.parsePackageDecl()
		if !ok {
			return ast.NoNodeID, false
		}
		items = append(items, pkg)
	}

	for !p.at(token.EOF) {
		var (
			item ast.NodeID
			ok   bool
		)
		switch p.peek().Kind {
		case token.KwClass:
			item, ok = p.parseClassDecl()
		case token.KwFunc:
			item, ok = p.parseFuncDecl(false)
		default:
			item, ok = p.parseStmt()
		}
		if !ok {
			return ast.NoNodeID, false
		}
		items = append(items, item)
	}
	return p.node(ast.KindProgram, "", start, items...), true
}

// parsePackageDecl := 'package' ID ';'
func (p *Parser) parsePackageDecl() (ast.NodeID, bool) {
	start := p.advance()
	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.NoNodeID, false
	}
	if _, ok := p.expect(token.Semicolon); !ok {
		return ast.NoNodeID, false
	}
	return p.node(ast.KindPackageDecl, name.Text, start), true
}

// parseClassDecl := 'class' ID '{' MethodDecl* '}'
func (p *Parser) parseClassDecl() (ast.NodeID, bool) {
	start := p.advance()
	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.NoNodeID, false
	}
	if _, ok := p.expect(token.LBrace); !ok {
		return ast.NoNodeID, false
	}
	var methods []ast.NodeID
	for p.at(token.KwFunc) {
		m, ok := p.parseFuncDecl(true)
		if !ok {
			return ast.NoNodeID, false
		}
		methods = append(methods, m)
	}
	if _, ok := p.expect(token.RBrace); !ok {
		return ast.NoNodeID, false
	}
	return p.node(ast.KindClassDecl, name.Text, start, methods...), true
}

// parseFuncDecl handles both
//
//	FunctionDecl := 'func' ID '(' Params? ')' Type? MethodBody
//	MethodDecl   := 'func' ID '(' Params? ')' Type  MethodBody
//
// Only class members must spell a return type.
func (p *Parser) parseFuncDecl(isMethod bool) (ast.NodeID, bool) {
	start := p.advance()
	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.NoNodeID, false
	}
	params, ok := p.parseParams()
	if !ok {
		return ast.NoNodeID, false
	}

	ret := ast.NoNodeID
	if isMethod || p.peek().IsTypeKeyword() {
		if ret, ok = p.parseType(); !ok {
			return ast.NoNodeID, false
		}
	}

	body, ok := p.parseBody(ast.KindMethodBody)
	if !ok {
		return ast.NoNodeID, false
	}
	kind := ast.KindFuncDecl
	if isMethod {
		kind = ast.KindMethodDecl
	}
	return p.node(kind, name.Text, start, params, ret, body), true
}

// parseParams := '(' (Type ID (',' Type ID)*)? ')'
func (p *Parser) parseParams() (ast.NodeID, bool) {
	start, ok := p.expect(token.LParen)
	if !ok {
		return ast.NoNodeID, false
	}
	var params []ast.NodeID
	if !p.at(token.RParen) {
		for {
			param, ok := p.parseParam()
			if !ok {
				return ast.NoNodeID, false
			}
			params = append(params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen); !ok {
		return ast.NoNodeID, false
	}
	return p.node(ast.KindParamList, "", start, params...), true
}

func (p *Parser) parseParam() (ast.NodeID, bool) {
	start := p.peek()
	typ, ok := p.parseType()
	if !ok {
		return ast.NoNodeID, false
	}
	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.NoNodeID, false
	}
	return p.node(ast.KindParam, name.Text, start, typ), true
}

// parseType := 'int' | 'bool' | 'string' | 'void'
func (p *Parser) parseType() (ast.NodeID, bool) {
	if !p.peek().IsTypeKeyword() {
		p.fail(diag.SynExpectType, "type")
		return ast.NoNodeID, false
	}
	tok := p.advance()
	return p.node(ast.KindType, tok.Text, tok), true
}
