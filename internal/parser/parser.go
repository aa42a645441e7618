package parser

import (
	"decaf/internal/ast"
	"decaf/internal/diag"
	"decaf/internal/lexer"
	"decaf/internal/source"
	"decaf/internal/token"
)

type Options struct {
	// Reporter receives the syntax diagnostic; may be nil.
	Reporter diag.Reporter
}

// Parser holds the state of one parse over a fully materialised token slice.
type Parser struct {
	toks     []token.Token
	pos      int
	builder  *ast.Builder
	opts     Options
	lastSpan source.Span
	err      *SyntaxError
}

// New prepares a parser. A missing trailing EOF token is synthesised.
func New(toks []token.Token, opts Options) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		eof := token.Token{Kind: token.EOF}
		if len(toks) > 0 {
			last := toks[len(toks)-1]
			eof.Span = source.Span{File: last.Span.File, Start: last.Span.End, End: last.Span.End}
			eof.Line = last.Line
		}
		toks = append(toks[:len(toks):len(toks)], eof)
	}
	return &Parser{
		toks:    toks,
		builder: ast.NewBuilder(uint(len(toks))),
		opts:    opts,
	}
}

// ParseTokens parses a whole program.
func ParseTokens(toks []token.Token, opts Options) (*ast.Tree, error) {
	return New(toks, opts).ParseProgram()
}

// ParseExpression parses a single expression that must span the whole input.
func ParseExpression(toks []token.Token, opts Options) (*ast.Tree, error) {
	return New(toks, opts).ParseExpression()
}

// ParseFile tokenizes and parses file. The error is a *lexer.Error or a *SyntaxError.
func ParseFile(file *source.File, opts Options) (*ast.Tree, error) {
	toks, err := lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter})
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks, opts)
}

// ParseProgram runs the Program production and requires every token to be consumed.
func (p *Parser) ParseProgram() (*ast.Tree, error) {
	root, ok := p.parseProgram()
	if ok {
		ok = p.expectEnd()
	}
	if !ok {
		return nil, p.err
	}
	return p.builder.Finish(root), nil
}

// ParseExpression runs the Expr production and requires every token to be consumed.
func (p *Parser) ParseExpression() (*ast.Tree, error) {
	root, ok := p.parseExpr()
	if ok {
		ok = p.expectEnd()
	}
	if !ok {
		return nil, p.err
	}
	return p.builder.Finish(root), nil
}

// Remaining returns the tokens not consumed yet, excluding the final EOF.
func (p *Parser) Remaining() []token.Token {
	if p.pos >= len(p.toks)-1 {
		return nil
	}
	return p.toks[p.pos : len(p.toks)-1]
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.toks[p.pos].Kind == k
}

// advance consumes the current token; EOF is never consumed.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

// expect consumes a token of kind k or records a syntax error.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.fail(diag.SynUnexpectedToken, k.String())
	return token.Token{}, false
}

// expectEnd requires the cursor to sit on the EOF that ends the stream.
func (p *Parser) expectEnd() bool {
	if len(p.Remaining()) == 0 {
		return true
	}
	if p.at(token.EOF) {
		// an early EOF inside the slice; report what follows it
		p.pos++
	}
	p.fail(diag.SynTrailingTokens, token.EOF.String())
	return false
}

// fail records the first syntax error; later calls keep the first one.
func (p *Parser) fail(code diag.Code, expected string) {
	if p.err != nil {
		return
	}
	found := p.peek()
	lo := max(0, p.pos-contextRadius)
	hi := min(len(p.toks), p.pos+contextRadius+1)
	ctx := make([]token.Token, hi-lo)
	copy(ctx, p.toks[lo:hi])

	p.err = &SyntaxError{
		Code:     code,
		Line:     found.Line,
		Span:     found.Span,
		Expected: expected,
		Found:    found,
		Context:  ctx,
		Focus:    p.pos - lo,
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, found.Span, p.err.Message(), nil)
	}
}

// node allocates a node spanning from start to the last consumed token.
func (p *Parser) node(kind ast.Kind, value string, start token.Token, children ...ast.NodeID) ast.NodeID {
	sp := start.Span.Cover(p.lastSpan)
	return p.builder.New(kind, value, sp, start.Line, children...)
}
