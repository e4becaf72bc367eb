package parser

import (
	"strings"

	"lumen/internal/diagnostics"
	"lumen/internal/frontend/ast"
	"lumen/internal/tokens"
)

// parseBlock parses: { statement* }
func (p *Parser) parseBlock() (*ast.Block, bool) {
	open, ok := p.expect(tokens.OPEN_CURLY)
	if !ok {
		return nil, false
	}

	block := &ast.Block{Statements: []ast.Statement{}}
	for !p.match(tokens.CLOSE_CURLY) && !p.isAtEnd() {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	if _, ok := p.expect(tokens.CLOSE_CURLY); !ok {
		return nil, false
	}
	block.Location = p.makeLocation(open.Start())
	return block, true
}

func (p *Parser) parseStatement() ast.Statement {
	tok := p.peek()

	switch {
	case tok.Kind == tokens.OPEN_CURLY:
		block, ok := p.parseBlock()
		if !ok {
			return nil
		}
		return block

	case tok.Kind == tokens.RETURN_TOKEN:
		p.advance()
		ret := &ast.Return{}
		if p.startsExpression() {
			ret.Value = p.parseExpression()
		}
		p.skipSemicolon()
		ret.Location = p.makeLocation(tok.Start())
		return ret

	case tok.Kind == tokens.LET_TOKEN:
		return p.parseDeclare()

	case p.startsExpression():
		expr := p.parseExpression()
		p.skipSemicolon()
		return &ast.ExpressionStatement{Expr: expr, Location: p.makeLocation(tok.Start())}
	}

	p.advance()
	p.diagnostics.Add(diagnostics.NewError("expected a statement, found "+describe(tok)).
		WithCode(diagnostics.ErrInvalidStatement).
		WithPrimaryLabel(p.filepath, p.tokenLocation(tok), "not a statement"))
	return nil
}

// parseDeclare parses: let name [: type] [= expr] [;]
func (p *Parser) parseDeclare() ast.Statement {
	start := p.advance().Start()

	name, ok := p.expectIdentifier("variable name")
	if !ok {
		return nil
	}
	decl := &ast.Declare{Name: name.Raw}

	if p.match(tokens.COLON_TOKEN) {
		p.advance()
		if decl.Type = p.parseType(); decl.Type == nil {
			return nil
		}
	}
	if p.match(tokens.EQUALS_TOKEN) {
		p.advance()
		decl.Value = p.parseExpression()
	}
	p.skipSemicolon()

	decl.Location = p.makeLocation(start)
	return decl
}

func (p *Parser) skipSemicolon() {
	if p.match(tokens.SEMICOLON_TOKEN) {
		p.advance()
	}
}

func (p *Parser) startsExpression() bool {
	return p.match(tokens.INT_LITERAL, tokens.STRING_LITERAL, tokens.TRUE_TOKEN, tokens.FALSE_TOKEN, tokens.IDENTIFIER_TOKEN)
}

// parseExpression parses a literal or an identifier. It reports and
// returns nil for anything else.
func (p *Parser) parseExpression() ast.Expression {
	tok := p.peek()
	loc := p.tokenLocation(tok)

	switch tok.Kind {
	case tokens.INT_LITERAL:
		p.advance()
		return p.parseInt(tok)
	case tokens.STRING_LITERAL:
		p.advance()
		return &ast.StrLiteral{Value: p.unquote(tok), Location: *loc}
	case tokens.TRUE_TOKEN, tokens.FALSE_TOKEN:
		p.advance()
		return &ast.BoolLiteral{Value: tok.Kind == tokens.TRUE_TOKEN, Location: *loc}
	case tokens.IDENTIFIER_TOKEN:
		p.advance()
		return &ast.Identifier{Name: tok.Raw, Location: *loc}
	}

	p.diagnostics.Add(diagnostics.NewError("expected an expression, found "+describe(tok)).
		WithCode(diagnostics.ErrInvalidExpression).
		WithPrimaryLabel(p.filepath, loc, "not an expression"))
	return nil
}

// unquote strips the delimiters and resolves backslash escapes.
func (p *Parser) unquote(tok tokens.Token) string {
	raw := tok.Raw
	quote := raw[0]
	if !terminated(raw) {
		p.diagnostics.Add(diagnostics.NewError("unterminated string literal").
			WithCode(diagnostics.ErrInvalidExpression).
			WithPrimaryLabel(p.filepath, p.tokenLocation(tok), "string starts here").
			WithHelp("close the string with "+string(quote)))
		raw += string(quote)
	}

	body := raw[1 : len(raw)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}

// terminated reports whether raw ends in an unescaped copy of its opening quote.
func terminated(raw string) bool {
	quote := raw[0]
	for i := 1; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case quote:
			return i == len(raw)-1
		}
	}
	return false
}
