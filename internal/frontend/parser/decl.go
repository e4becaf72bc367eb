package parser

import (
	"lumen/internal/diagnostics"
	"lumen/internal/frontend/ast"
	"lumen/internal/tokens"
	"lumen/internal/types"
)

// parseFunction parses: [pub] fn name(arg: type, ...) [: type] { ... }
func (p *Parser) parseFunction() *ast.Function {
	start := p.peek().Start()
	fn := &ast.Function{}

	if p.match(tokens.PUB_TOKEN) {
		p.advance()
		fn.Public = true
	}
	if _, ok := p.expect(tokens.FUNCTION_TOKEN); !ok {
		p.synchronize()
		return nil
	}

	name, ok := p.expectIdentifier("function name")
	if !ok {
		p.synchronize()
		return nil
	}
	fn.Name = name.Raw

	if _, ok := p.expect(tokens.OPEN_PAREN); !ok {
		p.synchronize()
		return nil
	}
	for !p.match(tokens.CLOSE_PAREN) && !p.isAtEnd() {
		arg, ok := p.parseArgument()
		if !ok {
			p.synchronize()
			return nil
		}
		fn.Arguments = append(fn.Arguments, arg)
		if !p.match(tokens.COMMA_TOKEN) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(tokens.CLOSE_PAREN); !ok {
		p.synchronize()
		return nil
	}

	if p.match(tokens.COLON_TOKEN) {
		p.advance()
		if fn.ReturnType = p.parseType(); fn.ReturnType == nil {
			p.synchronize()
			return nil
		}
	}

	body, ok := p.parseBlock()
	if !ok {
		p.synchronize()
		return nil
	}
	fn.Body = body
	fn.Location = p.makeLocation(start)
	return fn
}

// parseArgument parses: name [: type]
func (p *Parser) parseArgument() (ast.Argument, bool) {
	name, ok := p.expectIdentifier("argument name")
	if !ok {
		return ast.Argument{}, false
	}
	arg := ast.Argument{Name: name.Raw}
	if p.match(tokens.COLON_TOKEN) {
		p.advance()
		if arg.Type = p.parseType(); arg.Type == nil {
			return ast.Argument{}, false
		}
	}
	arg.Location = p.makeLocation(name.Start())
	return arg, true
}

// parseType parses: name [ "[" "]" ]
func (p *Parser) parseType() *types.Type {
	tok := p.peek()
	if tok.Kind != tokens.IDENTIFIER_TOKEN {
		p.diagnostics.Add(diagnostics.NewError("expected a type, found "+describe(tok)).
			WithCode(diagnostics.ErrInvalidType).
			WithPrimaryLabel(p.filepath, p.tokenLocation(tok), "not a type").
			WithHelp("types are int, bool, string, any, a struct name, or T[]"))
		return nil
	}
	p.advance()

	typ := types.FromName(tok.Raw)
	for p.match(tokens.OPEN_BRACKET) {
		p.advance()
		if _, ok := p.expect(tokens.CLOSE_BRACKET); !ok {
			return nil
		}
		typ = types.NewArray(typ)
	}
	return typ
}

func (p *Parser) expectIdentifier(what string) (tokens.Token, bool) {
	if p.match(tokens.IDENTIFIER_TOKEN) {
		return p.advance(), true
	}
	tok := p.peek()
	p.diagnostics.Add(diagnostics.NewError("expected "+what+", found "+describe(tok)).
		WithCode(diagnostics.ErrMissingIdentifier).
		WithPrimaryLabel(p.filepath, p.tokenLocation(tok), "expected an identifier"))
	return tok, false
}
