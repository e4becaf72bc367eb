package parser

import (
	"fmt"

	"lumen/internal/diagnostics"
	"lumen/internal/frontend/ast"
	"lumen/internal/source"
	"lumen/internal/tokens"
	"lumen/internal/utils/numeric"
)

// endOfFile is the kind peek reports once the stream is exhausted.
const endOfFile tokens.TOKEN = "end of file"

// Parser holds temporary state during parsing of a single file.
type Parser struct {
	tokens      []tokens.Token // trivia removed
	current     int
	diagnostics *diagnostics.DiagnosticBag
	filepath    string
}

// Parse builds a module from the lexer's output. Problems are reported to
// diag; the returned module holds every function that parsed cleanly.
func Parse(toks []tokens.Token, filepath string, diag *diagnostics.DiagnosticBag) *ast.Module {
	parser := &Parser{
		tokens:      make([]tokens.Token, 0, len(toks)),
		diagnostics: diag,
		filepath:    filepath,
	}

	for _, tok := range toks {
		switch {
		case tok.Kind == tokens.UNKNOWN_TOKEN:
			diag.Add(diagnostics.UnrecognizedCharacter(filepath, parser.tokenLocation(tok), tok.Raw))
		case tok.Kind.IsTrivia():
		default:
			parser.tokens = append(parser.tokens, tok)
		}
	}

	return parser.parseModule()
}

func (p *Parser) parseModule() *ast.Module {
	module := &ast.Module{
		FullPath:  p.filepath,
		Functions: []*ast.Function{},
	}
	if len(p.tokens) > 0 {
		module.Location = *source.NewLocation(p.filepath, p.tokens[0].Start(), p.tokens[len(p.tokens)-1].Pos)
	}

	for !p.isAtEnd() {
		if !p.match(tokens.PUB_TOKEN, tokens.FUNCTION_TOKEN) {
			tok := p.advance()
			p.diagnostics.Add(diagnostics.UnexpectedToken(p.filepath, p.tokenLocation(tok), describe(tok), "module").
				WithHelp("only function definitions are allowed at the top level"))
			p.synchronize()
			continue
		}
		if fn := p.parseFunction(); fn != nil {
			module.Functions = append(module.Functions, fn)
		}
	}

	return module
}

// synchronize skips ahead to the next token that can start a function.
func (p *Parser) synchronize() {
	for !p.isAtEnd() && !p.match(tokens.PUB_TOKEN, tokens.FUNCTION_TOKEN) {
		p.advance()
	}
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

func (p *Parser) peek() tokens.Token {
	if p.isAtEnd() {
		eof := tokens.Token{Kind: endOfFile}
		if len(p.tokens) > 0 {
			eof.Pos = p.tokens[len(p.tokens)-1].Pos
		}
		return eof
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() tokens.Token {
	if p.current == 0 {
		return p.peek()
	}
	return p.tokens[p.current-1]
}

func (p *Parser) advance() tokens.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	for _, kind := range kinds {
		if p.peek().Kind == kind {
			return true
		}
	}
	return false
}

// expect consumes a token of the given kind or reports what was found instead.
func (p *Parser) expect(kind tokens.TOKEN) (tokens.Token, bool) {
	if p.match(kind) {
		return p.advance(), true
	}
	tok := p.peek()
	p.diagnostics.Add(diagnostics.ExpectedToken(p.filepath, p.tokenLocation(tok), fmt.Sprintf("'%s'", kind), describe(tok)))
	return tok, false
}

func (p *Parser) tokenLocation(tok tokens.Token) *source.Location {
	return source.NewLocation(p.filepath, tok.Start(), tok.Pos)
}

func (p *Parser) makeLocation(start source.Position) source.Location {
	return *source.NewLocation(p.filepath, start, p.previous().Pos)
}

// describe renders a token for messages: 'fn', identifier 'main', end of file.
func describe(tok tokens.Token) string {
	switch {
	case tok.Kind == endOfFile:
		return string(endOfFile)
	case tok.Raw == string(tok.Kind):
		return fmt.Sprintf("'%s'", tok.Raw)
	default:
		return fmt.Sprintf("%s '%s'", tok.Kind, tok.Raw)
	}
}

func (p *Parser) parseInt(tok tokens.Token) *ast.IntLiteral {
	value, err := numeric.StringToInteger(tok.Raw)
	switch {
	case err != nil:
		p.diagnostics.Add(diagnostics.InvalidNumber(p.filepath, p.tokenLocation(tok), tok.Raw, err))
	case !numeric.FitsInBitSize(value, 32, true) && !numeric.FitsInBitSize(value, 32, false):
		p.diagnostics.Add(diagnostics.IntegerTruncated(p.filepath, p.tokenLocation(tok), tok.Raw))
	}
	return &ast.IntLiteral{Value: value, Location: *p.tokenLocation(tok)}
}
