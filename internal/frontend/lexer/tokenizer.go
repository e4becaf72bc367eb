package lexer

import (
	"os"
	"regexp"
	"unicode/utf8"

	"lumen/internal/source"
	"lumen/internal/tokens"
)

type regexHandler func(lex *Lexer, regex *regexp.Regexp)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

type Lexer struct {
	Tokens     []tokens.Token
	Position   source.Position
	sourceCode string
	cursor     int
	patterns   []regexPattern
	FilePath   string
}

// advance consumes match, stepping the position once per character.
func (lex *Lexer) advance(match string) {
	for i, r := range match {
		lex.Position.Step(lex.cursor+i, r)
	}
	lex.cursor += len(match)
}

func (lex *Lexer) push(token tokens.Token) {
	lex.Tokens = append(lex.Tokens, token)
}

func (lex *Lexer) remainder() string {
	return lex.sourceCode[lex.cursor:]
}

func (lex *Lexer) atEOF() bool {
	return lex.cursor >= len(lex.sourceCode)
}

func New(filepath, content string) *Lexer {
	//create the lexer
	lex := &Lexer{
		sourceCode: content,
		Tokens:     make([]tokens.Token, 0),
		Position:   source.Start(),
		FilePath:   filepath,

		patterns: []regexPattern{
			{regexp.MustCompile(`^\n`), defaultHandler(tokens.CARRIAGE_RETURN_TOKEN)},
			{regexp.MustCompile(`^\r`), defaultHandler(tokens.CARRIAGE_RETURN_TOKEN)},
			{regexp.MustCompile(`^\t`), defaultHandler(tokens.TAB_TOKEN)},
			{regexp.MustCompile(`^[ \f\v\p{Z}]`), defaultHandler(tokens.WHITESPACE_TOKEN)},
			{regexp.MustCompile(`^//[^\r\n]*`), defaultHandler(tokens.COMMENT_TOKEN)},            // line comments
			{regexp.MustCompile(`(?s)^"(?:[^"\\]|\\.)*"?`), defaultHandler(tokens.STRING_LITERAL)}, // "..." may hold '
			{regexp.MustCompile(`(?s)^'(?:[^'\\]|\\.)*'?`), defaultHandler(tokens.STRING_LITERAL)}, // '...' may hold "
			{regexp.MustCompile(`^0[bB][01][01_]*`), defaultHandler(tokens.INT_LITERAL)},
			{regexp.MustCompile(`^0[oO][0-7][0-7_]*`), defaultHandler(tokens.INT_LITERAL)},
			{regexp.MustCompile(`^0[xX][0-9a-fA-F][0-9a-fA-F_]*`), defaultHandler(tokens.INT_LITERAL)},
			{regexp.MustCompile(`^[0-9][0-9_]*`), defaultHandler(tokens.INT_LITERAL)},
			{regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*`), identifierHandler}, // identifiers
			{regexp.MustCompile(`^\->`), defaultHandler(tokens.ARROW_TOKEN)},
			{regexp.MustCompile(`^=>`), defaultHandler(tokens.FAT_ARROW_TOKEN)},
			{regexp.MustCompile(`^!=`), defaultHandler(tokens.NOT_EQUAL_TOKEN)},
			{regexp.MustCompile(`^\+=`), defaultHandler(tokens.PLUS_EQUALS_TOKEN)},
			{regexp.MustCompile(`^-=`), defaultHandler(tokens.MINUS_EQUALS_TOKEN)},
			{regexp.MustCompile(`^\*=`), defaultHandler(tokens.MUL_EQUALS_TOKEN)},
			{regexp.MustCompile(`^/=`), defaultHandler(tokens.DIV_EQUALS_TOKEN)},
			{regexp.MustCompile(`^\.\.`), defaultHandler(tokens.RANGE_TOKEN)},
			{regexp.MustCompile(`^&&`), defaultHandler(tokens.AND_TOKEN)},
			{regexp.MustCompile(`^\|\|`), defaultHandler(tokens.OR_TOKEN)},
			{regexp.MustCompile(`^&`), defaultHandler(tokens.BIT_AND_TOKEN)},
			{regexp.MustCompile(`^\|`), defaultHandler(tokens.BIT_OR_TOKEN)},
			{regexp.MustCompile(`^!`), defaultHandler(tokens.NOT_TOKEN)},
			{regexp.MustCompile(`^\-`), defaultHandler(tokens.MINUS_TOKEN)},
			{regexp.MustCompile(`^\+`), defaultHandler(tokens.PLUS_TOKEN)},
			{regexp.MustCompile(`^\*`), defaultHandler(tokens.MUL_TOKEN)},
			{regexp.MustCompile(`^/`), defaultHandler(tokens.DIV_TOKEN)},
			{regexp.MustCompile(`^%`), defaultHandler(tokens.MOD_TOKEN)},
			{regexp.MustCompile(`^<=`), defaultHandler(tokens.LESS_EQUAL_TOKEN)},
			{regexp.MustCompile(`^<`), defaultHandler(tokens.LESS_TOKEN)},
			{regexp.MustCompile(`^>=`), defaultHandler(tokens.GREATER_EQUAL_TOKEN)},
			{regexp.MustCompile(`^>`), defaultHandler(tokens.GREATER_TOKEN)},
			{regexp.MustCompile(`^==`), defaultHandler(tokens.DOUBLE_EQUAL_TOKEN)},
			{regexp.MustCompile(`^=`), defaultHandler(tokens.EQUALS_TOKEN)},
			{regexp.MustCompile(`^:`), defaultHandler(tokens.COLON_TOKEN)},
			{regexp.MustCompile(`^;`), defaultHandler(tokens.SEMICOLON_TOKEN)},
			{regexp.MustCompile(`^\(`), defaultHandler(tokens.OPEN_PAREN)},
			{regexp.MustCompile(`^\)`), defaultHandler(tokens.CLOSE_PAREN)},
			{regexp.MustCompile(`^\[`), defaultHandler(tokens.OPEN_BRACKET)},
			{regexp.MustCompile(`^\]`), defaultHandler(tokens.CLOSE_BRACKET)},
			{regexp.MustCompile(`^\{`), defaultHandler(tokens.OPEN_CURLY)},
			{regexp.MustCompile(`^\}`), defaultHandler(tokens.CLOSE_CURLY)},
			{regexp.MustCompile(`^,`), defaultHandler(tokens.COMMA_TOKEN)},
			{regexp.MustCompile(`^\.`), defaultHandler(tokens.DOT_TOKEN)},
		},
	}
	return lex
}

func defaultHandler(token tokens.TOKEN) regexHandler {
	return func(lex *Lexer, regex *regexp.Regexp) {
		match := regex.FindString(lex.remainder())
		lex.advance(match)
		lex.push(tokens.NewToken(token, match, lex.Position))
	}
}

func identifierHandler(lex *Lexer, regex *regexp.Regexp) {
	identifier := regex.FindString(lex.remainder())
	lex.advance(identifier)
	if tokens.IsKeyword(identifier) {
		lex.push(tokens.NewToken(tokens.TOKEN(identifier), identifier, lex.Position))
	} else {
		lex.push(tokens.NewToken(tokens.IDENTIFIER_TOKEN, identifier, lex.Position))
	}
}

// unknownHandler emits the next character on its own so nothing is dropped.
func unknownHandler(lex *Lexer) {
	_, size := utf8.DecodeRuneInString(lex.remainder())
	match := lex.remainder()[:size]
	lex.advance(match)
	lex.push(tokens.NewToken(tokens.UNKNOWN_TOKEN, match, lex.Position))
}

// Tokenize splits the whole source into tokens. It never fails: the raw text
// of the returned tokens concatenates back to the input.
func (lex *Lexer) Tokenize(debug bool) []tokens.Token {

	for !lex.atEOF() {

		matched := false

		for _, pattern := range lex.patterns {
			if pattern.regex.MatchString(lex.remainder()) {
				pattern.handler(lex, pattern.regex)
				matched = true
				break
			}
		}

		if !matched {
			unknownHandler(lex)
		}
	}

	if debug {
		for _, token := range lex.Tokens {
			token.Debug(os.Stdout, lex.FilePath)
		}
	}

	return lex.Tokens
}

// Tokenize runs a fresh lexer over src.
func Tokenize(src string) []tokens.Token {
	return New("", src).Tokenize(false)
}
