package tokens

import (
	"fmt"
	"io"

	"lumen/colors"
	"lumen/internal/source"
)

type TOKEN string

const (
	//keywords
	FUNCTION_TOKEN TOKEN = "fn"
	PUB_TOKEN      TOKEN = "pub"
	LET_TOKEN      TOKEN = "let"
	RETURN_TOKEN   TOKEN = "return"
	IF_TOKEN       TOKEN = "if"
	ELSE_TOKEN     TOKEN = "else"
	WHILE_TOKEN    TOKEN = "while"
	FOR_TOKEN      TOKEN = "for"
	IN_TOKEN       TOKEN = "in"
	BREAK_TOKEN    TOKEN = "break"
	CONTINUE_TOKEN TOKEN = "continue"
	STRUCT_TOKEN   TOKEN = "struct"
	NEW_TOKEN      TOKEN = "new"
	MATCH_TOKEN    TOKEN = "match"
	IMPORT_TOKEN   TOKEN = "import"
	TRUE_TOKEN     TOKEN = "true"
	FALSE_TOKEN    TOKEN = "false"

	IDENTIFIER_TOKEN TOKEN = "identifier"
	//literals
	INT_LITERAL    TOKEN = "integer literal"
	STRING_LITERAL TOKEN = "string literal"
	COMMENT_TOKEN  TOKEN = "comment"
	//trivia, one token per character
	WHITESPACE_TOKEN      TOKEN = "whitespace"
	TAB_TOKEN             TOKEN = "tab"
	CARRIAGE_RETURN_TOKEN TOKEN = "carriage return"
	//logical operators
	AND_TOKEN TOKEN = "&&"
	OR_TOKEN  TOKEN = "||"
	NOT_TOKEN TOKEN = "!"
	//bitwise operators
	BIT_AND_TOKEN TOKEN = "&"
	BIT_OR_TOKEN  TOKEN = "|"
	//arithmetic operators
	PLUS_TOKEN  TOKEN = "+"
	MINUS_TOKEN TOKEN = "-"
	MUL_TOKEN   TOKEN = "*"
	DIV_TOKEN   TOKEN = "/"
	MOD_TOKEN   TOKEN = "%"
	//comparison operators
	DOUBLE_EQUAL_TOKEN  TOKEN = "=="
	NOT_EQUAL_TOKEN     TOKEN = "!="
	LESS_EQUAL_TOKEN    TOKEN = "<="
	GREATER_EQUAL_TOKEN TOKEN = ">="
	LESS_TOKEN          TOKEN = "<"
	GREATER_TOKEN       TOKEN = ">"
	//assignment
	EQUALS_TOKEN       TOKEN = "="
	PLUS_EQUALS_TOKEN  TOKEN = "+="
	MINUS_EQUALS_TOKEN TOKEN = "-="
	MUL_EQUALS_TOKEN   TOKEN = "*="
	DIV_EQUALS_TOKEN   TOKEN = "/="
	//delimiters
	OPEN_PAREN      TOKEN = "("
	CLOSE_PAREN     TOKEN = ")"
	OPEN_BRACKET    TOKEN = "["
	CLOSE_BRACKET   TOKEN = "]"
	OPEN_CURLY      TOKEN = "{"
	CLOSE_CURLY     TOKEN = "}"
	COMMA_TOKEN     TOKEN = ","
	DOT_TOKEN       TOKEN = "."
	RANGE_TOKEN     TOKEN = ".."
	COLON_TOKEN     TOKEN = ":"
	SEMICOLON_TOKEN TOKEN = ";"
	ARROW_TOKEN     TOKEN = "->"
	FAT_ARROW_TOKEN TOKEN = "=>"

	UNKNOWN_TOKEN TOKEN = "unknown"
)

var keyWordsMap = map[TOKEN]bool{
	FUNCTION_TOKEN: true,
	PUB_TOKEN:      true,
	LET_TOKEN:      true,
	RETURN_TOKEN:   true,
	IF_TOKEN:       true,
	ELSE_TOKEN:     true,
	WHILE_TOKEN:    true,
	FOR_TOKEN:      true,
	IN_TOKEN:       true,
	BREAK_TOKEN:    true,
	CONTINUE_TOKEN: true,
	STRUCT_TOKEN:   true,
	NEW_TOKEN:      true,
	MATCH_TOKEN:    true,
	IMPORT_TOKEN:   true,
	TRUE_TOKEN:     true,
	FALSE_TOKEN:    true,
}

func IsKeyword(word string) bool {
	return keyWordsMap[TOKEN(word)]
}

// IsKeyword reports whether the kind is one of the reserved words.
func (k TOKEN) IsKeyword() bool {
	return keyWordsMap[k]
}

// IsLiteral reports whether the kind is an integer or string literal.
func (k TOKEN) IsLiteral() bool {
	return k == INT_LITERAL || k == STRING_LITERAL
}

// IsTrivia reports whether the kind carries no syntax for the parser.
func (k TOKEN) IsTrivia() bool {
	switch k {
	case WHITESPACE_TOKEN, TAB_TOKEN, CARRIAGE_RETURN_TOKEN, COMMENT_TOKEN:
		return true
	}
	return false
}

// Token is a classified slice of source text. Pos locates its last character.
type Token struct {
	Kind TOKEN
	Raw  string
	Len  int
	Pos  source.Position
}

func NewToken(kind TOKEN, raw string, pos source.Position) Token {
	return Token{
		Kind: kind,
		Raw:  raw,
		Len:  len(raw),
		Pos:  pos,
	}
}

// Start returns the position of the token's first character. Only Raw is
// exact; Line and Offset are derived assuming the token does not span lines.
func (t Token) Start() source.Position {
	width := len([]rune(t.Raw))
	if width == 0 {
		return t.Pos
	}
	lastWidth := len(string([]rune(t.Raw)[width-1]))
	return source.Position{
		Raw:    t.Pos.Raw - (t.Len - lastWidth),
		Line:   t.Pos.Line,
		Offset: t.Pos.Offset - (width - 1),
	}
}

func (t Token) Debug(w io.Writer, filename string) {
	colors.GREY.Fprintf(w, "%s:%d:%d ", filename, t.Pos.Line, t.Pos.Offset)
	if t.Raw == string(t.Kind) {
		fmt.Fprintf(w, "%q\n", t.Raw)
	} else {
		fmt.Fprintf(w, "%q ('%v')\n", t.Raw, t.Kind)
	}
}
