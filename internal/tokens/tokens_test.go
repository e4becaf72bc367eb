package tokens

import (
	"bytes"
	"strings"
	"testing"

	"lumen/colors"
	"lumen/internal/source"
)

func TestKeywordTable(t *testing.T) {
	for _, word := range []string{"fn", "pub", "let", "return", "true", "false", "import"} {
		if !IsKeyword(word) {
			t.Errorf("%q should be a keyword", word)
		}
	}
	for _, word := range []string{"main", "int", "Fn", "identifier", ""} {
		if IsKeyword(word) {
			t.Errorf("%q should not be a keyword", word)
		}
	}
}

func TestKindClasses(t *testing.T) {
	if !INT_LITERAL.IsLiteral() || !STRING_LITERAL.IsLiteral() {
		t.Errorf("literal kinds should report IsLiteral")
	}
	if IDENTIFIER_TOKEN.IsLiteral() {
		t.Errorf("identifier is not a literal")
	}
	if EQUALS_TOKEN.IsTrivia() || IDENTIFIER_TOKEN.IsTrivia() {
		t.Errorf("syntax kinds must not be trivia")
	}
	if !COMMENT_TOKEN.IsTrivia() {
		t.Errorf("comments are trivia")
	}
}

func TestTokenStart(t *testing.T) {
	tok := NewToken(INT_LITERAL, "42", source.Position{Raw: 5, Line: 2, Offset: 3})
	start := tok.Start()
	if start.Raw != 4 || start.Offset != 2 || start.Line != 2 {
		t.Errorf("Start() = %+v, want raw 4 offset 2 line 2", start)
	}

	wide := NewToken(IDENTIFIER_TOKEN, "aé", source.Position{Raw: 1, Line: 1, Offset: 1})
	if got := wide.Start().Raw; got != 0 {
		t.Errorf("Start().Raw = %d, want 0", got)
	}
}

func TestTokenDebug(t *testing.T) {
	colors.SetEnabled(false)
	defer colors.SetEnabled(true)

	var buf bytes.Buffer
	NewToken(IDENTIFIER_TOKEN, "main", source.Position{Raw: 3, Line: 1, Offset: 3}).Debug(&buf, "a.lm")
	NewToken(OPEN_PAREN, "(", source.Position{Raw: 4, Line: 1, Offset: 4}).Debug(&buf, "a.lm")

	out := buf.String()
	if !strings.Contains(out, `a.lm:1:3 "main" ('identifier')`) {
		t.Errorf("unexpected debug output: %q", out)
	}
	if !strings.Contains(out, `a.lm:1:4 "("`+"\n") {
		t.Errorf("unexpected debug output: %q", out)
	}
}
