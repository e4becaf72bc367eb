package diagnostics

import (
	"errors"
	"fmt"
	"strconv"

	"lumen/internal/source"
)

// Common diagnostic builders for the lexer and parser

// UnrecognizedCharacter reports a character no token pattern accepts
func UnrecognizedCharacter(filepath string, loc *source.Location, char string) *Diagnostic {
	return NewError(fmt.Sprintf("unrecognized character %q", char)).
		WithCode(ErrUnexpectedCharacter).
		WithPrimaryLabel(filepath, loc, "not valid here")
}

// ExpectedToken reports a missing token the grammar requires
func ExpectedToken(filepath string, loc *source.Location, want, found string) *Diagnostic {
	return NewError(fmt.Sprintf("expected %s, found %s", want, found)).
		WithCode(ErrExpectedToken).
		WithPrimaryLabel(filepath, loc, "expected "+want)
}

// UnexpectedToken reports a token that cannot start the construct being parsed
func UnexpectedToken(filepath string, loc *source.Location, found, context string) *Diagnostic {
	return NewError(fmt.Sprintf("unexpected %s in %s", found, context)).
		WithCode(ErrUnexpectedToken).
		WithPrimaryLabel(filepath, loc, "unexpected token")
}

// InvalidNumber reports an integer literal that does not fit or parse
func InvalidNumber(filepath string, loc *source.Location, raw string, err error) *Diagnostic {
	label := "not a valid integer"
	if errors.Is(err, strconv.ErrRange) {
		label = "cannot be represented as a 64-bit integer"
	}
	return NewError(fmt.Sprintf("invalid integer literal %s", raw)).
		WithCode(ErrInvalidNumber).
		WithPrimaryLabel(filepath, loc, label).
		WithNote(err.Error())
}

// IntegerTruncated warns about a literal wider than the 32-bit word it is stored in
func IntegerTruncated(filepath string, loc *source.Location, raw string) *Diagnostic {
	return NewWarning(fmt.Sprintf("integer literal %s does not fit in 32 bits", raw)).
		WithCode(WarnIntegerTruncated).
		WithPrimaryLabel(filepath, loc, "will be truncated to a 32-bit word")
}
