package codegen

import (
	"errors"
	"fmt"

	"lumen/internal/source"
)

var (
	ErrMissingType     = errors.New("missing type annotation")
	ErrRedeclaration   = errors.New("redeclaration")
	ErrUndefined       = errors.New("undefined name")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrUnimplemented   = errors.New("not implemented")
)

// Error is a generation failure inside one function. Kind is one of the
// sentinel errors above and is what errors.Is matches against.
type Error struct {
	Kind     error
	Function string
	Subject  string
	Location *source.Location
}

func NewError(kind error, function, subject string, loc *source.Location) *Error {
	return &Error{Kind: kind, Function: function, Subject: subject, Location: loc}
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("function %s: %v", e.Function, e.Kind)
	}
	return fmt.Sprintf("function %s: %v: %s", e.Function, e.Kind, e.Subject)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
