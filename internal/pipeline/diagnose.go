package pipeline

import (
	"errors"
	"fmt"

	"lumen/internal/codegen"
	"lumen/internal/diagnostics"
)

var generatorCodes = []struct {
	kind error
	code string
}{
	{codegen.ErrMissingType, diagnostics.ErrGenMissingType},
	{codegen.ErrRedeclaration, diagnostics.ErrGenRedeclaration},
	{codegen.ErrUndefined, diagnostics.ErrGenUndefined},
	{codegen.ErrUnsupportedType, diagnostics.ErrGenUnsupportedType},
	{codegen.ErrUnimplemented, diagnostics.ErrGenUnimplemented},
}

// generatorDiagnostic turns a backend failure into a diagnostic pointing at
// the offending node when the backend knows where it is.
func generatorDiagnostic(filepath string, err error) *diagnostics.Diagnostic {
	var genErr *codegen.Error
	if !errors.As(err, &genErr) {
		return diagnostics.NewError(err.Error())
	}

	message := genErr.Kind.Error()
	if genErr.Subject != "" {
		message = fmt.Sprintf("%s '%s'", message, genErr.Subject)
	}

	diag := diagnostics.NewError(message)
	for _, c := range generatorCodes {
		if errors.Is(err, c.kind) {
			diag = diag.WithCode(c.code)
			break
		}
	}

	if genErr.Location != nil {
		diag = diag.WithPrimaryLabel(filepath, genErr.Location, "")
	}
	if genErr.Function != "" {
		diag = diag.WithNote(fmt.Sprintf("while generating function '%s'", genErr.Function))
	}

	switch {
	case errors.Is(err, codegen.ErrMissingType):
		diag = diag.WithHelp("add a type annotation, e.g. 'x: int'")
	case errors.Is(err, codegen.ErrRedeclaration):
		diag = diag.WithHelp("names must be unique within a block; shadow them in a nested block instead")
	}
	return diag
}
