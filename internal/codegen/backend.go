package codegen

import (
	"lumen/internal/frontend/ast"
)

// Backend turns a parsed module into target text.
type Backend interface {
	// Name is the identifier used in configuration, e.g. "qbe".
	Name() string
	// Extension is the file extension of the emitted text, with the dot.
	Extension() string
	Generate(mod *ast.Module) (string, error)
}
