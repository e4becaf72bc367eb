package qbegen

import (
	"lumen/internal/frontend/ast"
)

// Backend exposes the generator as a codegen.Backend.
type Backend struct {
	opts []Option
}

func NewBackend(opts ...Option) *Backend {
	return &Backend{opts: opts}
}

func (b *Backend) Name() string      { return "qbe" }
func (b *Backend) Extension() string { return ".ssa" }

func (b *Backend) Generate(mod *ast.Module) (string, error) {
	return Generate(mod, b.opts...)
}
