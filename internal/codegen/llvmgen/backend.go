package llvmgen

import (
	"lumen/internal/frontend/ast"
)

// Backend exposes the generator as a codegen.Backend.
type Backend struct{}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Name() string      { return "llvm" }
func (b *Backend) Extension() string { return ".ll" }

func (b *Backend) Generate(mod *ast.Module) (string, error) {
	return Generate(mod)
}
