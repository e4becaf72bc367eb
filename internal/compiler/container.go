package compiler

import (
	"fmt"

	"github.com/samber/do"

	"lumen/internal/codegen"
	"lumen/internal/codegen/llvmgen"
	"lumen/internal/codegen/qbegen"
	"lumen/internal/config"
	"lumen/internal/diagnostics"
	"lumen/internal/pipeline"
)

// NewContainer wires the services of one compilation. Backends are
// registered under their configuration name.
func NewContainer(cfg *config.Config, bag *diagnostics.DiagnosticBag) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, bag)

	do.ProvideNamedValue[codegen.Backend](injector, "qbe", qbegen.NewBackend(qbegen.WithParallel(cfg.Build.Parallel)))
	do.ProvideNamedValue[codegen.Backend](injector, "llvm", llvmgen.NewBackend())

	do.Provide(injector, newPipeline)
	return injector
}

func newPipeline(i *do.Injector) (*pipeline.Pipeline, error) {
	cfg, err := do.Invoke[*config.Config](i)
	if err != nil {
		return nil, err
	}
	bag, err := do.Invoke[*diagnostics.DiagnosticBag](i)
	if err != nil {
		return nil, err
	}
	backend, err := do.InvokeNamed[codegen.Backend](i, cfg.Build.Backend)
	if err != nil {
		return nil, fmt.Errorf("backend %q is not available: %w", cfg.Build.Backend, err)
	}
	return pipeline.New(cfg, bag, backend), nil
}
