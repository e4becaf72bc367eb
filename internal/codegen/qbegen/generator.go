package qbegen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"lumen/internal/codegen"
	"lumen/internal/frontend/ast"
	"lumen/internal/qbe"
	"lumen/internal/source"
	"lumen/internal/table"
)

const entryLabel = "start"

// binding is what a source name resolves to inside a function.
type binding struct {
	temp qbe.Temporary
	typ  qbe.Type
}

// Generator lowers functions to QBE IR. A Generator owns its temporary
// counter and scope stack and must not be shared between goroutines.
type Generator struct {
	scopes  *table.Stack[binding]
	prefix  string
	counter int

	fn   *qbe.Function
	name string
}

func New() *Generator {
	return newWithPrefix("tmp")
}

func newWithPrefix(prefix string) *Generator {
	return &Generator{
		scopes: table.NewStack[binding](),
		prefix: prefix,
	}
}

type options struct {
	parallel int
}

type Option func(*options)

// WithParallel lowers up to n functions at once. Values below 2 keep
// generation sequential.
func WithParallel(n int) Option {
	return func(o *options) {
		o.parallel = n
	}
}

// Generate lowers every function of mod and renders the module. The first
// failing function aborts the whole module.
func Generate(mod *ast.Module, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var out *qbe.Module
	var err error
	if o.parallel > 1 {
		out, err = generateParallel(mod, o.parallel)
	} else {
		out, err = generateSequential(mod)
	}
	if err != nil {
		return "", fmt.Errorf("qbe: %w", err)
	}
	return out.String(), nil
}

func generateSequential(mod *ast.Module) (*qbe.Module, error) {
	g := New()
	out := &qbe.Module{}
	for _, fn := range mod.Functions {
		lowered, err := g.GenerateFunction(fn)
		if err != nil {
			return nil, err
		}
		out.Functions = append(out.Functions, lowered)
	}
	return out, nil
}

// generateParallel gives each function its own generator whose temporaries
// live under tmp.<function index>, so names stay unique across workers.
func generateParallel(mod *ast.Module, workers int) (*qbe.Module, error) {
	results := make([]*qbe.Function, len(mod.Functions))

	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(workers)
	for i, fn := range mod.Functions {
		i, fn := i, fn
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lowered, err := newWithPrefix(fmt.Sprintf("tmp.%d", i)).GenerateFunction(fn)
			if err != nil {
				return err
			}
			results[i] = lowered
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &qbe.Module{Functions: results}, nil
}

// GenerateFunction lowers a single function.
func (g *Generator) GenerateFunction(fn *ast.Function) (*qbe.Function, error) {
	g.name = fn.Name
	release := g.scopes.Push()
	defer release()

	out := &qbe.Function{Exported: true, Name: fn.Name}

	for i := range fn.Arguments {
		arg := &fn.Arguments[i]
		if arg.Type == nil {
			return nil, g.errorf(codegen.ErrMissingType, arg.Name, &arg.Location)
		}
		ty, err := g.lowerType(arg.Type, &arg.Location)
		if err != nil {
			return nil, err
		}
		ty = ty.ABI()
		tmp, err := g.declare(arg.Name, ty, &arg.Location)
		if err != nil {
			return nil, err
		}
		out.Arguments = append(out.Arguments, qbe.Argument{Type: ty, Temp: tmp})
	}

	if fn.ReturnType != nil {
		ty, err := g.lowerType(fn.ReturnType, &fn.Location)
		if err != nil {
			return nil, err
		}
		ty = ty.ABI()
		out.ReturnType = &ty
	}

	g.fn = out
	defer func() { g.fn = nil }()
	out.AddBlock(entryLabel)

	if fn.Body != nil {
		if err := g.generateStatement(fn.Body); err != nil {
			return nil, err
		}
	}

	if fn.ReturnType == nil && !out.CurrentBlock().Returns() {
		g.emit(&qbe.Volatile{Instr: &qbe.Ret{}})
	}

	return out, nil
}

func (g *Generator) newTemporary() qbe.Temporary {
	g.counter++
	return qbe.Temporary{Name: fmt.Sprintf("%s.%d", g.prefix, g.counter)}
}

// declare binds name to a fresh temporary in the innermost scope.
func (g *Generator) declare(name string, ty qbe.Type, loc *source.Location) (qbe.Temporary, error) {
	if g.scopes.Defined(name) {
		return qbe.Temporary{}, g.errorf(codegen.ErrRedeclaration, name, loc)
	}
	tmp := g.newTemporary()
	if err := g.scopes.Declare(name, binding{temp: tmp, typ: ty}); err != nil {
		return qbe.Temporary{}, fmt.Errorf("declare %s: %w", name, err)
	}
	return tmp, nil
}

func (g *Generator) lookup(name string, loc *source.Location) (binding, error) {
	b, err := g.scopes.Lookup(name)
	if err != nil {
		return binding{}, g.errorf(codegen.ErrUndefined, name, loc)
	}
	return b, nil
}

// emit appends to the current block.
func (g *Generator) emit(stmt qbe.Statement) {
	g.fn.CurrentBlock().Append(stmt)
}

func (g *Generator) errorf(kind error, subject string, loc *source.Location) error {
	return codegen.NewError(kind, g.name, subject, loc)
}
