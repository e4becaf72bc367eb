package llvmgen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"lumen/internal/codegen"
	"lumen/internal/frontend/ast"
	"lumen/internal/source"
	"lumen/internal/table"
	lumentypes "lumen/internal/types"
)

const entryLabel = "start"

// Generator lowers a module to LLVM IR. Source names bind directly to SSA
// values, so a let emits no instruction of its own.
type Generator struct {
	m      *ir.Module
	scopes *table.Stack[value.Value]

	fn     *ir.Func
	block  *ir.Block
	name   string
	blocks int
}

func New() *Generator {
	return &Generator{
		m:      ir.NewModule(),
		scopes: table.NewStack[value.Value](),
	}
}

// Generate lowers every function of mod and renders the module. The first
// failing function aborts the whole module.
func Generate(mod *ast.Module) (string, error) {
	g := New()
	if mod.FullPath != "" {
		g.m.SourceFilename = mod.FullPath
	}
	for _, fn := range mod.Functions {
		if _, err := g.GenerateFunction(fn); err != nil {
			return "", fmt.Errorf("llvm: %w", err)
		}
	}
	return g.m.String(), nil
}

// GenerateFunction adds fn to the generator's module.
func (g *Generator) GenerateFunction(fn *ast.Function) (*ir.Func, error) {
	g.name = fn.Name
	g.blocks = 0
	release := g.scopes.Push()
	defer release()

	params := make([]*ir.Param, 0, len(fn.Arguments))
	for i := range fn.Arguments {
		arg := &fn.Arguments[i]
		if arg.Type == nil {
			return nil, g.errorf(codegen.ErrMissingType, arg.Name, &arg.Location)
		}
		ty, err := g.lowerType(arg.Type, &arg.Location)
		if err != nil {
			return nil, err
		}
		param := ir.NewParam(arg.Name, ABI(ty))
		if err := g.declare(arg.Name, param, &arg.Location); err != nil {
			return nil, err
		}
		params = append(params, param)
	}

	var ret types.Type = types.Void
	if fn.ReturnType != nil {
		ty, err := g.lowerType(fn.ReturnType, &fn.Location)
		if err != nil {
			return nil, err
		}
		ret = ABI(ty)
	}

	g.fn = g.m.NewFunc(fn.Name, ret, params...)
	g.block = g.fn.NewBlock(entryLabel)

	if fn.Body != nil {
		if err := g.generateStatement(fn.Body); err != nil {
			return nil, err
		}
	}

	if g.block.Term == nil {
		if fn.ReturnType == nil {
			g.block.NewRet(nil)
		} else {
			g.block.NewUnreachable()
		}
	}

	return g.fn, nil
}

// current returns the block to emit into, opening a new one when the
// previous block already ended in a terminator.
func (g *Generator) current() *ir.Block {
	if g.block.Term != nil {
		g.blocks++
		g.block = g.fn.NewBlock(fmt.Sprintf("after.%d", g.blocks))
	}
	return g.block
}

func (g *Generator) generateStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.Block:
		release := g.scopes.Push()
		defer release()
		for _, inner := range s.Statements {
			if err := g.generateStatement(inner); err != nil {
				return err
			}
		}
		return nil

	case *ast.Return:
		if s.Value == nil {
			g.current().NewRet(nil)
			return nil
		}
		v, err := g.generateExpression(s.Value)
		if err != nil {
			return err
		}
		g.current().NewRet(v)
		return nil

	case *ast.Declare:
		var v value.Value = constant.NewInt(types.I32, 0)
		if s.Value != nil {
			var err error
			if v, err = g.generateExpression(s.Value); err != nil {
				return err
			}
		}
		if s.Type != nil {
			ty, err := g.lowerType(s.Type, &s.Location)
			if err != nil {
				return err
			}
			if c, ok := v.(*constant.Int); ok {
				v = constant.NewInt(ABI(ty).(*types.IntType), c.X.Int64())
			}
		} else if s.Value == nil {
			return g.errorf(codegen.ErrMissingType, s.Name, &s.Location)
		}
		return g.declare(s.Name, v, &s.Location)

	case *ast.ExpressionStatement:
		_, err := g.generateExpression(s.Expr)
		return err

	default:
		return g.errorf(codegen.ErrUnimplemented, fmt.Sprintf("statement %T", stmt), stmt.Loc())
	}
}

func (g *Generator) generateExpression(expr ast.Expression) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return constant.NewInt(types.I32, e.Value), nil

	case *ast.Identifier:
		v, err := g.scopes.Lookup(e.Name)
		if err != nil {
			return nil, g.errorf(codegen.ErrUndefined, e.Name, &e.Location)
		}
		return v, nil

	default:
		return nil, g.errorf(codegen.ErrUnimplemented, fmt.Sprintf("expression %T", expr), expr.Loc())
	}
}

func (g *Generator) declare(name string, v value.Value, loc *source.Location) error {
	if g.scopes.Defined(name) {
		return g.errorf(codegen.ErrRedeclaration, name, loc)
	}
	return g.scopes.Declare(name, v)
}

func (g *Generator) errorf(kind error, subject string, loc *source.Location) error {
	return codegen.NewError(kind, g.name, subject, loc)
}

// LowerType maps a source type to an LLVM integer type.
func LowerType(t *lumentypes.Type) (types.Type, error) {
	switch t.Kind {
	case lumentypes.Int:
		return types.I32, nil
	case lumentypes.Bool:
		return types.I8, nil
	case lumentypes.Str, lumentypes.Array, lumentypes.Struct:
		return nil, fmt.Errorf("aggregate %s: %w", t, codegen.ErrUnsupportedType)
	}
	return nil, fmt.Errorf("%s: %w", t, codegen.ErrUnsupportedType)
}

func (g *Generator) lowerType(t *lumentypes.Type, loc *source.Location) (types.Type, error) {
	ty, err := LowerType(t)
	if err != nil {
		subject := t.String()
		if t.IsAggregate() {
			subject = "aggregate " + subject
		}
		return nil, g.errorf(codegen.ErrUnsupportedType, subject, loc)
	}
	return ty, nil
}

// ABI widens integer types narrower than 32 bits to i32.
func ABI(t types.Type) types.Type {
	if it, ok := t.(*types.IntType); ok && it.BitSize < 32 {
		return types.I32
	}
	return t
}
