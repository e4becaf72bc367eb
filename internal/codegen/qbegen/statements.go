package qbegen

import (
	"fmt"

	"lumen/internal/codegen"
	"lumen/internal/frontend/ast"
	"lumen/internal/qbe"
)

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
			g.emit(&qbe.Volatile{Instr: &qbe.Ret{}})
			return nil
		}
		_, tmp, err := g.generateExpression(s.Value)
		if err != nil {
			return err
		}
		g.emit(&qbe.Volatile{Instr: &qbe.Ret{Value: tmp}})
		return nil

	case *ast.Declare:
		return g.generateDeclare(s)

	case *ast.ExpressionStatement:
		_, _, err := g.generateExpression(s.Expr)
		return err

	default:
		return g.errorf(codegen.ErrUnimplemented, fmt.Sprintf("statement %T", stmt), stmt.Loc())
	}
}

// generateDeclare binds a let. The value is evaluated before the name is
// declared, so `let x = x` reads the outer x.
func (g *Generator) generateDeclare(s *ast.Declare) error {
	var ty qbe.Type
	var value qbe.Value = qbe.Const{Value: 0}

	if s.Value != nil {
		valueType, tmp, err := g.generateExpression(s.Value)
		if err != nil {
			return err
		}
		ty, value = valueType, tmp
	}

	switch {
	case s.Type != nil:
		declared, err := g.lowerType(s.Type, &s.Location)
		if err != nil {
			return err
		}
		ty = declared.ABI()
	case s.Value == nil:
		return g.errorf(codegen.ErrMissingType, s.Name, &s.Location)
	}

	tmp, err := g.declare(s.Name, ty, &s.Location)
	if err != nil {
		return err
	}
	g.emit(&qbe.Assign{Temp: tmp, Type: ty, Instr: &qbe.Copy{Value: value}})
	return nil
}
