package qbegen

import (
	"fmt"

	"lumen/internal/codegen"
	"lumen/internal/frontend/ast"
	"lumen/internal/qbe"
)

// generateExpression evaluates expr into a fresh temporary and reports its type.
func (g *Generator) generateExpression(expr ast.Expression) (qbe.Type, qbe.Temporary, error) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		tmp := g.newTemporary()
		g.emit(&qbe.Assign{Temp: tmp, Type: qbe.TypeWord, Instr: &qbe.Copy{Value: qbe.Const{Value: e.Value}}})
		return qbe.TypeWord, tmp, nil

	case *ast.Identifier:
		b, err := g.lookup(e.Name, &e.Location)
		if err != nil {
			return qbe.Type{}, qbe.Temporary{}, err
		}
		tmp := g.newTemporary()
		g.emit(&qbe.Assign{Temp: tmp, Type: b.typ, Instr: &qbe.Copy{Value: b.temp}})
		return b.typ, tmp, nil

	default:
		return qbe.Type{}, qbe.Temporary{}, g.errorf(codegen.ErrUnimplemented, fmt.Sprintf("expression %T", expr), expr.Loc())
	}
}
