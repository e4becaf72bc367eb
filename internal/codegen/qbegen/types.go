package qbegen

import (
	"fmt"

	"lumen/internal/codegen"
	"lumen/internal/qbe"
	"lumen/internal/source"
	"lumen/internal/types"
)

// LowerType maps a source type to its IR storage type. Aggregates have no
// lowering yet and fail with codegen.ErrUnsupportedType.
func LowerType(t *types.Type) (qbe.Type, error) {
	switch t.Kind {
	case types.Int:
		return qbe.TypeWord, nil
	case types.Bool:
		return qbe.TypeByte, nil
	case types.Str, types.Array, types.Struct:
		return qbe.Type{}, fmt.Errorf("aggregate %s: %w", t, codegen.ErrUnsupportedType)
	}
	return qbe.Type{}, fmt.Errorf("%s: %w", t, codegen.ErrUnsupportedType)
}

func (g *Generator) lowerType(t *types.Type, loc *source.Location) (qbe.Type, error) {
	ty, err := LowerType(t)
	if err != nil {
		subject := t.String()
		if t.IsAggregate() {
			subject = "aggregate " + subject
		}
		return qbe.Type{}, g.errorf(codegen.ErrUnsupportedType, subject, loc)
	}
	return ty, nil
}
