package qbe

import "fmt"

// TypeKind enumerates the storage classes of the IR.
type TypeKind int

const (
	Word TypeKind = iota
	Long
	Single
	Double
	Byte
	Halfword
	Aggregate
)

// Type is an IR type. Name is only meaningful for Aggregate.
type Type struct {
	Kind TypeKind
	Name string
}

var (
	TypeWord     = Type{Kind: Word}
	TypeLong     = Type{Kind: Long}
	TypeSingle   = Type{Kind: Single}
	TypeDouble   = Type{Kind: Double}
	TypeByte     = Type{Kind: Byte}
	TypeHalfword = Type{Kind: Halfword}
)

func NewAggregate(name string) Type {
	return Type{Kind: Aggregate, Name: name}
}

// IsBase reports whether the type is legal at an ABI boundary as is.
func (t Type) IsBase() bool {
	switch t.Kind {
	case Word, Long, Single, Double:
		return true
	}
	return false
}

// IsExtended reports whether the type is a sub-word storage type.
func (t Type) IsExtended() bool {
	return t.Kind == Byte || t.Kind == Halfword
}

// ABI widens extended types to Word. Every other type, aggregates
// included, is returned unchanged.
func (t Type) ABI() Type {
	if t.IsExtended() {
		return TypeWord
	}
	return t
}

func (t Type) String() string {
	switch t.Kind {
	case Word:
		return "w"
	case Long:
		return "l"
	case Single:
		return "s"
	case Double:
		return "d"
	case Byte:
		return "b"
	case Halfword:
		return "h"
	case Aggregate:
		return ":" + t.Name
	}
	return fmt.Sprintf("?%d", int(t.Kind))
}
