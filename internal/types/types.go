package types

import "fmt"

// Kind is the closed set of source-level type shapes.
type Kind int

const (
	Any Kind = iota
	Int
	Bool
	Str
	Array
	Struct
)

func (k Kind) String() string {
	switch k {
	case Any:
		return "any"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Str:
		return "string"
	case Array:
		return "array"
	case Struct:
		return "struct"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Type is a source-level type as written in a declaration.
//
// Elem is set only for Array, Name only for Struct.
type Type struct {
	Kind Kind
	Elem *Type
	Name string
}

var (
	TypeAny  = &Type{Kind: Any}
	TypeInt  = &Type{Kind: Int}
	TypeBool = &Type{Kind: Bool}
	TypeStr  = &Type{Kind: Str}
)

func NewArray(elem *Type) *Type {
	return &Type{Kind: Array, Elem: elem}
}

func NewStruct(name string) *Type {
	return &Type{Kind: Struct, Name: name}
}

// FromName resolves a type name written in source. Unknown names are
// taken to be struct references.
func FromName(name string) *Type {
	switch name {
	case "any":
		return TypeAny
	case "int":
		return TypeInt
	case "bool":
		return TypeBool
	case "string":
		return TypeStr
	}
	return NewStruct(name)
}

// IsAggregate reports whether values of the type are composite.
func (t *Type) IsAggregate() bool {
	return t.Kind == Str || t.Kind == Array || t.Kind == Struct
}

func (t *Type) String() string {
	if t == nil {
		return "void"
	}
	switch t.Kind {
	case Array:
		return t.Elem.String() + "[]"
	case Struct:
		return t.Name
	}
	return t.Kind.String()
}

func (t *Type) Equals(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Array:
		return t.Elem.Equals(other.Elem)
	case Struct:
		return t.Name == other.Name
	}
	return true
}
