package ast

import (
	"lumen/internal/source"
)

type IntLiteral struct {
	Value int64
	source.Location
}

func (i *IntLiteral) INode()                {}
func (i *IntLiteral) expr()                 {}
func (i *IntLiteral) Loc() *source.Location { return &i.Location }

// StrLiteral holds the string body without its delimiters
type StrLiteral struct {
	Value string
	source.Location
}

func (s *StrLiteral) INode()                {}
func (s *StrLiteral) expr()                 {}
func (s *StrLiteral) Loc() *source.Location { return &s.Location }

type BoolLiteral struct {
	Value bool
	source.Location
}

func (b *BoolLiteral) INode()                {}
func (b *BoolLiteral) expr()                 {}
func (b *BoolLiteral) Loc() *source.Location { return &b.Location }

// Identifier references a binding by name
type Identifier struct {
	Name string
	source.Location
}

func (i *Identifier) INode()                {}
func (i *Identifier) expr()                 {}
func (i *Identifier) Loc() *source.Location { return &i.Location }
