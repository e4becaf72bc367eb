package ast

import (
	"lumen/internal/source"
	"lumen/internal/types"
)

// Block is a braced list of statements with its own scope
type Block struct {
	Statements []Statement
	source.Location
}

func (b *Block) INode()                {}
func (b *Block) stmt()                 {}
func (b *Block) Loc() *source.Location { return &b.Location }

// Return exits the function. Value is nil for a bare return.
type Return struct {
	Value Expression
	source.Location
}

func (r *Return) INode()                {}
func (r *Return) stmt()                 {}
func (r *Return) Loc() *source.Location { return &r.Location }

// Declare introduces a local binding (let keyword). Type and Value are
// both optional.
type Declare struct {
	Name  string
	Type  *types.Type
	Value Expression
	source.Location
}

func (d *Declare) INode()                {}
func (d *Declare) stmt()                 {}
func (d *Declare) Loc() *source.Location { return &d.Location }

// ExpressionStatement evaluates an expression for its effect
type ExpressionStatement struct {
	Expr Expression
	source.Location
}

func (e *ExpressionStatement) INode()                {}
func (e *ExpressionStatement) stmt()                 {}
func (e *ExpressionStatement) Loc() *source.Location { return &e.Location }
