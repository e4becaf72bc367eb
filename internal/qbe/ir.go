package qbe

import (
	"strconv"
)

// Value is an instruction operand: a temporary or a constant.
type Value interface {
	qbeValue()
	String() string
}

// Temporary is a named SSA location.
type Temporary struct {
	Name string
}

func (t Temporary) qbeValue() {}

func (t Temporary) String() string {
	return "%" + t.Name
}

// Const is an integer literal operand.
type Const struct {
	Value int64
}

func (c Const) qbeValue() {}

func (c Const) String() string {
	return strconv.FormatInt(c.Value, 10)
}

// Instr is the base interface for IR instructions.
type Instr interface {
	qbeInstr()
	String() string
}

// Copy yields its operand unchanged.
type Copy struct {
	Value Value
}

func (c *Copy) qbeInstr() {}

// Ret leaves the function. Value is nil for a void return.
type Ret struct {
	Value Value
}

func (r *Ret) qbeInstr() {}

// Statement is one line of a block.
type Statement interface {
	qbeStatement()
	String() string
}

// Assign binds the result of Instr to Temp.
type Assign struct {
	Temp  Temporary
	Type  Type
	Instr Instr
}

func (a *Assign) qbeStatement() {}

// Volatile runs Instr for its effect only.
type Volatile struct {
	Instr Instr
}

func (v *Volatile) qbeStatement() {}

// Block is a labelled run of statements.
type Block struct {
	Label      string
	Statements []Statement
}

func (b *Block) Append(stmt Statement) {
	b.Statements = append(b.Statements, stmt)
}

// Returns reports whether the last statement is a ret.
func (b *Block) Returns() bool {
	if len(b.Statements) == 0 {
		return false
	}
	v, ok := b.Statements[len(b.Statements)-1].(*Volatile)
	if !ok {
		return false
	}
	_, ok = v.Instr.(*Ret)
	return ok
}

// Argument is a typed function parameter.
type Argument struct {
	Type Type
	Temp Temporary
}

// Function is an IR function. ReturnType is nil for functions that
// return nothing.
type Function struct {
	Exported   bool
	Name       string
	Arguments  []Argument
	ReturnType *Type
	Blocks     []*Block
}

// AddBlock appends a new block which becomes the current one.
func (f *Function) AddBlock(label string) *Block {
	b := &Block{Label: label}
	f.Blocks = append(f.Blocks, b)
	return b
}

// CurrentBlock returns the last block, or nil before the entry block exists.
func (f *Function) CurrentBlock() *Block {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[len(f.Blocks)-1]
}

// Module is an ordered list of functions.
type Module struct {
	Functions []*Function
}
