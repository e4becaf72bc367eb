package ast

import (
	"encoding/json"
	"fmt"
	"os"

	"lumen/internal/source"
	"lumen/internal/types"
)

// Module represents one lumen source file
type Module struct {
	FullPath  string // the physical full path to the file
	Functions []*Function

	source.Location
}

func (m *Module) INode()                {}
func (m *Module) Loc() *source.Location { return &m.Location }

// SaveAST writes the module as indented JSON next to the source file.
func (m *Module) SaveAST() error {
	file, err := os.Create(m.FullPath + ".ast.json")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ") // pretty-print
	if err := encoder.Encode(m); err != nil {
		return fmt.Errorf("failed to encode AST to JSON: %w", err)
	}
	return nil
}

// Argument is one parameter of a function. Type is nil when the source
// omits the annotation.
type Argument struct {
	Name string
	Type *types.Type

	source.Location
}

// Function is a top-level function definition. ReturnType is nil for
// functions that return nothing.
type Function struct {
	Name       string
	Public     bool
	Arguments  []Argument
	ReturnType *types.Type
	Body       Statement

	source.Location
}

func (f *Function) INode()                {}
func (f *Function) Loc() *source.Location { return &f.Location }
