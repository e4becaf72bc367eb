package qbe

import (
	"strings"
)

func (c *Copy) String() string {
	return "copy " + c.Value.String()
}

func (r *Ret) String() string {
	if r.Value == nil {
		return "ret"
	}
	return "ret " + r.Value.String()
}

func (a *Assign) String() string {
	return a.Temp.String() + " =" + a.Type.String() + " " + a.Instr.String()
}

func (v *Volatile) String() string {
	return v.Instr.String()
}

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("@")
	sb.WriteString(b.Label)
	for _, stmt := range b.Statements {
		sb.WriteString("\n\t")
		sb.WriteString(stmt.String())
	}
	return sb.String()
}

func (a Argument) String() string {
	return a.Type.String() + " " + a.Temp.String()
}

func (f *Function) String() string {
	var sb strings.Builder
	if f.Exported {
		sb.WriteString("export ")
	}
	sb.WriteString("function ")
	if f.ReturnType != nil {
		sb.WriteString(f.ReturnType.String())
		sb.WriteString(" ")
	}
	sb.WriteString("$")
	sb.WriteString(f.Name)
	sb.WriteString("(")
	for i, arg := range f.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteString(") {")
	for i, block := range f.Blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		sb.WriteString(block.String())
	}
	sb.WriteString("\n}")
	return sb.String()
}

// String renders every function followed by a newline.
func (m *Module) String() string {
	var sb strings.Builder
	for _, fn := range m.Functions {
		sb.WriteString(fn.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
