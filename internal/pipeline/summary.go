package pipeline

import (
	"fmt"
	"io"

	"lumen/colors"
)

// PrintSummary prints a summary of the compilation of unit
func (p *Pipeline) PrintSummary(w io.Writer, unit *Unit) {
	fmt.Fprintln(w)
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
	colors.CYAN.Fprintln(w, "        COMPILATION SUMMARY")
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")

	fmt.Fprintf(w, "File: %s\n", unit.Path)
	fmt.Fprintf(w, "Backend: %s\n", p.backend.Name())
	fmt.Fprintf(w, "Phase: %s\n", unit.Phase)
	fmt.Fprintf(w, "Tokens: %d\n", len(unit.Tokens))

	if unit.AST == nil {
		return
	}
	fmt.Fprintf(w, "Functions: %d\n\n", len(unit.AST.Functions))
	for _, fn := range unit.AST.Functions {
		fmt.Fprintf(w, " - %s(%d) -> %s\n", fn.Name, len(fn.Arguments), fn.ReturnType)
	}
}
