package source

import "fmt"

// Position locates the last character consumed for a token.
//
// Raw is the absolute 0-based byte offset of that character, Line is 1-based
// and Offset is the 0-based column counter of the current line.
type Position struct {
	Raw    int
	Line   int
	Offset int
}

// Start returns the position before any character has been consumed.
func Start() Position {
	return Position{Raw: 0, Line: 1, Offset: 0}
}

// Step records the consumption of the character r found at byte offset at.
//
// The first character of the input leaves the column counter at 0; every later
// character increments it. A newline moves to the next line and resets the
// counter, so characters following a newline report a column one past their
// 0-based position in that line.
func (p *Position) Step(at int, r rune) *Position {
	if at > 0 {
		p.Offset++
	}
	p.Raw = at
	if r == '\n' {
		p.Line++
		p.Offset = 0
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Offset)
}
