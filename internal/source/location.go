package source

import (
	"fmt"
	"strings"
)

// Location represents a span of source code with start and end positions
type Location struct {
	Filename string
	Start    Position
	End      Position
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(filename string, start, end Position) *Location {
	return &Location{
		Filename: filename,
		Start:    start,
		End:      end,
	}
}

// At creates a single-position location.
func At(filename string, pos Position) *Location {
	return NewLocation(filename, pos, pos)
}

// Contains checks if the given position is within this location
func (l *Location) Contains(pos Position) bool {
	return l.Start.Raw <= pos.Raw && pos.Raw <= l.End.Raw
}

func (l *Location) String() string {
	if l == nil {
		return "location(unknown)"
	}
	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Offset, l.End.Line, l.End.Offset)
}

// Text extracts the covered bytes from content. Returns empty string if the
// location does not fit in content.
func (l *Location) Text(content string) string {
	if l == nil || l.Start.Raw < 0 || l.End.Raw >= len(content) || l.Start.Raw > l.End.Raw {
		return ""
	}
	return content[l.Start.Raw : l.End.Raw+1]
}

// Lines splits content into lines without their terminators.
func Lines(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LineStart returns the byte offset of the first character on the given
// 1-based line, or -1 when content has fewer lines.
func LineStart(content string, line int) int {
	if line < 1 {
		return -1
	}
	current := 1
	for i := 0; i < len(content); i++ {
		if current == line {
			return i
		}
		if content[i] == '\n' {
			current++
		}
	}
	if current == line {
		return len(content)
	}
	return -1
}
