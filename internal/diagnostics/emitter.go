package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"lumen/colors"
	"lumen/internal/source"
)

const (
	STR_MULTIPLIER = "%*d | "
	LINE_POS       = "%s--> %s:%d:%d\n"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string]string),
	}
}

func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = content
}

// Content returns the file's text, reading it from disk on first use.
func (sc *SourceCache) Content(filepath string) (string, error) {
	if content, ok := sc.files[filepath]; ok {
		return content, nil
	}
	data, err := os.ReadFile(filepath)
	if err != nil {
		return "", err
	}
	sc.files[filepath] = string(data)
	return string(data), nil
}

// lineAndColumn maps a byte offset to a 1-based line and 1-based character column.
func lineAndColumn(content string, raw int) (int, int) {
	if raw > len(content) {
		raw = len(content)
	}
	before := content[:raw]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return line, utf8.RuneCountInString(before[lineStart:]) + 1
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache  *SourceCache
	writer io.Writer
	gutter int
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		cache:  NewSourceCache(),
		writer: w,
	}
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.gutter = 1
	e.printHeader(diag)

	if primary := diag.Primary(); primary != nil {
		e.printLabel(diag.FilePath, *primary, diag.Severity)
	}
	for _, label := range diag.Labels {
		if label.Style == Secondary {
			e.printLabel(diag.FilePath, label, diag.Severity)
		}
	}

	for _, note := range diag.Notes {
		e.printNote(note)
	}
	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := e.getSeverityColor(diag.Severity)
	if diag.Severity == Error {
		color = colors.BOLD_RED
	}

	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil {
		return
	}
	if label.Location.Filename != "" {
		filepath = label.Location.Filename
	}

	content, err := e.cache.Content(filepath)
	if err != nil {
		colors.BLUE.Fprintf(e.writer, LINE_POS, " ", filepath, label.Location.Start.Line, label.Location.Start.Offset)
		return
	}

	line, col := lineAndColumn(content, label.Location.Start.Raw)
	_, endCol := lineAndColumn(content, label.Location.End.Raw)
	width := len(fmt.Sprintf("%d", line))
	if width > e.gutter {
		e.gutter = width
	}

	colors.BLUE.Fprintf(e.writer, LINE_POS, strings.Repeat(" ", width), filepath, line, col)
	fmt.Fprint(e.writer, strings.Repeat(" ", width))
	colors.GREY.Fprintln(e.writer, " |")

	lines := source.Lines(content)
	if line > len(lines) {
		return
	}
	colors.GREY.Fprintf(e.writer, STR_MULTIPLIER, width, line)
	fmt.Fprintln(e.writer, lines[line-1])

	length := endCol - col + 1
	endLine, _ := lineAndColumn(content, label.Location.End.Raw)
	if endLine != line || length <= 0 {
		length = 1
	}

	underlineColor := colors.BLUE
	underlineChar := "-"
	if label.Style == Primary {
		underlineColor = e.getSeverityColor(severity)
		underlineChar = "^"
		if length > 1 {
			underlineChar = "~"
		}
	}

	fmt.Fprint(e.writer, strings.Repeat(" ", width))
	colors.GREY.Fprint(e.writer, " | ")
	fmt.Fprint(e.writer, strings.Repeat(" ", col-1))
	underlineColor.Fprint(e.writer, strings.Repeat(underlineChar, length))
	if label.Message != "" {
		underlineColor.Fprintf(e.writer, " %s", label.Message)
	}
	fmt.Fprintln(e.writer)
}

func (e *Emitter) printNote(note Note) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.gutter+1))
	colors.CYAN.Fprint(e.writer, "= note: ")
	fmt.Fprintln(e.writer, note.Message)
}

func (e *Emitter) printHelp(help string) {
	fmt.Fprint(e.writer, strings.Repeat(" ", e.gutter+1))
	colors.GREEN.Fprint(e.writer, "= help: ")
	fmt.Fprintln(e.writer, help)
}

// getSeverityColor returns the color for a given severity
func (e *Emitter) getSeverityColor(severity Severity) colors.COLOR {
	switch severity {
	case Error:
		return colors.RED
	case Warning:
		return colors.YELLOW
	case Info:
		return colors.BLUE
	default:
		return colors.RED
	}
}
