package colors

// COLOR is an ANSI escape sequence applied to printed text.
type COLOR string

const (
	RESET  COLOR = "\033[0m"
	BOLD   COLOR = "\033[1m"
	RED    COLOR = "\033[31m"
	GREEN  COLOR = "\033[32m"
	YELLOW COLOR = "\033[33m"
	BLUE   COLOR = "\033[34m"
	PURPLE COLOR = "\033[35m"
	CYAN   COLOR = "\033[36m"
	WHITE  COLOR = "\033[37m"
	GREY   COLOR = "\033[90m"

	BOLD_RED    COLOR = "\033[1;31m"
	BOLD_YELLOW COLOR = "\033[1;33m"
	BOLD_BLUE   COLOR = "\033[1;34m"
	ORANGE      COLOR = "\033[38;5;208m"
)

var enabled = true

// SetEnabled turns colour output on or off for every printer call.
func SetEnabled(on bool) {
	enabled = on
}

func (c COLOR) wrap(s string) string {
	if !enabled {
		return s
	}
	return string(c) + s + string(RESET)
}
