package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

func (f Formatter) Sprintf(format string, a ...any) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// DisableColor turns colors off for the rest of the process.
func DisableColor() {
	color.NoColor = true
}

var (
	// Code formats commands. Yellow, `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Label formats field names in key/value output.
	Label = Formatter{color.New(color.Bold), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Highlight formats method identifiers and other user values.
	// Cyan, 'single quotes' without color.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. Gray, (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Strength returns the formatter for a strength score: red below 40, yellow
// below 70, green otherwise.
func Strength(score int) Formatter {
	switch {
	case score < 40:
		return Error
	case score < 70:
		return Warning
	default:
		return Success
	}
}
