package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  " + helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// fitText shortens v to max runes and collapses line breaks so a value always
// fits on one line.
func fitText(v string, max int) string {
	v = strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// strengthBar renders score as a bar of width cells followed by the
// percentage and a label.
func strengthBar(score, width int) string {
	score = max(0, min(score, 100))
	filled := score * width / 100

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	label := strengthLabel(score)

	style := strongStyle
	switch label {
	case "Weak":
		style = weakStyle
	case "Medium":
		style = mediumStyle
	}
	return fmt.Sprintf("%s %3d%% %s", style.Render(bar), score, label)
}

func strengthLabel(score int) string {
	switch {
	case score < 40:
		return "Weak"
	case score < 70:
		return "Medium"
	default:
		return "Strong"
	}
}
