package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders text as terminal markdown. It falls back to the plain
// trimmed text if rendering fails, so output is never lost.
func Markdown(text string, width int) string {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return ""
	}
	if width <= 0 {
		width = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return clean
	}
	out, err := renderer.Render(clean)
	if err != nil {
		return clean
	}
	return strings.TrimRight(out, "\n")
}
