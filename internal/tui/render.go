package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const minMarkdownWidth = 20

// RenderMarkdown renders content for a terminal of the given width. It falls
// back to wrapped plain text when glamour cannot render it.
func RenderMarkdown(content string, width int) string {
	if width < minMarkdownWidth {
		width = minMarkdownWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return plain(content, width)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return plain(content, width)
	}

	return strings.Trim(rendered, "\n")
}

func plain(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(content)
}
