// Package view renders the generator page. Every function here is a pure
// function of its arguments.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := 0; i < height; i++ {
		lineWidth := lipgloss.Width(lines[i])
		if lineWidth >= width {
			continue
		}
		lines[i] += paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	return strings.Join(lines[:height], "\n")
}
