package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")  // route glyphs
	colorGray  = lipgloss.Color("245") // secondary text
)

// StyleDim for secondary text in log lines.
var StyleDim = lipgloss.NewStyle().Foreground(colorGray)

const routeGlyph = "o"

// routeStyle returns the decorator for route cells written to w. Colour is
// decided by w's own terminal profile, so files and pipes stay plain.
func routeStyle(w io.Writer, color bool) func(string) string {
	if !color {
		return func(s string) string { return s }
	}
	style := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(colorGreen)
	return func(s string) string { return style.Render(s) }
}
