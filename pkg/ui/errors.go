package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var errorColor = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}

// ErrorRenderer writes "Error: <message>" lines, styled when format allows
type ErrorRenderer struct {
	out   io.Writer
	style lipgloss.Style
}

// NewErrorRenderer creates an ErrorRenderer for out
func NewErrorRenderer(out io.Writer, format Format) *ErrorRenderer {
	renderer := lipgloss.NewRenderer(out)
	switch format.Resolve(out) {
	case FormatTerminal:
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI)
		}
	default:
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &ErrorRenderer{
		out:   out,
		style: renderer.NewStyle().Bold(true).Foreground(errorColor),
	}
}

// Render writes err as a single error line
func (r *ErrorRenderer) Render(err error) error {
	_, werr := fmt.Fprintln(r.out, r.style.Render(fmt.Sprintf("Error: %v", err)))
	return werr
}
