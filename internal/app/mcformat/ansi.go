package mcformat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmoiron/simplecolor/markup"
)

// ANSI renders msg for a terminal. A nil renderer uses lipgloss's default,
// which detects the color profile of stdout. Monospace has no terminal
// equivalent and is ignored; links are written as "text (url)".
func ANSI(msg markup.Message, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	var b strings.Builder
	for _, seg := range msg.Segments() {
		text := seg.Text
		if seg.IsLink() {
			text = seg.Text + " (" + seg.Link + ")"
		}
		style := r.NewStyle().
			Bold(seg.Style.Bold).
			Italic(seg.Style.Italic).
			Underline(seg.Style.Underline)
		if seg.HasColor {
			style = style.Foreground(lipgloss.Color(seg.Color.String()))
		}
		b.WriteString(style.Render(text))
	}
	return b.String()
}
