package mcformat

import (
	"fmt"
	"strings"

	"github.com/ergochat/irc-go/ircfmt"
	"github.com/jmoiron/simplecolor/markup"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ircPalette is the common rendering of the 16 mIRC colors, indexed by code.
var ircPalette = [16]markup.RGB{
	{R: 255, G: 255, B: 255}, // white
	{R: 0, G: 0, B: 0},       // black
	{R: 0, G: 0, B: 127},     // blue
	{R: 0, G: 147, B: 0},     // green
	{R: 255, G: 0, B: 0},     // red
	{R: 127, G: 0, B: 0},     // brown
	{R: 156, G: 0, B: 156},   // magenta
	{R: 252, G: 127, B: 0},   // orange
	{R: 255, G: 255, B: 0},   // yellow
	{R: 0, G: 252, B: 0},     // light green
	{R: 0, G: 147, B: 147},   // cyan
	{R: 0, G: 255, B: 255},   // light cyan
	{R: 0, G: 0, B: 252},     // light blue
	{R: 255, G: 0, B: 255},   // pink
	{R: 127, G: 127, B: 127}, // grey
	{R: 210, G: 210, B: 210}, // light grey
}

const ircMonospace = "\x11"

func toColorful(c markup.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// NearestIRCColor returns the mIRC color code perceptually closest to c.
func NearestIRCColor(c markup.RGB) int {
	target := toColorful(c)
	best, bestDist := 0, -1.0
	for code, p := range ircPalette {
		if d := target.DistanceLab(toColorful(p)); bestDist < 0 || d < bestDist {
			best, bestDist = code, d
		}
	}
	return best
}

// IRC renders msg with IRC formatting control codes. Every styled segment is
// closed with a reset so segments never bleed into each other. Links are
// written as "text <url>".
func IRC(msg markup.Message) string {
	var b strings.Builder
	for _, seg := range msg.Segments() {
		text := seg.Text
		if seg.IsLink() {
			text = seg.Text + " <" + seg.Link + ">"
		}
		styled := false
		if seg.HasColor {
			fmt.Fprintf(&b, "$c[%02d]", NearestIRCColor(seg.Color))
			styled = true
		}
		for _, f := range []struct {
			on   bool
			code string
		}{
			{seg.Style.Bold, "$b"},
			{seg.Style.Italic, "$i"},
			{seg.Style.Underline, "$u"},
			{seg.Style.Monospace, ircMonospace},
		} {
			if f.on {
				b.WriteString(f.code)
				styled = true
			}
		}
		b.WriteString(strings.ReplaceAll(text, "$", "$$"))
		if styled {
			b.WriteString("$r")
		}
	}
	return ircfmt.Unescape(b.String())
}
