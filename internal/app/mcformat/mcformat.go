// Package mcformat renders parsed chat markup for different outputs: HTML
// for the web preview, ANSI for terminals, IRC control codes, and SNBT text
// components for game servers.
package mcformat

import (
	"html/template"
	"net/url"
	"strings"

	"github.com/jmoiron/simplecolor/markup"
)

// Format parses s as trusted text and renders it as HTML.
func Format(s string) template.HTML {
	return HTML(markup.Parse(s, nil))
}

// HTML renders each segment as a span carrying classes like `mc-bold` and
// an inline color, and each link as an anchor.
func HTML(msg markup.Message) template.HTML {
	var b strings.Builder
	for _, seg := range msg.Segments() {
		classes := make([]string, 0, 6)
		classes = append(classes, "mc-text")
		if seg.Style.Bold {
			classes = append(classes, "mc-bold")
		}
		if seg.Style.Italic {
			classes = append(classes, "mc-italic")
		}
		if seg.Style.Underline {
			classes = append(classes, "mc-underline")
		}
		if seg.Style.Monospace {
			classes = append(classes, "mc-mono")
		}

		if seg.IsLink() && safeURL(seg.Link) {
			classes = append(classes, "mc-link")
			b.WriteString(`<a class="`)
			b.WriteString(strings.Join(classes, " "))
			b.WriteString(`" href="`)
			b.WriteString(template.HTMLEscapeString(seg.Link))
			b.WriteString(`" rel="noopener noreferrer">`)
			b.WriteString(template.HTMLEscapeString(seg.Text))
			b.WriteString("</a>")
			continue
		}

		b.WriteString(`<span class="`)
		b.WriteString(strings.Join(classes, " "))
		b.WriteString(`"`)
		if seg.HasColor {
			b.WriteString(` style="color:#`)
			b.WriteString(seg.Color.Hex())
			b.WriteString(`"`)
		}
		b.WriteString(">")
		b.WriteString(template.HTMLEscapeString(seg.Text))
		b.WriteString("</span>")
	}
	return template.HTML(b.String())
}

// safeURL reports whether u may be used as an anchor target. Links with other
// schemes are rendered as plain spans.
func safeURL(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto":
		return true
	}
	return false
}
