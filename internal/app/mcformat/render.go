package mcformat

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmoiron/simplecolor/markup"
)

// ErrUnknownOutput is returned by Render for an output name it doesn't know.
var ErrUnknownOutput = errors.New("unknown output format")

// Outputs lists the names accepted by Render.
var Outputs = []string{"html", "ansi", "irc", "snbt", "json", "plain"}

// Segment is the JSON shape of one message segment.
type Segment struct {
	Text      string `json:"text"`
	Color     string `json:"color,omitempty"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Monospace bool   `json:"monospace,omitempty"`
	Link      string `json:"link,omitempty"`
}

// Segments converts msg for JSON encoding. It never returns nil.
func Segments(msg markup.Message) []Segment {
	segs := msg.Segments()
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		js := Segment{
			Text:      s.Text,
			Bold:      s.Style.Bold,
			Italic:    s.Style.Italic,
			Underline: s.Style.Underline,
			Monospace: s.Style.Monospace,
			Link:      s.Link,
		}
		if s.HasColor {
			js.Color = s.Color.String()
		}
		out = append(out, js)
	}
	return out
}

// Render renders msg in the named output. The renderer is only used for
// "ansi" and may be nil.
func Render(msg markup.Message, output string, r *lipgloss.Renderer) (string, error) {
	switch output {
	case "html":
		return string(HTML(msg)), nil
	case "ansi":
		return ANSI(msg, r), nil
	case "irc":
		return IRC(msg), nil
	case "snbt":
		return SNBT(msg)
	case "json":
		b, err := json.Marshal(Segments(msg))
		if err != nil {
			return "", err
		}
		return string(b), nil
	case "plain", "":
		return msg.Plain(), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownOutput, output)
}
