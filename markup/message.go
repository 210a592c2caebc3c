package markup

import "strings"

// Style holds the four independent format flags.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	Monospace bool
}

// IsZero reports whether no flag is set.
func (s Style) IsZero() bool { return s == Style{} }

// Segment is one finalized run of text with uniform styling. Rainbow and
// gradient output is one segment per character.
type Segment struct {
	Text     string
	Color    RGB
	HasColor bool
	Style    Style
	// Link is the target url; empty for ordinary text.
	Link string
}

// IsLink reports whether the segment is a clickable link.
func (s Segment) IsLink() bool { return s.Link != "" }

// Message is an ordered, renderable sequence of segments.
type Message struct {
	segments []Segment
}

// Append adds seg to the end of m. Segments with no text and no link are
// dropped.
func (m *Message) Append(seg Segment) {
	if seg.Text == "" && seg.Link == "" {
		return
	}
	m.segments = append(m.segments, seg)
}

// Concat returns a new message holding m's segments followed by other's.
func (m Message) Concat(other Message) Message {
	out := Message{segments: make([]Segment, 0, len(m.segments)+len(other.segments))}
	out.segments = append(out.segments, m.segments...)
	out.segments = append(out.segments, other.segments...)
	return out
}

// Segments returns a copy of the message's segments.
func (m Message) Segments() []Segment {
	out := make([]Segment, len(m.segments))
	copy(out, m.segments)
	return out
}

// Len is the number of segments.
func (m Message) Len() int { return len(m.segments) }

// Plain is the message text with all styling dropped.
func (m Message) Plain() string {
	var b strings.Builder
	for _, s := range m.segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
