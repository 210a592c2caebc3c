// Package markup turns chat text written with inline color markers into
// styled segments.
//
// Supported markers, with either '&' or '§' as the leader:
//
//	&0-&9, &a-&f      legacy colors
//	&l &o &n &m &r    bold, italic, underline, monospace, reset
//	&#rrggbb          hex color
//	&#c1:c2[:c3...]   gradient over the following text; stops are hex or names
//	&*                rainbow over the following text
//	&(url)[text]      clickable link ('&' only); text is taken literally
//
// Color and format markers last until the next color, gradient, rainbow or
// reset marker. Every marker may be gated by a Checker; a denied marker is
// dropped without effect, while denied links are left in the text verbatim.
package markup

// Parse converts s into a renderable message. A nil Checker allows every
// marker.
func Parse(s string, c Checker) Message {
	if c == nil {
		c = AllowAll
	}
	var msg Message
	for _, ch := range extractLinks(s, c) {
		if ch.isLink() {
			msg.Append(Segment{Text: ch.text, Link: ch.url})
			continue
		}
		newParser(c, &msg).scan(ch.text)
	}
	return msg
}

// ParseAs is Parse gated by a subject's permissions. A nil subject allows
// every marker.
func ParseAs(s string, sub Subject) Message {
	return Parse(s, Gate(sub))
}
