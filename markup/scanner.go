package markup

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Leaders that introduce a marker.
const (
	Ampersand   = '&'
	SectionSign = '§'
)

// RainbowCode follows a leader to start a rainbow run.
const RainbowCode = '*'

// gradientRe matches, from the '#', two or more colon separated stops that
// are each six hex digits or a name. Names are resolved afterwards.
var gradientRe = regexp.MustCompile(`^#((?:[0-9a-fA-F]{6}|[a-zA-Z_]+)(?::(?:[0-9a-fA-F]{6}|[a-zA-Z_]+))+)`)

func isLeader(r rune) bool { return r == Ampersand || r == SectionSign }

// mode selects how buffered text is colored on flush. The stops of a
// multi-color mode are carried by the mode itself, so a gradient without
// stops cannot be expressed.
type mode interface {
	// stops returns the colors to spread over the buffered text, or nil for
	// a single solid run.
	stops() []RGB
}

type plainMode struct{}

func (plainMode) stops() []RGB { return nil }

type rainbowMode struct{}

func (rainbowMode) stops() []RGB { return RainbowStops }

type gradientMode struct {
	colors []RGB
}

func (m gradientMode) stops() []RGB { return m.colors }

// parser is the working state for scanning one plain chunk.
type parser struct {
	check Checker
	out   *Message

	mode     mode
	color    RGB
	hasColor bool
	style    Style
	buf      strings.Builder
}

func newParser(c Checker, out *Message) *parser {
	return &parser{check: c, out: out, mode: plainMode{}}
}

// scan consumes s left to right and appends styled segments to p.out.
func (p *parser) scan(s string) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isLeader(r) && i+size < len(s) {
			if n := p.marker(s[i+size:]); n > 0 {
				i += size + n
				continue
			}
		}
		p.buf.WriteString(s[i : i+size])
		i += size
	}
	p.flush()
}

// marker tries to recognize a marker in rest, the text right after a leader.
// It returns the number of bytes consumed, or 0 if rest does not start with
// a marker, in which case the leader is literal text.
//
// A recognized marker whose capability is denied is still consumed; it just
// has no effect.
func (p *parser) marker(rest string) int {
	next, size := utf8.DecodeRuneInString(rest)

	if next == RainbowCode {
		if p.check.Allowed(RainbowCapability) {
			p.setMode(rainbowMode{})
		}
		return size
	}

	if next == '#' {
		if m := gradientRe.FindStringSubmatchIndex(rest); m != nil {
			if stops := resolveStops(rest[m[2]:m[3]]); len(stops) >= 2 {
				if p.check.Allowed(GradientCapability) {
					p.setMode(gradientMode{colors: stops})
				}
				return m[1]
			}
		}
		if hex, ok := hexMarker(rest); ok {
			if p.check.Allowed(HexCapability) {
				c, _ := ParseHex(hex)
				p.setColor(c)
			}
			return 1 + len(hex)
		}
	}

	if c, ok := ColorByCode(next); ok {
		if p.check.Allowed(c.Capability()) {
			p.setColor(c.RGB)
		}
		return size
	}

	if f, ok := FormatByCode(next); ok {
		if p.check.Allowed(f.Capability()) {
			p.flush()
			p.applyFormat(f)
		}
		return size
	}

	return 0
}

// hexMarker returns the six digits of a "#rrggbb" at the start of rest that
// is not the first stop of a gradient.
func hexMarker(rest string) (string, bool) {
	if len(rest) < 7 {
		return "", false
	}
	for _, r := range rest[1:7] {
		if !isHexDigit(r) {
			return "", false
		}
	}
	if len(rest) > 7 && rest[7] == ':' {
		return "", false
	}
	return rest[1:7], true
}

// resolveStops resolves each colon separated token, dropping the ones that
// are neither a catalog name nor a hex color.
func resolveStops(list string) []RGB {
	toks := strings.Split(list, ":")
	stops := make([]RGB, 0, len(toks))
	for _, tok := range toks {
		if c, ok := ResolveColorToken(tok); ok {
			stops = append(stops, c)
		}
	}
	return stops
}

func (p *parser) setMode(m mode) {
	p.flush()
	p.mode = m
	p.color, p.hasColor = RGB{}, false
}

func (p *parser) setColor(c RGB) {
	p.flush()
	p.mode = plainMode{}
	p.color, p.hasColor = c, true
}

func (p *parser) applyFormat(f Format) {
	switch f {
	case Bold:
		p.style.Bold = true
	case Italic:
		p.style.Italic = true
	case Underline:
		p.style.Underline = true
	case Monospace:
		p.style.Monospace = true
	case Reset:
		p.mode = plainMode{}
		p.color, p.hasColor = RGB{}, false
		p.style = Style{}
	}
}

// flush turns the buffered text into segments using the styling in effect
// right now, then empties the buffer.
func (p *parser) flush() {
	if p.buf.Len() == 0 {
		return
	}
	text := p.buf.String()
	p.buf.Reset()

	stops := p.mode.stops()
	if stops == nil {
		p.out.Append(Segment{Text: text, Color: p.color, HasColor: p.hasColor, Style: p.style})
		return
	}
	runes := []rune(text)
	colors := MultiGradient(stops, len(runes))
	for i, r := range runes {
		p.out.Append(Segment{Text: string(r), Color: colors[i], HasColor: true, Style: p.style})
	}
}
