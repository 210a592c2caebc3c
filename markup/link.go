package markup

import "regexp"

// linkRe matches &(url)[text]; neither field may contain its closing bracket.
var linkRe = regexp.MustCompile(`&\(([^)]+)\)\[([^\]]+)\]`)

// chunk is one piece of link extractor output: either plain text still to be
// scanned for markers, or a finished link.
type chunk struct {
	text string
	url  string
}

func (c chunk) isLink() bool { return c.url != "" }

// extractLinks splits s into plain and link chunks in order. When links are
// not allowed, s comes back whole as a single plain chunk.
func extractLinks(s string, c Checker) []chunk {
	if !c.Allowed(LinkCapability) {
		return []chunk{{text: s}}
	}
	var out []chunk
	last := 0
	for _, m := range linkRe.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			out = append(out, chunk{text: s[last:m[0]]})
		}
		out = append(out, chunk{text: s[m[4]:m[5]], url: s[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(s) || len(out) == 0 {
		out = append(out, chunk{text: s[last:]})
	}
	return out
}
