package markup

import "strings"

// Capability ids consulted by the scanner and link extractor.
const (
	Prefix       = "simplecolor."
	ColorPrefix  = Prefix + "color."
	FormatPrefix = Prefix + "format."

	AllColors  = ColorPrefix + "*"
	AllFormats = FormatPrefix + "*"

	HexCapability      = ColorPrefix + "hex"
	GradientCapability = ColorPrefix + "gradient"
	RainbowCapability  = ColorPrefix + "rainbow"
	LinkCapability     = Prefix + "link"

	// Bypass grants every capability.
	Bypass = Prefix + "bypass"
)

// Subject is anything that can answer a raw permission question, such as a
// player or a configured group. Implementations must be safe for concurrent
// use and must not mutate shared state when asked.
type Subject interface {
	HasPermission(id string) bool
}

// Checker decides whether a capability is granted. Wildcards and the bypass
// capability are already folded in.
type Checker interface {
	Allowed(capability string) bool
}

type allowAll struct{}

func (allowAll) Allowed(string) bool { return true }

// AllowAll grants everything; it is used for trusted, system originated text.
var AllowAll Checker = allowAll{}

type subjectChecker struct {
	s Subject
}

func (c subjectChecker) Allowed(capability string) bool {
	if c.s.HasPermission(Bypass) {
		return true
	}
	if strings.HasPrefix(capability, ColorPrefix) && c.s.HasPermission(AllColors) {
		return true
	}
	if strings.HasPrefix(capability, FormatPrefix) && c.s.HasPermission(AllFormats) {
		return true
	}
	return c.s.HasPermission(capability)
}

// Gate wraps a subject in a Checker. A nil subject means all capabilities
// are granted.
func Gate(s Subject) Checker {
	if s == nil {
		return AllowAll
	}
	return subjectChecker{s}
}

// Capabilities is a fixed set of granted permission ids.
type Capabilities map[string]struct{}

// NewCapabilities builds a set from ids; empty ids are ignored.
func NewCapabilities(ids ...string) Capabilities {
	c := make(Capabilities, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			c[id] = struct{}{}
		}
	}
	return c
}

// HasPermission reports whether id is in the set.
func (c Capabilities) HasPermission(id string) bool {
	_, ok := c[id]
	return ok
}
