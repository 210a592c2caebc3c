package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColorFormat is returned when a hex color string is not exactly
// six hex digits (after an optional leading '#').
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGB is an immutable 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as six lowercase hex digits without a '#' prefix.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return "#" + c.Hex() }

// LegacyColor is one of the 16 fixed chat colors addressed by a single code
// character.
type LegacyColor struct {
	Code rune
	Name string
	RGB  RGB
}

// Capability is the permission id that gates this color.
func (c LegacyColor) Capability() string { return ColorPrefix + c.Name }

// String returns the section-sign form of the code, eg. "§c".
func (c LegacyColor) String() string { return string(SectionSign) + string(c.Code) }

// Apply prefixes text with the color's code.
func (c LegacyColor) Apply(text string) string { return c.String() + text }

var (
	Black       = LegacyColor{'0', "black", RGB{0, 0, 0}}
	DarkBlue    = LegacyColor{'1', "dark_blue", RGB{0, 0, 170}}
	DarkGreen   = LegacyColor{'2', "dark_green", RGB{0, 170, 0}}
	DarkAqua    = LegacyColor{'3', "dark_aqua", RGB{0, 170, 170}}
	DarkRed     = LegacyColor{'4', "dark_red", RGB{170, 0, 0}}
	DarkPurple  = LegacyColor{'5', "dark_purple", RGB{170, 0, 170}}
	Gold        = LegacyColor{'6', "gold", RGB{255, 170, 0}}
	Gray        = LegacyColor{'7', "gray", RGB{170, 170, 170}}
	DarkGray    = LegacyColor{'8', "dark_gray", RGB{85, 85, 85}}
	Blue        = LegacyColor{'9', "blue", RGB{85, 85, 255}}
	Green       = LegacyColor{'a', "green", RGB{85, 255, 85}}
	Aqua        = LegacyColor{'b', "aqua", RGB{85, 255, 255}}
	Red         = LegacyColor{'c', "red", RGB{255, 85, 85}}
	LightPurple = LegacyColor{'d', "light_purple", RGB{255, 85, 255}}
	Yellow      = LegacyColor{'e', "yellow", RGB{255, 255, 85}}
	White       = LegacyColor{'f', "white", RGB{255, 255, 255}}
)

var legacyColors = [...]LegacyColor{
	Black, DarkBlue, DarkGreen, DarkAqua, DarkRed, DarkPurple, Gold, Gray,
	DarkGray, Blue, Green, Aqua, Red, LightPurple, Yellow, White,
}

var (
	colorsByCode = make(map[rune]LegacyColor, len(legacyColors))
	colorsByName = make(map[string]LegacyColor, len(legacyColors))
)

func init() {
	for _, c := range legacyColors {
		colorsByCode[c.Code] = c
		colorsByName[c.Name] = c
	}
}

// Colors returns the legacy color catalog in code order.
func Colors() []LegacyColor {
	out := make([]LegacyColor, len(legacyColors))
	copy(out, legacyColors[:])
	return out
}

// ColorByCode looks up a legacy color by its code character, ignoring case.
func ColorByCode(code rune) (LegacyColor, bool) {
	c, ok := colorsByCode[lowerASCII(code)]
	return c, ok
}

// ColorByName looks up a legacy color by exact name, ignoring case.
func ColorByName(name string) (LegacyColor, bool) {
	c, ok := colorsByName[strings.ToLower(name)]
	return c, ok
}

// ParseHex parses "rrggbb" or "#rrggbb".
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must be 6 characters", ErrInvalidColorFormat, s)
	}
	var v [3]uint8
	for i := 0; i < 6; i++ {
		n, ok := hexValue(hex[i])
		if !ok {
			return RGB{}, fmt.Errorf("%w: %q must contain only 0-9, a-f", ErrInvalidColorFormat, s)
		}
		v[i/2] = v[i/2]<<4 | n
	}
	return RGB{v[0], v[1], v[2]}, nil
}

// FormatHex is the function form of RGB.Hex.
func FormatHex(c RGB) string { return c.Hex() }

// ResolveColorToken resolves a gradient stop: a catalog color name first,
// then a hex color. It reports false if neither matches.
func ResolveColorToken(tok string) (RGB, bool) {
	if c, ok := ColorByName(tok); ok {
		return c.RGB, true
	}
	c, err := ParseHex(tok)
	if err != nil {
		return RGB{}, false
	}
	return c, true
}

func hexValue(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
