package markup

import (
	"errors"
	"strings"
)

// HexCode returns the marker for a hex color, eg. HexCode("#FF8800") is
// "&#FF8800".
func HexCode(hex string) (string, error) {
	if _, err := ParseHex(hex); err != nil {
		return "", err
	}
	return "&#" + strings.TrimPrefix(hex, "#"), nil
}

// GradientCode returns a gradient marker over colors. Each color may be
// "#rrggbb", a catalog name (emitted as its hex value), or anything else,
// which is passed through as is.
func GradientCode(colors ...string) (string, error) {
	if len(colors) < 2 {
		return "", errors.New("gradient requires at least 2 colors")
	}
	var b strings.Builder
	b.WriteString("&#")
	for i, c := range colors {
		if i > 0 {
			b.WriteByte(':')
		}
		switch named, ok := ColorByName(c); {
		case strings.HasPrefix(c, "#"):
			b.WriteString(c[1:])
		case ok:
			b.WriteString(named.RGB.Hex())
		default:
			b.WriteString(c)
		}
	}
	return b.String(), nil
}

// LinkCode returns the marker for a link.
func LinkCode(url, text string) string {
	return "&(" + url + ")[" + text + "]"
}

// translatable are the codes rewritten by TranslateAlternateColorCodes; k is
// the obfuscated code, which the scanner does not style but hosts may.
const translatable = "0123456789AaBbCcDdEeFfKkLlMmNnOoRr"

// TranslateAlternateColorCodes rewrites alt followed by a color or format
// code into the section-sign form with a lowercase code.
func TranslateAlternateColorCodes(alt rune, s string) string {
	rs := []rune(s)
	for i := 0; i < len(rs)-1; i++ {
		if rs[i] == alt && strings.ContainsRune(translatable, rs[i+1]) {
			rs[i] = SectionSign
			rs[i+1] = lowerASCII(rs[i+1])
		}
	}
	return string(rs)
}
