package markup

import "regexp"

const stopTok = `(?:[0-9a-fA-F]{6}|[a-zA-Z_]+)`

var (
	stripGradientRe = regexp.MustCompile(`[&§]#` + stopTok + `(?::` + stopTok + `)+`)
	stripHexRe      = regexp.MustCompile(`[&§]#[0-9a-fA-F]{6}`)
	stripCodeRe     = regexp.MustCompile(`[&§][0-9a-fA-FlLoOnNmMrR*]`)
	stripLegacyRe   = regexp.MustCompile(`[&§][0-9a-fA-FlLoOnNmMrR]`)
)

// StripAll removes every kind of markup: links keep their text, while
// gradient, hex, rainbow, color and format markers are dropped. The passes
// repeat until nothing changes, so removing one marker can never leave a new
// one behind; StripAll(StripAll(s)) == StripAll(s).
func StripAll(s string) string {
	for {
		next := stripOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func stripOnce(s string) string {
	s = linkRe.ReplaceAllString(s, "$2")
	s = stripGradientRe.ReplaceAllString(s, "")
	s = stripHexRe.ReplaceAllString(s, "")
	return stripCodeRe.ReplaceAllString(s, "")
}

// StripLegacy removes only single character color and format codes, leaving
// hex, gradient, rainbow and link markup alone.
func StripLegacy(s string) string {
	return stripLegacyRe.ReplaceAllString(s, "")
}
