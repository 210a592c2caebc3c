package markup

import "strings"

// Format is one of the fixed text format codes.
type Format uint8

const (
	Bold Format = iota
	Italic
	Underline
	Monospace
	Reset
)

var formatInfo = [...]struct {
	code rune
	name string
}{
	Bold:      {'l', "bold"},
	Italic:    {'o', "italic"},
	Underline: {'n', "underline"},
	Monospace: {'m', "monospace"},
	Reset:     {'r', "reset"},
}

var (
	formatsByCode = make(map[rune]Format, len(formatInfo))
	formatsByName = make(map[string]Format, len(formatInfo))
)

func init() {
	for f, info := range formatInfo {
		formatsByCode[info.code] = Format(f)
		formatsByName[info.name] = Format(f)
	}
}

// Code is the single character that selects this format after a leader.
func (f Format) Code() rune { return formatInfo[f].code }

// Name is the lowercase name, eg. "bold".
func (f Format) Name() string { return formatInfo[f].name }

// Capability is the permission id that gates this format.
func (f Format) Capability() string { return FormatPrefix + f.Name() }

// String returns the section-sign form of the code, eg. "§l".
func (f Format) String() string { return string(SectionSign) + string(f.Code()) }

// Formats returns every format in code order.
func Formats() []Format {
	return []Format{Bold, Italic, Underline, Monospace, Reset}
}

// FormatByCode looks up a format by its code character, ignoring case.
func FormatByCode(code rune) (Format, bool) {
	f, ok := formatsByCode[lowerASCII(code)]
	return f, ok
}

// FormatByName looks up a format by name, ignoring case.
func FormatByName(name string) (Format, bool) {
	f, ok := formatsByName[strings.ToLower(name)]
	return f, ok
}
