package snbt

import "strconv"

// Byte is a tagged byte like "1b".
type Byte int8

// Bool returns the byte form of a boolean flag, 1b or 0b.
func Bool(v bool) Byte {
	if v {
		return 1
	}
	return 0
}

func (b Byte) SNBT() string { return strconv.Itoa(int(b)) + "b" }
