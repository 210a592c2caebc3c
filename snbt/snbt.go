// Package snbt writes stringified NBT, the text form of the tag format used
// by Minecraft-style game servers for chat components and quest data.
package snbt

import (
	"bytes"
)

// Value is the generic SNBT value type.
//   - Compound or map[string]any for compounds
//   - []any for lists
//   - string for strings
//   - int64, float64 and friends for numbers
//   - Byte for tagged bytes, which is also how booleans are usually stored
//   - bool, written as true/false
type Value = any

// Pair is one entry of an ordered compound.
type Pair struct {
	Key   string
	Value Value
}

// Compound is a compound whose keys are written in insertion order, unlike
// map[string]any which is written with sorted keys.
type Compound []Pair

// Set appends or replaces key.
func (c *Compound) Set(key string, v Value) {
	for i := range *c {
		if (*c)[i].Key == key {
			(*c)[i].Value = v
			return
		}
	}
	*c = append(*c, Pair{key, v})
}

// Marshal encodes v to a string.
func Marshal(v Value) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
