package app

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// M is a decoded JSON request body with some typed accessors.
type M map[string]any

// maxBody bounds the size of API request bodies.
const maxBody = 1 << 20

// decodeM reads a JSON object from the request body.
func decodeM(w http.ResponseWriter, r *http.Request) (M, error) {
	var m M
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(&m); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty body")
		}
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("expected a json object")
	}
	return m, nil
}

// Has returns true if m has a value for key.
func (m M) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// GetString returns the value of key as a string, or ""
func (m M) GetString(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// GetBool returns the value of key as a bool, or false.
func (m M) GetBool(key string) bool {
	v, _ := m[key].(bool)
	return v
}

// GetAnys returns the value for key as a slice of any.
func (m M) GetAnys(key string) []any {
	v, _ := m[key].([]any)
	return v
}

// GetStrings returns the value for key as a string slice. Non-strings are skipped.
func (m M) GetStrings(key string) []string {
	v := m.GetAnys(key)
	ss := make([]string, 0, len(v))
	for _, x := range v {
		if s, ok := x.(string); ok {
			ss = append(ss, s)
		}
	}
	return ss
}
