package domain

import (
	"encoding/json"
	"strings"
)

// Body is a response body read as text and, when possible, decoded as JSON.
// A body that does not parse is kept as raw text; that is never an error.
type Body struct {
	Raw   string
	Value any
	JSON  bool
}

// ParseBody decodes raw as JSON, falling back to the raw text.
func ParseBody(raw []byte) Body {
	b := Body{Raw: string(raw)}
	if strings.TrimSpace(b.Raw) == "" {
		return b
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return b
	}

	b.Value = v
	b.JSON = true
	return b
}

// Pretty renders the body for display: indented JSON, or the raw text.
func (b Body) Pretty() string {
	if !b.JSON {
		return b.Raw
	}

	out, err := json.MarshalIndent(b.Value, "", "  ")
	if err != nil {
		return b.Raw
	}
	return string(out)
}

// Field returns the first non-empty string value among keys of a JSON object
// body, or "" when the body is not an object.
func (b Body) Field(keys ...string) string {
	obj, ok := b.Value.(map[string]any)
	if !ok {
		return ""
	}

	for _, k := range keys {
		if s, ok := obj[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// Object returns the nested object stored at key, if any.
func (b Body) Object(key string) (map[string]any, bool) {
	obj, ok := b.Value.(map[string]any)
	if !ok {
		return nil, false
	}

	inner, ok := obj[key].(map[string]any)
	return inner, ok
}
