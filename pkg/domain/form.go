package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Kind is the value kind of a form field.
type Kind string

const (
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindNumber Kind = "number"
	KindList   Kind = "list" // ordered list of strings
)

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindBool, KindNumber, KindList:
		return true
	}
	return false
}

// Zero returns the empty value for the kind.
func (k Kind) Zero() any {
	switch k {
	case KindBool:
		return false
	case KindNumber:
		return float64(0)
	case KindList:
		return []string{}
	default:
		return ""
	}
}

// FormData maps field names to values. Values are one of
// string, bool, float64 or []string.
type FormData map[string]any

// Clone returns a deep copy. Lists are copied so the clone can be mutated
// without affecting the original.
func (f FormData) Clone() FormData {
	if f == nil {
		return nil
	}
	out := make(FormData, len(f))
	for k, v := range f {
		if list, ok := v.([]string); ok {
			cp := make([]string, len(list))
			copy(cp, list)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}

// Keys returns the field names in lexical order.
func (f FormData) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the string value of a field, or "" when missing or not a string.
func (f FormData) String(name string) string {
	s, _ := f[name].(string)
	return s
}

// Bool returns the bool value of a field.
func (f FormData) Bool(name string) bool {
	b, _ := f[name].(bool)
	return b
}

// Number returns the numeric value of a field.
func (f FormData) Number(name string) float64 {
	n, _ := f[name].(float64)
	return n
}

// List returns the list value of a field. The returned slice is shared; use
// Clone before mutating.
func (f FormData) List(name string) []string {
	l, _ := f[name].([]string)
	return l
}

// IsEmpty reports whether a field holds the empty value of its kind.
// Strings are trimmed before the check.
func (f FormData) IsEmpty(name string) bool {
	switch v := f[name].(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case []string:
		return len(v) == 0
	}
	return false
}

// UnmarshalJSON decodes a JSON object and normalizes its values to the
// supported kinds: numbers become float64 and string arrays become []string.
func (f *FormData) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		*f = nil
		return nil
	}

	out := make(FormData, len(raw))
	for k, v := range raw {
		nv, err := NormalizeValue(v)
		if err != nil {
			return fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = nv
	}
	*f = out
	return nil
}

// NormalizeValue converts a decoded JSON (or YAML) value into one of the
// supported FormData value types.
func NormalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case string, bool, float64:
		return val, nil
	case nil:
		return nil, nil
	case json.Number:
		n, err := val.Float64()
		if err != nil {
			return nil, err
		}
		return n, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case float32:
		return float64(val), nil
	case []string:
		cp := make([]string, len(val))
		copy(cp, val)
		return cp, nil
	case []any:
		list := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list item %d: expected string, got %T", i, item)
			}
			list = append(list, s)
		}
		return list, nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}
