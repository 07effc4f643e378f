package headers

import (
	"encoding/json"
	"strings"
)

// Kind discriminates a header Value.
type Kind int

const (
	// KindSingle holds one value; the name appeared once.
	KindSingle Kind = iota
	// KindMultiple holds every value, in order, once a name repeats.
	KindMultiple
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// Value is a header value: either a single string or an ordered list.
// The zero Value is Single("").
type Value struct {
	kind   Kind
	single string
	multi  []string
}

// Single builds a single-valued Value.
func Single(s string) Value {
	return Value{kind: KindSingle, single: s}
}

// Multiple builds a list-valued Value. The slice is copied.
func Multiple(values ...string) Value {
	return Value{kind: KindMultiple, multi: append([]string(nil), values...)}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Single returns the value and true if v is single-valued.
func (v Value) Single() (string, bool) {
	if v.kind != KindSingle {
		return "", false
	}
	return v.single, true
}

// Values returns every value in order. A single value yields a
// one-element slice. The returned slice is a copy.
func (v Value) Values() []string {
	if v.kind == KindSingle {
		return []string{v.single}
	}
	return append([]string(nil), v.multi...)
}

// Len returns how many times the header appeared.
func (v Value) Len() int {
	if v.kind == KindSingle {
		return 1
	}
	return len(v.multi)
}

// add appends s, upgrading a single value to a list.
func (v Value) add(s string) Value {
	if v.kind == KindSingle {
		return Multiple(v.single, s)
	}
	v.multi = append(v.multi, s)
	return v
}

func (v Value) String() string {
	if v.kind == KindSingle {
		return v.single
	}
	return strings.Join(v.multi, ", ")
}

// MarshalJSON encodes a single value as a string and a list as an array.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindSingle {
		return json.Marshal(v.single)
	}
	return json.Marshal(v.multi)
}

// MarshalYAML mirrors MarshalJSON.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.kind == KindSingle {
		return v.single, nil
	}
	return v.multi, nil
}
