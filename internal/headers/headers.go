// Package headers parses blocks of "Name: value" lines into a map keyed by
// lower-cased name. A name seen once maps to a single value; a repeated
// name maps to the ordered list of all its values.
package headers

import (
	"strings"

	"drillbook/internal/logging"

	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v3"
)

// Map holds parsed headers in order of first appearance.
type Map struct {
	om *orderedmap.OrderedMap
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{om: orderedmap.New()}
}

// Parse splits raw on newlines and adds every "name:value" line to a new Map.
// Only the first colon separates name from value. Lines without a colon are
// skipped. Empty values are kept.
func Parse(raw string) *Map {
	log := logging.Get(logging.CategoryHeaders)

	m := NewMap()
	for i, line := range strings.Split(raw, "\n") {
		name, value, found := strings.Cut(line, ":")
		if !found {
			if strings.TrimSpace(line) != "" {
				log.Debug("skipping line %d without colon: %q", i+1, line)
			}
			continue
		}
		m.Add(name, value)
	}
	log.Debug("parsed %d header names", m.Len())
	return m
}

// Add records one occurrence of name. The name is trimmed and lower-cased,
// the value trimmed.
func (m *Map) Add(name, value string) {
	key := normalize(name)
	value = strings.TrimSpace(value)

	existing, ok := m.lookup(key)
	if !ok {
		m.om.Set(key, Single(value))
		return
	}
	m.om.Set(key, existing.add(value))
}

// Get returns the value for name, matched case-insensitively.
func (m *Map) Get(name string) (Value, bool) {
	return m.lookup(normalize(name))
}

// Names returns the normalized header names in order of first appearance.
func (m *Map) Names() []string {
	keys := m.om.Keys()
	names := make([]string, len(keys))
	copy(names, keys)
	return names
}

// Len returns the number of distinct names.
func (m *Map) Len() int {
	return len(m.om.Keys())
}

// Each calls fn for every name in order.
func (m *Map) Each(fn func(name string, v Value)) {
	for _, name := range m.om.Keys() {
		v, _ := m.lookup(name)
		fn(name, v)
	}
}

// MarshalJSON encodes the map as an object with keys in appearance order.
func (m *Map) MarshalJSON() ([]byte, error) {
	return m.om.MarshalJSON()
}

// MarshalYAML encodes the map as a YAML mapping with keys in appearance order.
func (m *Map) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range m.om.Keys() {
		v, _ := m.lookup(name)

		var valueNode yaml.Node
		if err := valueNode.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&valueNode,
		)
	}
	return node, nil
}

func (m *Map) lookup(key string) (Value, bool) {
	raw, ok := m.om.Get(key)
	if !ok {
		return Value{}, false
	}
	return raw.(Value), true
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
