package vdom

import "sort"

// ChildrenKey is the reserved Config key holding the element's children.
const ChildrenKey = "children"

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// A creates an Attr with the given key and value.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Config is an insertion-ordered attribute map. Keys are unique; setting an
// existing key replaces its value in place. A nil *Config is empty.
type Config struct {
	keys   []string
	values map[string]any
}

// NewConfig creates a Config from attrs in order. Empty attrs are skipped.
func NewConfig(attrs ...Attr) *Config {
	c := &Config{values: make(map[string]any, len(attrs))}
	for _, a := range attrs {
		if a.IsEmpty() {
			continue
		}
		c.Set(a.Key, a.Value)
	}
	return c
}

// FromMap creates a Config from m. Go maps carry no order, so keys are
// sorted to keep the result deterministic.
func FromMap(m map[string]any) *Config {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c := &Config{values: make(map[string]any, len(m))}
	for _, k := range keys {
		c.Set(k, m[k])
	}
	return c
}

// Set stores value under key, appending key if it is new.
func (c *Config) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.values[key]
	return v, ok
}

// Value returns the value stored under key, or nil.
func (c *Config) Value(key string) any {
	v, _ := c.Get(key)
	return v
}

// Keys returns the keys in insertion order.
func (c *Config) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of keys, including children.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Children returns the children value and whether it is present and non-nil.
func (c *Config) Children() (any, bool) {
	v, ok := c.Get(ChildrenKey)
	return v, ok && v != nil
}

// Attrs returns the pairs in insertion order.
func (c *Config) Attrs() []Attr {
	if c == nil {
		return nil
	}
	out := make([]Attr, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, Attr{Key: k, Value: c.values[k]})
	}
	return out
}
