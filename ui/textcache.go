// Package ui renders the HUD and the raygui settings overlay.
package ui

import "fmt"

// TextCache memoizes formatted HUD strings by key. Each key keeps its last
// raw value and re-formats only when the value changes, so per-frame
// formatting cost is bounded by how often the displayed numbers move.
type TextCache struct {
	entries map[string]textEntry
}

type textEntry struct {
	intVal   int64
	floatVal float64
	strVal   string
	text     string
	valid    bool
}

// NewTextCache creates an empty cache.
func NewTextCache() *TextCache {
	return &TextCache{entries: make(map[string]textEntry)}
}

// Int returns format applied to v, cached under key.
func (c *TextCache) Int(key, format string, v int64) string {
	e, ok := c.entries[key]
	if ok && e.valid && e.intVal == v {
		return e.text
	}
	text := fmt.Sprintf(format, v)
	c.entries[key] = textEntry{intVal: v, text: text, valid: true}
	return text
}

// Float returns format applied to v, cached under key.
func (c *TextCache) Float(key, format string, v float64) string {
	e, ok := c.entries[key]
	if ok && e.valid && e.floatVal == v {
		return e.text
	}
	text := fmt.Sprintf(format, v)
	c.entries[key] = textEntry{floatVal: v, text: text, valid: true}
	return text
}

// Str returns format applied to v, cached under key.
func (c *TextCache) Str(key, format, v string) string {
	e, ok := c.entries[key]
	if ok && e.valid && e.strVal == v {
		return e.text
	}
	text := fmt.Sprintf(format, v)
	c.entries[key] = textEntry{strVal: v, text: text, valid: true}
	return text
}

// Len returns how many keys are cached.
func (c *TextCache) Len() int {
	return len(c.entries)
}
