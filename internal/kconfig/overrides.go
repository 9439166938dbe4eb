package kconfig

import (
	"fmt"
	"io"
	"os"
)

// OverrideSet is an insertion-ordered mapping of configuration key to the
// full line text that should win during a merge. Entries are consumed as
// they match lines in a base config; whatever remains afterwards is
// appended to the end of the merged output.
type OverrideSet struct {
	order []string
	lines map[string]string
}

// NewOverrideSet constructs an empty override set.
func NewOverrideSet() *OverrideSet {
	return &OverrideSet{lines: map[string]string{}}
}

// Add records a keyed line. A key seen before keeps its original position
// but takes the new line text.
func (o *OverrideSet) Add(key, text string) {
	if _, ok := o.lines[key]; !ok {
		o.order = append(o.order, key)
	}
	o.lines[key] = text
}

// Take returns the line recorded for a key and consumes the entry.
func (o *OverrideSet) Take(key string) (string, bool) {
	text, ok := o.lines[key]
	if ok {
		delete(o.lines, key)
	}
	return text, ok
}

// Len reports the number of unconsumed entries in the set.
func (o *OverrideSet) Len() int { return len(o.lines) }

// Remaining returns the unconsumed lines, ordered by when their keys were
// first read.
func (o *OverrideSet) Remaining() []string {
	remaining := []string{}
	for _, key := range o.order {
		if text, ok := o.lines[key]; ok {
			remaining = append(remaining, text)
		}
	}
	return remaining
}

// Fold merges another override set into this one. Entries from the other
// set win on key collisions.
func (o *OverrideSet) Fold(other *OverrideSet) {
	for _, key := range other.order {
		if text, ok := other.lines[key]; ok {
			o.Add(key, text)
		}
	}
}

// ReadOverrides parses override lines from r into an OverrideSet. Lines
// carrying no configuration key are dropped.
func ReadOverrides(r io.Reader) (*OverrideSet, error) {
	set := NewOverrideSet()

	scanner := NewScanner(r)
	for scanner.Scan() {
		line := ParseLine(scanner.Text())
		if line.Kind == Passthrough {
			continue
		}
		set.Add(line.Key, line.Text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read overrides: %w", err)
	}

	return set, nil
}

// LoadOverrides reads an overrides file from disk into an OverrideSet.
func LoadOverrides(path string) (*OverrideSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open overrides file: %w", err)
	}
	defer f.Close()

	return ReadOverrides(f)
}
