package kconfig

import (
	"regexp"
	"strings"
)

// LineKind classifies a single line of a kernel-style configuration file.
type LineKind int

const (
	// Passthrough is any line carrying no configuration key: comments,
	// blank lines, arbitrary text.
	Passthrough LineKind = iota
	// Set is a line of the form `CONFIG_<NAME>=<value>`.
	Set
	// Unset is a line of the form `# CONFIG_<NAME> is not set`.
	Unset
)

var (
	setPattern   = regexp.MustCompile(`^(CONFIG_\w+)=`)
	unsetPattern = regexp.MustCompile(`^#\s+(CONFIG_\w+)\s+is not set`)
)

// Line is one parsed line of a configuration file. Text holds the trimmed
// original line; Key is empty for passthrough lines.
type Line struct {
	Kind LineKind
	Key  string
	Text string
}

// ParseLine classifies a raw configuration line, stripping surrounding
// whitespace before matching. The "unset" form tolerates arbitrary
// horizontal whitespace between the '#' and the key.
func ParseLine(raw string) Line {
	text := strings.TrimSpace(raw)

	if m := setPattern.FindStringSubmatch(text); m != nil {
		return Line{Kind: Set, Key: m[1], Text: text}
	}

	if m := unsetPattern.FindStringSubmatch(text); m != nil {
		return Line{Kind: Unset, Key: m[1], Text: text}
	}

	return Line{Kind: Passthrough, Text: text}
}
