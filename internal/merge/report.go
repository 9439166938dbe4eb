package merge

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/kconf-dev/kconf/internal/kconfig"
)

// ChangeKind describes how an override entry affects the base config.
type ChangeKind int

const (
	// Replaced means the override supersedes a keyed line in the base.
	Replaced ChangeKind = iota
	// Added means the override's key never appears in the base, so its
	// line is appended to the merged output.
	Added
)

// Change records a single difference a merge would make to a base config.
type Change struct {
	Key      string
	Kind     ChangeKind
	BaseText string
	Text     string
}

// Report walks the base config against the override set and returns the
// changes a merge would make, without emitting any merged output. Override
// entries whose text is identical to the base line are not reported.
func Report(overrides *kconfig.OverrideSet, base io.Reader) ([]Change, error) {
	changes := []Change{}

	scanner := kconfig.NewScanner(base)
	for scanner.Scan() {
		line := kconfig.ParseLine(scanner.Text())
		if line.Kind == kconfig.Passthrough {
			continue
		}

		text, ok := overrides.Take(line.Key)
		if !ok {
			continue
		}

		if text != line.Text {
			changes = append(changes, Change{
				Key:      line.Key,
				Kind:     Replaced,
				BaseText: line.Text,
				Text:     text,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read base config: %w", err)
	}

	for _, text := range overrides.Remaining() {
		line := kconfig.ParseLine(text)
		changes = append(changes, Change{Key: line.Key, Kind: Added, Text: text})
	}

	return changes, nil
}

// ReportFiles computes the change report for a pair of config files.
func ReportFiles(overridesPath string, basePath string) ([]Change, error) {
	if err := CheckInputs(overridesPath, basePath); err != nil {
		return nil, err
	}

	overrides, err := kconfig.LoadOverrides(overridesPath)
	if err != nil {
		return nil, err
	}

	base, err := os.Open(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open base config file: %w", err)
	}
	defer base.Close()

	return Report(overrides, base)
}

// Render writes a human-readable change report to w. Colors honour the
// package-level color.NoColor setting.
func Render(w io.Writer, changes []Change) {
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	for _, c := range changes {
		switch c.Kind {
		case Replaced:
			fmt.Fprintf(w, "%s %s\n", yellow.Sprint("~"), c.Key)
			fmt.Fprintf(w, "  - %s\n", c.BaseText)
			fmt.Fprintf(w, "  + %s\n", c.Text)
		case Added:
			fmt.Fprintf(w, "%s %s\n", green.Sprint("+"), c.Key)
			fmt.Fprintf(w, "  + %s\n", c.Text)
		}
	}
}
