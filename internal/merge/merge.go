package merge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kconf-dev/kconf/internal/kconfig"
)

// Merger combines an override set with a base configuration, writing the
// merged configuration one line at a time. A Merger consumes its override
// set, so each instance performs a single merge.
type Merger struct {
	overrides *kconfig.OverrideSet
	arch      string
}

// NewMerger constructs a merger for the given override set. When arch is
// non-empty, the merged output is tagged with a leading `# <arch>` line.
func NewMerger(overrides *kconfig.OverrideSet, arch string) *Merger {
	return &Merger{overrides: overrides, arch: arch}
}

// Merge streams the base configuration from base to out, substituting any
// keyed line whose key appears in the override set, then appends the
// override entries that never matched a base line. Every override key is
// emitted exactly once; base line order is preserved throughout.
func (m *Merger) Merge(base io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)

	if m.arch != "" {
		fmt.Fprintf(w, "# %s\n", m.arch)
	}

	scanner := kconfig.NewScanner(base)
	for scanner.Scan() {
		line := kconfig.ParseLine(scanner.Text())

		if line.Kind != kconfig.Passthrough {
			if text, ok := m.overrides.Take(line.Key); ok {
				fmt.Fprintln(w, text)
				continue
			}
		}

		fmt.Fprintln(w, line.Text)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read base config: %w", err)
	}

	for _, text := range m.overrides.Remaining() {
		fmt.Fprintln(w, text)
	}

	return w.Flush()
}

// Files merges the overrides file into the base config file, writing the
// merged configuration to out.
func Files(overridesPath string, basePath string, arch string, out io.Writer) error {
	if err := CheckInputs(overridesPath, basePath); err != nil {
		return err
	}

	overrides, err := kconfig.LoadOverrides(overridesPath)
	if err != nil {
		return err
	}

	base, err := os.Open(basePath)
	if err != nil {
		return fmt.Errorf("failed to open base config file: %w", err)
	}
	defer base.Close()

	return NewMerger(overrides, arch).Merge(base, out)
}

// CheckInputs verifies that both input files exist before any output is
// produced, naming the offending path otherwise.
func CheckInputs(overridesPath string, basePath string) error {
	inputs := []struct{ role, path string }{
		{"overrides", overridesPath},
		{"base", basePath},
	}

	for _, input := range inputs {
		if _, err := os.Stat(input.path); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s config file '%s' does not exist", input.role, input.path)
		}
	}

	return nil
}
