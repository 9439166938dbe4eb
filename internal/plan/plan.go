package plan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kconf-dev/kconf/internal/kconfig"
	"github.com/kconf-dev/kconf/internal/merge"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Target describes a single merge to perform: a base config combined with
// an ordered stack of override files. Later override files take precedence
// over earlier ones.
type Target struct {
	Name      string   `yaml:"name"`
	Arch      string   `yaml:"arch"`
	Base      string   `yaml:"base"`
	Overrides []string `yaml:"overrides"`
	Output    string   `yaml:"output"`
}

// Plan represents a set of merge targets to be processed in one batch.
type Plan struct {
	Targets []Target `yaml:"targets"`
}

// Load reads and parses a plan file.
func Load(path string) (*Plan, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	plan := &Plan{}
	if err := yaml.Unmarshal(contents, plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}

	return plan, nil
}

// Execute validates the plan, then merges every target concurrently,
// writing each merged config to its output path. Relative output paths are
// resolved against outputDir.
func (p *Plan) Execute(outputDir string) error {
	err := p.validate()
	if err != nil {
		return fmt.Errorf("failed to validate plan: %w", err)
	}

	var eg errgroup.Group

	for _, target := range p.Targets {
		target := target
		eg.Go(func() error { return runTarget(target, outputDir) })
	}

	return eg.Wait()
}

// validate returns an error if the plan contains problems that would
// prevent a successful batch merge.
func (p *Plan) validate() error {
	var eg errgroup.Group

	// Run the validators in parallel in an errgroup
	for _, v := range planValidators {
		v := v
		eg.Go(func() error { return v(p) })
	}

	return eg.Wait()
}

// runTarget folds a target's override layers together, merges them into the
// target's base config and writes the result to the target's output path.
func runTarget(target Target, outputDir string) error {
	overrides := kconfig.NewOverrideSet()

	for _, path := range target.Overrides {
		layer, err := kconfig.LoadOverrides(path)
		if err != nil {
			return fmt.Errorf("failed to load overrides for target '%s': %w", target.Name, err)
		}
		overrides.Fold(layer)
	}

	base, err := os.Open(target.Base)
	if err != nil {
		return fmt.Errorf("failed to open base config for target '%s': %w", target.Name, err)
	}
	defer base.Close()

	outputPath := target.Output
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(outputDir, outputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory for target '%s': %w", target.Name, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file for target '%s': %w", target.Name, err)
	}
	defer out.Close()

	if err := merge.NewMerger(overrides, target.Arch).Merge(base, out); err != nil {
		return fmt.Errorf("failed to merge target '%s': %w", target.Name, err)
	}

	slog.Info("Merged target", "target", target.Name, "output", outputPath)

	return nil
}
