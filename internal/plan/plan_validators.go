package plan

import (
	"fmt"
	"slices"
)

// planValidators is a list of validators used to verify a plan
var planValidators = []func(p *Plan) error{
	validateTargetFields,
	validateUniqueTargetNames,
	validateUniqueOutputs,
}

// validateTargetFields ensures every target carries the fields required to
// perform a merge.
func validateTargetFields(p *Plan) error {
	if len(p.Targets) == 0 {
		return fmt.Errorf("plan contains no targets")
	}

	for _, t := range p.Targets {
		if t.Name == "" {
			return fmt.Errorf("plan contains a target with no name")
		}
		if t.Base == "" {
			return fmt.Errorf("target '%s' has no base config", t.Name)
		}
		if len(t.Overrides) == 0 {
			return fmt.Errorf("target '%s' has no override files", t.Name)
		}
		if t.Output == "" {
			return fmt.Errorf("target '%s' has no output path", t.Name)
		}
	}

	return nil
}

// validateUniqueTargetNames ensures no two targets share a name.
func validateUniqueTargetNames(p *Plan) error {
	names := []string{}

	for _, t := range p.Targets {
		if slices.Contains(names, t.Name) {
			return fmt.Errorf("duplicate target name: '%s'", t.Name)
		}
		names = append(names, t.Name)
	}

	return nil
}

// validateUniqueOutputs ensures no two targets write to the same output
// path, which would race during a concurrent batch merge.
func validateUniqueOutputs(p *Plan) error {
	outputs := []string{}

	for _, t := range p.Targets {
		if slices.Contains(outputs, t.Output) {
			return fmt.Errorf("multiple targets write to output path: '%s'", t.Output)
		}
		outputs = append(outputs, t.Output)
	}

	return nil
}
