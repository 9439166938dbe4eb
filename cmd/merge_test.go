package cmd

import (
	"strings"
	"testing"
)

func TestMergeArgsValidation(t *testing.T) {
	type test struct {
		summary string
		args    []string
	}

	tests := []test{
		{summary: "no input files", args: []string{"merge"}},
		{summary: "only one input file", args: []string{"merge", "overrides"}},
		{summary: "too many arguments", args: []string{"merge", "overrides", "base.config", "x86_64", "extra"}},
	}

	for _, tc := range tests {
		cmd := rootCmd()
		cmd.SetArgs(tc.args)

		err := cmd.Execute()
		if err == nil {
			t.Fatalf("%s: expected a usage error", tc.summary)
		}
		if !strings.Contains(err.Error(), mergeUsage) {
			t.Fatalf("%s: expected error to carry usage reminder %q, got: %v", tc.summary, mergeUsage, err)
		}
	}
}
