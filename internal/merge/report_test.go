package merge

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/kconf-dev/kconf/internal/kconfig"
)

func TestReport(t *testing.T) {
	overrides := strings.Join([]string{
		"CONFIG_FOO=y",
		"CONFIG_BAR=y",
		"# CONFIG_BAZ is not set",
		"CONFIG_NEW=m",
	}, "\n")

	base := strings.Join([]string{
		"# Generated config",
		"# CONFIG_FOO is not set",
		"CONFIG_BAR=y",
		"CONFIG_BAZ=y",
		"CONFIG_UNTOUCHED=y",
	}, "\n")

	set, err := kconfig.ReadOverrides(strings.NewReader(overrides))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	changes, err := Report(set, strings.NewReader(base))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []Change{
		{Key: "CONFIG_FOO", Kind: Replaced, BaseText: "# CONFIG_FOO is not set", Text: "CONFIG_FOO=y"},
		{Key: "CONFIG_BAZ", Kind: Replaced, BaseText: "CONFIG_BAZ=y", Text: "# CONFIG_BAZ is not set"},
		{Key: "CONFIG_NEW", Kind: Added, Text: "CONFIG_NEW=m"},
	}

	if !reflect.DeepEqual(expected, changes) {
		t.Fatalf("expected: %v, got: %v", expected, changes)
	}
}

func TestRender(t *testing.T) {
	noColor := color.NoColor
	defer func() { color.NoColor = noColor }()
	color.NoColor = true

	changes := []Change{
		{Key: "CONFIG_FOO", Kind: Replaced, BaseText: "# CONFIG_FOO is not set", Text: "CONFIG_FOO=y"},
		{Key: "CONFIG_NEW", Kind: Added, Text: "CONFIG_NEW=m"},
	}

	out := &bytes.Buffer{}
	Render(out, changes)

	expected := strings.Join([]string{
		"~ CONFIG_FOO",
		"  - # CONFIG_FOO is not set",
		"  + CONFIG_FOO=y",
		"+ CONFIG_NEW",
		"  + CONFIG_NEW=m",
		"",
	}, "\n")

	if out.String() != expected {
		t.Fatalf("expected: %q, got: %q", expected, out.String())
	}
}
