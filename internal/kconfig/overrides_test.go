package kconfig

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadOverrides(t *testing.T) {
	contents := strings.Join([]string{
		"# This comment is dropped",
		"CONFIG_FOO=y",
		"",
		"# CONFIG_BAR is not set",
		"CONFIG_BAZ=m",
		"CONFIG_FOO=n",
	}, "\n")

	set, err := ReadOverrides(strings.NewReader(contents))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if set.Len() != 3 {
		t.Fatalf("expected 3 entries, got: %d", set.Len())
	}

	// Duplicate key keeps its first-read position but takes the later text.
	expected := []string{"CONFIG_FOO=n", "# CONFIG_BAR is not set", "CONFIG_BAZ=m"}
	if !reflect.DeepEqual(expected, set.Remaining()) {
		t.Fatalf("expected: %v, got: %v", expected, set.Remaining())
	}
}

func TestReadOverridesLongLine(t *testing.T) {
	// Values like CONFIG_CMDLINE can run far past bufio's default 64KiB
	// token limit.
	long := "CONFIG_CMDLINE=\"" + strings.Repeat("console=ttyS0 ", 8192) + "\""

	set, err := ReadOverrides(strings.NewReader(long + "\nCONFIG_FOO=y\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, ok := set.Take("CONFIG_CMDLINE")
	if !ok || text != long {
		t.Fatalf("expected long CONFIG_CMDLINE line to be read intact")
	}
}

func TestOverrideSetTake(t *testing.T) {
	set := NewOverrideSet()
	set.Add("CONFIG_FOO", "CONFIG_FOO=y")
	set.Add("CONFIG_BAR", "# CONFIG_BAR is not set")

	text, ok := set.Take("CONFIG_FOO")
	if !ok || text != "CONFIG_FOO=y" {
		t.Fatalf("expected to take CONFIG_FOO=y, got: %q (%v)", text, ok)
	}

	// A consumed entry cannot be taken twice.
	if _, ok := set.Take("CONFIG_FOO"); ok {
		t.Fatalf("expected CONFIG_FOO to be consumed")
	}

	expected := []string{"# CONFIG_BAR is not set"}
	if !reflect.DeepEqual(expected, set.Remaining()) {
		t.Fatalf("expected: %v, got: %v", expected, set.Remaining())
	}
}

func TestOverrideSetFold(t *testing.T) {
	base := NewOverrideSet()
	base.Add("CONFIG_FOO", "CONFIG_FOO=y")
	base.Add("CONFIG_BAR", "CONFIG_BAR=y")

	layer := NewOverrideSet()
	layer.Add("CONFIG_BAR", "# CONFIG_BAR is not set")
	layer.Add("CONFIG_NEW", "CONFIG_NEW=m")

	base.Fold(layer)

	expected := []string{"CONFIG_FOO=y", "# CONFIG_BAR is not set", "CONFIG_NEW=m"}
	if !reflect.DeepEqual(expected, base.Remaining()) {
		t.Fatalf("expected: %v, got: %v", expected, base.Remaining())
	}
}
