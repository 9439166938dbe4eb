package kconfig

import (
	"bufio"
	"io"
)

// maxLineLen bounds the longest config line the scanners accept. Kernel
// configs can carry values far past bufio's default token limit, e.g. a
// long CONFIG_CMDLINE.
const maxLineLen = 1024 * 1024

// NewScanner returns a line scanner sized for long config lines.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLen)
	return scanner
}
