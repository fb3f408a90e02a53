package main

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Usage text lists every flag
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, want := range []string{
		"Usage: htmlbundle",
		"--dir", "--input", "--output", "--config",
		"--audit", "--watch", "--print-config",
		"--quiet", "--verbose", "--version", "--help",
		"index_bundled.html",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
