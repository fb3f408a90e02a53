// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// IsGoRunBuild detects a binary built by 'go run', which lives in a
// temporary go-build directory instead of next to the project files.
var IsGoRunBuild = func(exeDir string) bool {
	return strings.Contains(filepath.ToSlash(exeDir), "/go-build")
}

// ForInputNotFound returns hints for a missing input document.
// baseDirFromExe is true when the directory was derived from the binary location.
func ForInputNotFound(baseDir string, baseDirFromExe bool) string {
	var hints []string

	if baseDirFromExe && IsGoRunBuild(baseDir) {
		hints = append(hints, "'go run' builds in a temp directory; pass --dir .")
	} else {
		hints = append(hints, "use --dir to point at the directory holding the document")
	}
	hints = append(hints, "use --input to bundle another file")

	return formatHints(hints)
}

// ForAssetNotFound returns a hint when a file differing only in case exists
// next to the missing asset. Returns "" when there is nothing to suggest.
func ForAssetNotFound(dir, filename string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e.Name() != filename && strings.EqualFold(e.Name(), filename) {
			return format("found " + e.Name() + " (asset names are case-sensitive)")
		}
	}
	return ""
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-htmlbundle/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/go-htmlbundle") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnresolved returns a hint for references the bundle still depends on.
func ForUnresolved() string {
	return format("list these files under assets in a config to inline them")
}

// ForOutputWrite returns hints for output write errors.
func ForOutputWrite() string {
	return format("check the directory is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
