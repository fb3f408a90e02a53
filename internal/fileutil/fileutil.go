// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath      = errors.New("path cannot be empty")
	ErrExecutablePath = errors.New("cannot determine executable location")
)

// bundledSuffix is appended to the input stem to derive the output name.
const bundledSuffix = "_bundled"

// WriteFileAtomic writes content to path through a temporary sibling file
// that is renamed into place, so readers never observe a partial document.
// An existing file at path is replaced.
func WriteFileAtomic(path, content string, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmpFile, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved so a linked binary still finds the files next to its target.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecutablePath, err)
	}
	if real, err := filepath.EvalSymlinks(exe); err == nil {
		exe = real
	}
	return filepath.Dir(exe), nil
}

// BundledName derives the output file name for an input file name.
//
// Examples:
//   - "index.html" -> "index_bundled.html"
//   - "page.htm"   -> "page_bundled.htm"
//   - "README"     -> "README_bundled"
//   - ".hidden"    -> ".hidden_bundled"
func BundledName(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		return base + bundledSuffix
	}
	return stem + bundledSuffix + ext
}

// FormatKB renders a byte count as kilobytes (1024 bytes) with two decimals.
func FormatKB(n int64) string {
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "bundle" -> false (name)
//   - "./bundle.yaml" -> true (relative path)
//   - "C:\cfg\bundle.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
