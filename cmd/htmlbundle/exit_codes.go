package main

import (
	"errors"
	"os"

	htmlbundle "github.com/alnah/go-htmlbundle"
	"github.com/alnah/go-htmlbundle/internal/config"
	"github.com/alnah/go-htmlbundle/internal/watch"
)

// Exit codes for the htmlbundle CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// A missing input document is reported but exits 0.
const (
	ExitSuccess = 0 // Bundle written, or input missing and reported
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Unreadable input or asset, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrConflictingFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrNoAssets) ||
		errors.Is(err, config.ErrDuplicateAsset) ||
		errors.Is(err, config.ErrInvalidAsset) ||
		errors.Is(err, config.ErrInvalidOutput) ||
		errors.Is(err, config.ErrEmptyInput) ||
		errors.Is(err, config.ErrInvalidInput) ||
		errors.Is(err, htmlbundle.ErrInvalidAsset) ||
		errors.Is(err, htmlbundle.ErrNoAssets) ||
		errors.Is(err, htmlbundle.ErrInvalidBaseDir) ||
		errors.Is(err, htmlbundle.ErrInvalidOutput) ||
		errors.Is(err, watch.ErrNoFiles) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, htmlbundle.ErrReadInput) ||
		errors.Is(err, htmlbundle.ErrInvalidEncoding) ||
		errors.Is(err, htmlbundle.ErrReadAsset) ||
		errors.Is(err, htmlbundle.ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
