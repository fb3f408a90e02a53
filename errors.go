package htmlbundle

import "errors"

// Sentinel errors for library operations.
var (
	// Fatal: nothing is written when one of these is returned.
	ErrInputNotFound   = errors.New("input file not found")
	ErrReadInput       = errors.New("failed to read input file")
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
	ErrReadAsset       = errors.New("failed to read asset")
	ErrWriteOutput     = errors.New("failed to write bundled file")

	// Option validation errors.
	ErrInvalidAsset   = errors.New("invalid asset spec")
	ErrInvalidBaseDir = errors.New("invalid base directory")
	ErrNoAssets       = errors.New("asset list is empty")
	ErrInvalidOutput  = errors.New("invalid output name")
)
