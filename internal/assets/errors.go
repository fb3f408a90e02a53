package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrAssetNotFound indicates the asset file does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidFilename indicates the filename is empty or not a bare name
	// (contains a path separator, a NUL byte, or is a dot entry).
	ErrInvalidFilename = errors.New("invalid asset filename")

	// ErrInvalidMIMEType indicates the MIME type is not of the form type/subtype.
	ErrInvalidMIMEType = errors.New("invalid MIME type")

	// ErrInvalidKind indicates an unknown reference kind.
	ErrInvalidKind = errors.New("invalid asset kind")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")
)
