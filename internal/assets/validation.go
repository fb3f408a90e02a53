package assets

import (
	"fmt"
	"regexp"
	"strings"
)

// mimeTypePattern accepts type/subtype tokens per RFC 6838 (no parameters).
var mimeTypePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9!#$&^_.+-]*/[A-Za-z0-9][A-Za-z0-9!#$&^_.+-]*$`)

// ValidateFilename checks that an asset filename is a bare name that resolves
// directly inside the base directory.
func ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFilename)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}

// ValidateMIMEType checks that a MIME type is a plain type/subtype pair.
func ValidateMIMEType(mimeType string) error {
	if !mimeTypePattern.MatchString(mimeType) {
		return fmt.Errorf("%w: %q", ErrInvalidMIMEType, mimeType)
	}
	return nil
}
