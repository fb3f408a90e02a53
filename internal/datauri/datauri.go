// Package datauri builds and parses base64 data URIs (RFC 2397).
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for data URI parsing.
var (
	ErrMalformed = errors.New("malformed data URI")
	ErrNotBase64 = errors.New("data URI is not base64 encoded")
)

const (
	scheme       = "data:"
	base64Marker = ";base64"
)

// Encode returns data:<mimeType>;base64,<payload> using standard padded base64.
func Encode(mimeType string, data []byte) string {
	var b strings.Builder
	b.Grow(len(scheme) + len(mimeType) + len(base64Marker) + 1 + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(scheme)
	b.WriteString(mimeType)
	b.WriteString(base64Marker)
	b.WriteByte(',')
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// EncodedLen returns the length of Encode(mimeType, data) without building it.
func EncodedLen(mimeType string, n int) int {
	return len(scheme) + len(mimeType) + len(base64Marker) + 1 + base64.StdEncoding.EncodedLen(n)
}

// Decode parses a base64 data URI and returns its MIME type and payload.
// Media type parameters other than base64 (e.g. charset) are dropped.
func Decode(uri string) (mimeType string, data []byte, err error) {
	if !IsDataURI(uri) {
		return "", nil, fmt.Errorf("%w: missing %q prefix", ErrMalformed, scheme)
	}

	header, payload, ok := strings.Cut(uri[len(scheme):], ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing ',' separator", ErrMalformed)
	}

	params := strings.Split(header, ";")
	if params[len(params)-1] != "base64" {
		return "", nil, ErrNotBase64
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return params[0], data, nil
}

// IsDataURI reports whether s starts with the data: scheme (case-insensitive).
func IsDataURI(s string) bool {
	return len(s) >= len(scheme) && strings.EqualFold(s[:len(scheme)], scheme)
}
