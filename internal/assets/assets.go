package assets

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind selects how a document references an asset.
type Kind string

const (
	// KindFont assets are referenced from CSS as url(name).
	KindFont Kind = "font"
	// KindImage assets are referenced from an element's src attribute.
	KindImage Kind = "image"
)

// Spec describes a single inlinable asset.
type Spec struct {
	Filename string
	MIMEType string
	Kind     Kind
}

// Defaults returns the built-in asset list in processing order.
func Defaults() []Spec {
	return []Spec{
		{Filename: "MokotoGlitchMark.ttf", MIMEType: "font/ttf", Kind: KindFont},
		{Filename: "MokotoRegular.ttf", MIMEType: "font/ttf", Kind: KindFont},
		{Filename: "logo_v2.png", MIMEType: "image/png", Kind: KindImage},
	}
}

// InferKind picks the reference style for a MIME type: font/* types are
// referenced through CSS url(), everything else through src attributes.
func InferKind(mimeType string) Kind {
	if strings.HasPrefix(strings.ToLower(mimeType), "font/") {
		return KindFont
	}
	return KindImage
}

// ParseKind converts a config value to a Kind. Empty input returns "" so
// callers can fall back to InferKind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindFont, KindImage:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q (must be font or image)", ErrInvalidKind, s)
	}
}

// Validate checks the filename, MIME type and kind of the spec.
func (s Spec) Validate() error {
	if err := ValidateFilename(s.Filename); err != nil {
		return err
	}
	if err := ValidateMIMEType(s.MIMEType); err != nil {
		return err
	}
	if s.Kind != KindFont && s.Kind != KindImage {
		return fmt.Errorf("%w: %q for %s", ErrInvalidKind, s.Kind, s.Filename)
	}
	return nil
}

// Pattern compiles the expression matching every reference to the asset.
//
//   - font:  url(name), url('name'), url("name")
//   - image: src="name", src='name'
func (s Spec) Pattern() (*regexp.Regexp, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	name := regexp.QuoteMeta(s.Filename)
	if s.Kind == KindFont {
		return regexp.MustCompile(`url\(['"]?` + name + `['"]?\)`), nil
	}
	return regexp.MustCompile(`src=["']` + name + `["']`), nil
}

// Replacement returns the text substituted for each match of Pattern.
func (s Spec) Replacement(dataURI string) string {
	if s.Kind == KindFont {
		return "url('" + dataURI + "')"
	}
	return `src="` + dataURI + `"`
}
