package pipeline

import (
	"context"

	"github.com/alnah/go-htmlbundle/internal/assets"
	"github.com/alnah/go-htmlbundle/internal/datauri"
)

// AssetInliner replaces every reference to one asset with a data URI.
type AssetInliner interface {
	// Inline returns htmlContent with all matches of spec's pattern replaced,
	// and the number of replacements made.
	Inline(ctx context.Context, htmlContent string, spec assets.Spec, data []byte) (string, int, error)
}

// PatternInlining substitutes asset references using the spec's match pattern.
type PatternInlining struct{}

// Inline implements AssetInliner. The replacement is literal, and text outside
// the matches is returned byte for byte. With no match the input is returned
// unchanged without encoding data.
func (p *PatternInlining) Inline(ctx context.Context, htmlContent string, spec assets.Spec, data []byte) (string, int, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	re, err := spec.Pattern()
	if err != nil {
		return "", 0, err
	}

	n := len(re.FindAllStringIndex(htmlContent, -1))
	if n == 0 {
		return htmlContent, 0, nil
	}

	replacement := spec.Replacement(datauri.Encode(spec.MIMEType, data))
	return re.ReplaceAllLiteralString(htmlContent, replacement), n, nil
}

// Compile-time interface check.
var _ AssetInliner = (*PatternInlining)(nil)
