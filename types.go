package htmlbundle

import (
	"fmt"

	"github.com/alnah/go-htmlbundle/internal/assets"
	"github.com/alnah/go-htmlbundle/internal/pipeline"
)

// AssetKind selects how references to an asset are matched.
type AssetKind string

// Asset kinds.
const (
	FontAsset  AssetKind = AssetKind(assets.KindFont)  // url(NAME) in CSS
	ImageAsset AssetKind = AssetKind(assets.KindImage) // src="NAME" attributes
)

// AssetSpec names a file to inline and the MIME type written into its data URI.
// An empty Kind is inferred from MIMEType: font/* is a font, anything else an image.
type AssetSpec struct {
	Filename string
	MIMEType string
	Kind     AssetKind
}

// DefaultAssets returns the built-in asset list, in processing order.
func DefaultAssets() []AssetSpec {
	defaults := assets.Defaults()
	specs := make([]AssetSpec, len(defaults))
	for i, s := range defaults {
		specs[i] = AssetSpec{Filename: s.Filename, MIMEType: s.MIMEType, Kind: AssetKind(s.Kind)}
	}
	return specs
}

// Validate checks the filename, MIME type and kind.
func (a AssetSpec) Validate() error {
	if _, err := a.toInternal(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAsset, err)
	}
	return nil
}

// toInternal converts to the internal spec, resolving an empty kind.
func (a AssetSpec) toInternal() (assets.Spec, error) {
	kind, err := assets.ParseKind(string(a.Kind))
	if err != nil {
		return assets.Spec{}, err
	}
	if kind == "" {
		kind = assets.InferKind(a.MIMEType)
	}
	s := assets.Spec{Filename: a.Filename, MIMEType: a.MIMEType, Kind: kind}
	if err := s.Validate(); err != nil {
		return assets.Spec{}, err
	}
	return s, nil
}

// AssetStatus reports what happened to one asset during a bundle.
type AssetStatus string

// Asset statuses.
const (
	StatusInlined AssetStatus = "inlined"
	StatusSkipped AssetStatus = "skipped" // file not found next to the input
)

// AssetResult describes one asset of a bundle.
type AssetResult struct {
	Filename     string
	Status       AssetStatus
	Replacements int // references rewritten; 0 when skipped or unreferenced
	EncodedBytes int // length of the data URI
}

// Reference is a local file the bundled document still points at.
type Reference struct {
	Element string // lowercase tag name, e.g. "img"
	Attr    string // attribute holding the reference; "" for <style> text
	Value   string
}

// Result is the outcome of a successful Bundle.
type Result struct {
	InputPath   string
	OutputPath  string
	Assets      []AssetResult
	OutputBytes int64
	Unresolved  []Reference // filled only when auditing is enabled
}

// Inlined returns how many assets were embedded.
func (r *Result) Inlined() int {
	n := 0
	for _, a := range r.Assets {
		if a.Status == StatusInlined {
			n++
		}
	}
	return n
}

// Skipped returns the filenames of assets that were not found.
func (r *Result) Skipped() []string {
	var names []string
	for _, a := range r.Assets {
		if a.Status == StatusSkipped {
			names = append(names, a.Filename)
		}
	}
	return names
}

func toReferences(refs []pipeline.Reference) []Reference {
	if len(refs) == 0 {
		return nil
	}
	out := make([]Reference, len(refs))
	for i, r := range refs {
		out[i] = Reference{Element: r.Element, Attr: r.Attr, Value: r.Value}
	}
	return out
}
