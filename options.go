package htmlbundle

import (
	"io"

	"github.com/alnah/go-htmlbundle/internal/pipeline"
)

// Option configures a Bundler.
type Option func(*Bundler)

// WithBaseDir sets the directory relative input paths resolve against.
// Defaults to the directory holding the running executable.
func WithBaseDir(dir string) Option {
	return func(b *Bundler) {
		b.baseDir = dir
	}
}

// WithAssets replaces the default asset list. Assets are processed in order.
// A nil slice keeps the defaults; an empty one is rejected by NewBundler.
func WithAssets(specs []AssetSpec) Option {
	return func(b *Bundler) {
		if specs == nil {
			b.assets = nil
			return
		}
		b.assets = append([]AssetSpec{}, specs...)
		b.assetsSet = true
	}
}

// WithOutputName sets the output file name, written next to the input.
// Defaults to <stem>_bundled<ext>.
func WithOutputName(name string) Option {
	return func(b *Bundler) {
		b.outputName = name
	}
}

// WithProgress sets where progress lines and warnings are written.
// Defaults to io.Discard.
func WithProgress(w io.Writer) Option {
	return func(b *Bundler) {
		if w != nil {
			b.progress = w
		}
	}
}

// WithAudit enables listing local references the bundle still depends on
// in Result.Unresolved.
func WithAudit(enabled bool) Option {
	return func(b *Bundler) {
		b.audit = enabled
	}
}

// withInliner replaces the substitution step (for testing).
func withInliner(i pipeline.AssetInliner) Option {
	return func(b *Bundler) {
		b.inliner = i
	}
}
