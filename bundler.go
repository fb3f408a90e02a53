package htmlbundle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/alnah/go-htmlbundle/internal/assets"
	"github.com/alnah/go-htmlbundle/internal/datauri"
	"github.com/alnah/go-htmlbundle/internal/fileutil"
	"github.com/alnah/go-htmlbundle/internal/pipeline"
)

// DefaultInput is bundled when Bundle is given an empty path.
const DefaultInput = "index.html"

// outputPerm is the mode of the bundled file.
const outputPerm = 0o644

// Bundler inlines assets into HTML documents.
// A Bundler holds no per-call state and may be reused, but each Bundle call
// runs sequentially on the caller's goroutine.
type Bundler struct {
	baseDir    string
	assets     []AssetSpec
	assetsSet  bool
	outputName string
	progress   io.Writer
	audit      bool
	inliner    pipeline.AssetInliner

	specs []assets.Spec
}

// NewBundler creates a Bundler with the given options.
func NewBundler(opts ...Option) (*Bundler, error) {
	b := &Bundler{
		progress: io.Discard,
		inliner:  &pipeline.PatternInlining{},
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.resolveBaseDir(); err != nil {
		return nil, err
	}

	if b.outputName != "" {
		if err := assets.ValidateFilename(b.outputName); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}

	specs, err := b.resolveAssets()
	if err != nil {
		return nil, err
	}
	b.specs = specs

	return b, nil
}

// BaseDir returns the absolute directory relative inputs resolve against.
func (b *Bundler) BaseDir() string {
	return b.baseDir
}

// Assets returns the asset list the bundler processes, kinds resolved.
func (b *Bundler) Assets() []AssetSpec {
	out := make([]AssetSpec, len(b.specs))
	for i, s := range b.specs {
		out[i] = AssetSpec{Filename: s.Filename, MIMEType: s.MIMEType, Kind: AssetKind(s.Kind)}
	}
	return out
}

// InputPath returns where Bundle would read inputPath from.
func (b *Bundler) InputPath(inputPath string) string {
	if inputPath == "" {
		inputPath = DefaultInput
	}
	if filepath.IsAbs(inputPath) {
		return filepath.Clean(inputPath)
	}
	return filepath.Join(b.baseDir, inputPath)
}

// OutputPath returns where Bundle would write the bundle of inputPath.
func (b *Bundler) OutputPath(inputPath string) string {
	in := b.InputPath(inputPath)
	name := b.outputName
	if name == "" {
		name = fileutil.BundledName(filepath.Base(in))
	}
	return filepath.Join(filepath.Dir(in), name)
}

// Bundle reads inputPath, inlines every asset found next to it, and writes
// the result to OutputPath(inputPath). Missing assets are reported on the
// progress writer and skipped. Nothing is written when an error is returned.
func (b *Bundler) Bundle(ctx context.Context, inputPath string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := b.InputPath(inputPath)
	out := b.OutputPath(inputPath)
	if out == in {
		return nil, fmt.Errorf("%w: %s would overwrite the input", ErrInvalidOutput, filepath.Base(out))
	}

	fmt.Fprintf(b.progress, "Reading from: %s\n", in)

	content, err := readInput(in)
	if err != nil {
		return nil, err
	}

	loader, err := assets.NewFilesystemLoader(filepath.Dir(in))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	result := &Result{
		InputPath:  in,
		OutputPath: out,
		Assets:     make([]AssetResult, 0, len(b.specs)),
	}

	for _, spec := range b.specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err = b.inlineAsset(ctx, loader, content, spec, result)
		if err != nil {
			return nil, err
		}
	}

	if b.audit {
		refs, err := pipeline.FindUnresolved(content)
		if err != nil {
			return nil, fmt.Errorf("auditing references: %w", err)
		}
		result.Unresolved = toReferences(refs)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fmt.Fprintf(b.progress, "Writing bundled file to: %s\n", out)
	if err := fileutil.WriteFileAtomic(out, content, outputPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	fmt.Fprintln(b.progress, "Done!")

	result.OutputBytes = int64(len(content))
	if info, err := os.Stat(out); err == nil {
		result.OutputBytes = info.Size()
	}
	fmt.Fprintf(b.progress, "New file size: %s\n", fileutil.FormatKB(result.OutputBytes))

	return result, nil
}

// inlineAsset loads one asset and substitutes its references.
// A missing file is recorded as skipped and content is returned unchanged.
func (b *Bundler) inlineAsset(ctx context.Context, loader assets.Loader, content string, spec assets.Spec, result *Result) (string, error) {
	data, err := loader.Load(spec.Filename)
	if errors.Is(err, assets.ErrAssetNotFound) {
		fmt.Fprintf(b.progress, "Warning: Asset %s not found. Skipping.\n", spec.Filename)
		result.Assets = append(result.Assets, AssetResult{Filename: spec.Filename, Status: StatusSkipped})
		return content, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadAsset, spec.Filename, err)
	}

	fmt.Fprintf(b.progress, "Processing %s...\n", spec.Filename)

	updated, n, err := b.inliner.Inline(ctx, content, spec, data)
	if err != nil {
		return "", fmt.Errorf("inlining %s: %w", spec.Filename, err)
	}

	result.Assets = append(result.Assets, AssetResult{
		Filename:     spec.Filename,
		Status:       StatusInlined,
		Replacements: n,
		EncodedBytes: datauri.EncodedLen(spec.MIMEType, len(data)),
	})
	return updated, nil
}

// readInput reads the document and checks it is UTF-8 text.
func readInput(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}
	return string(data), nil
}

// resolveBaseDir makes the base directory absolute, defaulting to the
// executable's directory.
func (b *Bundler) resolveBaseDir() error {
	if b.baseDir == "" {
		dir, err := fileutil.ExecutableDir()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBaseDir, err)
		}
		b.baseDir = dir
		return nil
	}

	abs, err := filepath.Abs(b.baseDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseDir, err)
	}
	if fileutil.FileExists(abs) {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidBaseDir, abs)
	}
	b.baseDir = abs
	return nil
}

// resolveAssets validates the asset list, falling back to the defaults.
func (b *Bundler) resolveAssets() ([]assets.Spec, error) {
	if !b.assetsSet {
		return assets.Defaults(), nil
	}
	if len(b.assets) == 0 {
		return nil, ErrNoAssets
	}

	specs := make([]assets.Spec, 0, len(b.assets))
	seen := make(map[string]int, len(b.assets))
	for i, a := range b.assets {
		s, err := a.toInternal()
		if err != nil {
			return nil, fmt.Errorf("%w: assets[%d]: %v", ErrInvalidAsset, i, err)
		}
		if j, dup := seen[s.Filename]; dup {
			return nil, fmt.Errorf("%w: assets[%d] repeats assets[%d] %q", ErrInvalidAsset, i, j, s.Filename)
		}
		seen[s.Filename] = i
		specs = append(specs, s)
	}
	return specs, nil
}
