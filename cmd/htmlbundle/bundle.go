package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	htmlbundle "github.com/alnah/go-htmlbundle"
	"github.com/alnah/go-htmlbundle/internal/config"
	"github.com/alnah/go-htmlbundle/internal/fileutil"
	"github.com/alnah/go-htmlbundle/internal/hints"
	"github.com/alnah/go-htmlbundle/internal/watch"
)

// run executes the command and returns the process exit code.
func run(ctx context.Context, f *cliFlags, env *Environment) int {
	if f.mode.version {
		fmt.Fprintf(env.Stdout, "go-htmlbundle %s\n", Version)
		return ExitSuccess
	}

	if err := runBundle(ctx, f, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err, f))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// bundleJob is one configured bundler and the input it processes.
type bundleJob struct {
	bundler    *htmlbundle.Bundler
	input      string
	dirFromExe bool
	flags      *cliFlags
	env        *Environment
}

// runBundle loads the configuration, then bundles once or keeps
// re-bundling in watch mode.
func runBundle(ctx context.Context, f *cliFlags, env *Environment) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	if f.mode.printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("rendering config: %w", err)
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	job, err := newBundleJob(f, cfg, env)
	if err != nil {
		return err
	}

	if f.mode.watch {
		return job.runWatch(ctx)
	}
	return job.once(ctx)
}

// loadConfig returns the defaults or the named config, with CLI flags merged in.
func loadConfig(f *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(f.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	mergeFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies CLI flags over config values (CLI wins).
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.paths.input != "" {
		cfg.Input = f.paths.input
	}
	if f.paths.output != "" {
		cfg.Output = f.paths.output
	}
}

// newBundleJob builds the bundler described by cfg and the flags.
func newBundleJob(f *cliFlags, cfg *config.Config, env *Environment) (*bundleJob, error) {
	specs, err := cfg.Specs()
	if err != nil {
		return nil, err
	}
	list := make([]htmlbundle.AssetSpec, len(specs))
	for i, s := range specs {
		list[i] = htmlbundle.AssetSpec{Filename: s.Filename, MIMEType: s.MIMEType, Kind: htmlbundle.AssetKind(s.Kind)}
	}

	dir := f.paths.dir
	dirFromExe := dir == ""
	if dirFromExe {
		dir, err = env.ExecutableDir()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", htmlbundle.ErrInvalidBaseDir, err)
		}
	}

	progress := env.Stdout
	if f.common.quiet {
		progress = io.Discard
	}

	opts := []htmlbundle.Option{
		htmlbundle.WithBaseDir(dir),
		htmlbundle.WithAssets(list),
		htmlbundle.WithProgress(progress),
		htmlbundle.WithAudit(f.mode.audit),
		htmlbundle.WithOutputName(cfg.OutputName()),
	}

	b, err := htmlbundle.NewBundler(opts...)
	if err != nil {
		return nil, err
	}

	return &bundleJob{
		bundler:    b,
		input:      cfg.Input,
		dirFromExe: dirFromExe,
		flags:      f,
		env:        env,
	}, nil
}

// once runs a single bundling pass. A missing input is reported and is
// not an error.
func (j *bundleJob) once(ctx context.Context) error {
	result, err := j.bundler.Bundle(ctx, j.input)
	if errors.Is(err, htmlbundle.ErrInputNotFound) {
		in := j.bundler.InputPath(j.input)
		fmt.Fprintf(j.env.Stdout, "Error: %s not found in %s\n", filepath.Base(in), filepath.Dir(in))
		if j.flags.common.verbose {
			fmt.Fprintln(j.env.Stderr, strings.TrimPrefix(hints.ForInputNotFound(filepath.Dir(in), j.dirFromExe), "\n"))
		}
		return nil
	}
	if err != nil {
		return err
	}

	if j.flags.common.verbose {
		printSummary(j.env.Stderr, result)
	}
	if j.flags.mode.audit {
		printUnresolved(j.env.Stdout, result.Unresolved)
	}
	return nil
}

// runWatch bundles once, then again after every change to the input or an asset.
func (j *bundleJob) runWatch(ctx context.Context) error {
	in := j.bundler.InputPath(j.input)
	dir := filepath.Dir(in)

	names := []string{filepath.Base(in)}
	for _, a := range j.bundler.Assets() {
		names = append(names, a.Filename)
	}

	w, err := watch.New(dir, names, watch.WithErrorHandler(func(err error) {
		fmt.Fprintf(j.env.Stderr, "Error: %v%s\n", err, hintFor(err, j.flags))
	}))
	if err != nil {
		return err
	}

	if err := j.once(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintf(j.env.Stderr, "Error: %v%s\n", err, hintFor(err, j.flags))
	}

	if !j.flags.common.quiet {
		fmt.Fprintf(j.env.Stdout, "Watching %s for changes (Ctrl+C to stop)\n", dir)
	}
	return w.Run(ctx, j.once)
}

// printSummary writes one line per asset, with a hint for near-miss names.
func printSummary(w io.Writer, r *htmlbundle.Result) {
	dir := filepath.Dir(r.InputPath)
	for _, a := range r.Assets {
		switch a.Status {
		case htmlbundle.StatusInlined:
			fmt.Fprintf(w, "  %-24s inlined, %d reference(s), %s\n", a.Filename, a.Replacements, fileutil.FormatKB(int64(a.EncodedBytes)))
		case htmlbundle.StatusSkipped:
			fmt.Fprintf(w, "  %-24s skipped%s\n", a.Filename, hints.ForAssetNotFound(dir, a.Filename))
		}
	}
	fmt.Fprintf(w, "%d of %d assets inlined into %s\n", r.Inlined(), len(r.Assets), filepath.Base(r.OutputPath))
}

// printUnresolved writes the audit report.
func printUnresolved(w io.Writer, refs []htmlbundle.Reference) {
	if len(refs) == 0 {
		fmt.Fprintln(w, "No unresolved local references.")
		return
	}
	fmt.Fprintf(w, "Unresolved local references (%d):\n", len(refs))
	for _, r := range refs {
		where := "<" + r.Element + ">"
		if r.Attr != "" {
			where = "<" + r.Element + " " + r.Attr + ">"
		}
		fmt.Fprintf(w, "  %-16s %s\n", where, r.Value)
	}
	fmt.Fprintln(w, strings.TrimPrefix(hints.ForUnresolved(), "\n"))
}

// hintFor returns a hint suffix for err, or "".
func hintFor(err error, f *cliFlags) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(configCandidates(f.common.config))
	case errors.Is(err, htmlbundle.ErrWriteOutput):
		return hints.ForOutputWrite()
	}
	return ""
}

// configCandidates lists the user config paths a config name resolves to.
func configCandidates(name string) []string {
	if name == "" || fileutil.IsFilePath(name) {
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-htmlbundle", name+".yaml")}
}
