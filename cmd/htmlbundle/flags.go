package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag parsing.
var (
	ErrUnexpectedArgs   = errors.New("unexpected arguments")
	ErrConflictingFlags = errors.New("conflicting flags")
)

// commonFlags holds output verbosity and config flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds input/output location flags.
type pathFlags struct {
	dir    string
	input  string
	output string
}

// modeFlags selects what the command does besides a single bundle.
type modeFlags struct {
	audit       bool
	watch       bool
	printConfig bool
	version     bool
}

// cliFlags holds all flags of the command.
type cliFlags struct {
	common commonFlags
	paths  pathFlags
	mode   modeFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-asset summary and hints")
}

// addPathFlags adds location flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.dir, "dir", "d", "", "base directory (default: executable's directory)")
	fs.StringVarP(&f.input, "input", "i", "", "input HTML file (default: index.html)")
	fs.StringVarP(&f.output, "output", "o", "", "output file name (default: <stem>_bundled<ext>)")
}

// addModeFlags adds mode flags to a FlagSet.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.BoolVar(&f.audit, "audit", false, "report local references left unresolved")
	fs.BoolVarP(&f.watch, "watch", "w", false, "re-bundle when the input or an asset changes")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config as YAML and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")
}

// parseFlags parses command-line arguments, without the program name.
// Returns flag.ErrHelp for -h/--help.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("htmlbundle", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addModeFlags(fs, &f.mode)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s (use --input to choose the file)", ErrUnexpectedArgs, strings.Join(fs.Args(), " "))
	}
	if f.common.quiet && f.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose", ErrConflictingFlags)
	}

	return f, nil
}
