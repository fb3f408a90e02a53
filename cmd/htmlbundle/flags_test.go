package main

// Notes:
// - parseFlags: we test defaults, short and long forms, help, and rejection
//   of positional arguments and conflicting verbosity flags.

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parseFlags(nil) unexpected error: %v", err)
	}
	if *f != (cliFlags{}) {
		t.Errorf("parseFlags(nil) = %+v, want zero flags", *f)
	}
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, f *cliFlags)
	}{
		{
			name: "short forms",
			args: []string{"-d", "site", "-i", "page.html", "-o", "out.html", "-c", "bundle", "-q", "-w"},
			check: func(t *testing.T, f *cliFlags) {
				if f.paths.dir != "site" || f.paths.input != "page.html" || f.paths.output != "out.html" {
					t.Errorf("paths = %+v", f.paths)
				}
				if f.common.config != "bundle" || !f.common.quiet {
					t.Errorf("common = %+v", f.common)
				}
				if !f.mode.watch {
					t.Error("watch should be set")
				}
			},
		},
		{
			name: "long forms",
			args: []string{"--dir=site", "--input", "a.html", "--verbose", "--audit", "--print-config", "--version"},
			check: func(t *testing.T, f *cliFlags) {
				if f.paths.dir != "site" || f.paths.input != "a.html" {
					t.Errorf("paths = %+v", f.paths)
				}
				if !f.common.verbose {
					t.Error("verbose should be set")
				}
				if !f.mode.audit || !f.mode.printConfig || !f.mode.version {
					t.Errorf("mode = %+v", f.mode)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags(%v) unexpected error: %v", tt.args, err)
			}
			tt.check(t, f)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"help short", []string{"-h"}, flag.ErrHelp},
		{"help long", []string{"--help"}, flag.ErrHelp},
		{"positional argument", []string{"index.html"}, ErrUnexpectedArgs},
		{"quiet and verbose", []string{"-q", "-v"}, ErrConflictingFlags},
		{"unknown flag", []string{"--nope"}, nil},
		{"missing value", []string{"--dir"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseFlags(tt.args)
			if err == nil {
				t.Fatalf("parseFlags(%v) expected error", tt.args)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("parseFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}
