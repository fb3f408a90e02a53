package main

import (
	"context"
	"io"
	"os"

	"github.com/alnah/go-htmlbundle/internal/fileutil"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout        io.Writer
	Stderr        io.Writer
	ExecutableDir func() (string, error) // default base directory
	Context       func() context.Context
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		ExecutableDir: fileutil.ExecutableDir,
		Context:       context.Background,
	}
}
