package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FilesystemLoader reads asset files that sit in one directory, normally
// the directory of the document being bundled.
type FilesystemLoader struct {
	basePath string // absolute, symlinks resolved
}

// NewFilesystemLoader returns a loader for dir.
// Returns ErrInvalidBasePath unless dir names an existing directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	resolved, err := resolveDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	return &FilesystemLoader{basePath: resolved}, nil
}

// resolveDir makes dir absolute, follows symlinks, and checks it is a directory.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		return "", errors.New("empty path")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if target, err := filepath.EvalSymlinks(abs); err == nil {
		abs = target
	}

	switch info, err := os.Stat(abs); {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%s does not exist", abs)
	case err != nil:
		return "", err
	case !info.IsDir():
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

// BasePath returns the directory assets are read from.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// Path returns where filename would be read from.
func (f *FilesystemLoader) Path(filename string) string {
	return filepath.Join(f.basePath, filename)
}

// Load returns the bytes of filename. A missing file yields ErrAssetNotFound
// and any other read failure ErrAssetRead. Symlinks are followed wherever
// they point, so a fonts directory shared between pages can be linked in.
func (f *FilesystemLoader) Load(filename string) ([]byte, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path(filename)) // #nosec G304 -- bare filename inside basePath
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, filename)
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetRead, filename, err)
	}
	return data, nil
}

var _ Loader = (*FilesystemLoader)(nil)
