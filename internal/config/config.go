package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htmlbundle/internal/assets"
	"github.com/alnah/go-htmlbundle/internal/fileutil"
	"github.com/alnah/go-htmlbundle/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrNoAssets        = errors.New("asset list is empty")
	ErrDuplicateAsset  = errors.New("duplicate asset filename")
	ErrInvalidAsset    = errors.New("invalid asset entry")
	ErrInvalidOutput   = errors.New("invalid output name")
	ErrEmptyInput      = errors.New("input cannot be empty")
	ErrInvalidInput    = errors.New("invalid input path")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxFilenameLength = 255  // NAME_MAX on common filesystems
	MaxMIMELength     = 255  // RFC 6838: 127 per part plus separator
	MaxKindLength     = 10   // "font", "image"
	MaxAssets         = 64   // Generous for a hand-maintained list
)

// DefaultInput is the document bundled when no input is configured.
const DefaultInput = "index.html"

// Config holds all configuration for a bundling pass.
type Config struct {
	Input  string        `yaml:"input"`            // Input file, relative to the base directory
	Output string        `yaml:"output,omitempty"` // Output file name (empty = <stem>_bundled<ext>)
	Assets []AssetConfig `yaml:"assets"`           // Inlined assets, in processing order
}

// AssetConfig describes one inlinable asset.
type AssetConfig struct {
	Filename string `yaml:"filename"`
	MIME     string `yaml:"mime"`
	Kind     string `yaml:"kind,omitempty"` // "font" or "image" (empty = inferred from mime)
}

// Validate checks field lengths and asset entries.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrEmptyInput
	}
	if err := validateFieldLength("input", c.Input, MaxPathLength); err != nil {
		return err
	}
	if strings.ContainsRune(c.Input, 0) {
		return fmt.Errorf("%w: contains NUL byte", ErrInvalidInput)
	}

	if c.Output != "" {
		if err := validateFieldLength("output", c.Output, MaxFilenameLength); err != nil {
			return err
		}
		if err := assets.ValidateFilename(c.Output); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}

	if c.Assets != nil && len(c.Assets) == 0 {
		return ErrNoAssets
	}
	if len(c.Assets) > MaxAssets {
		return fmt.Errorf("%w: %d entries (max %d)", ErrInvalidAsset, len(c.Assets), MaxAssets)
	}

	seen := make(map[string]int, len(c.Assets))
	for i, a := range c.Assets {
		prefix := fmt.Sprintf("assets[%d]", i)
		if err := validateFieldLength(prefix+".filename", a.Filename, MaxFilenameLength); err != nil {
			return err
		}
		if err := validateFieldLength(prefix+".mime", a.MIME, MaxMIMELength); err != nil {
			return err
		}
		if err := validateFieldLength(prefix+".kind", a.Kind, MaxKindLength); err != nil {
			return err
		}
		if _, err := a.Spec(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidAsset, prefix, err)
		}
		if j, dup := seen[a.Filename]; dup {
			return fmt.Errorf("%w: %s and assets[%d] both name %q", ErrDuplicateAsset, prefix, j, a.Filename)
		}
		seen[a.Filename] = i
	}

	return nil
}

// Spec converts the entry to an asset spec, inferring the kind from the
// MIME type when none is given.
func (a AssetConfig) Spec() (assets.Spec, error) {
	kind, err := assets.ParseKind(a.Kind)
	if err != nil {
		return assets.Spec{}, err
	}
	if kind == "" {
		kind = assets.InferKind(a.MIME)
	}
	s := assets.Spec{Filename: a.Filename, MIMEType: a.MIME, Kind: kind}
	if err := s.Validate(); err != nil {
		return assets.Spec{}, err
	}
	return s, nil
}

// Specs returns the configured assets as specs, or the built-in list when
// the config names none.
func (c *Config) Specs() ([]assets.Spec, error) {
	if c.Assets == nil {
		return assets.Defaults(), nil
	}
	specs := make([]assets.Spec, 0, len(c.Assets))
	for i, a := range c.Assets {
		s, err := a.Spec()
		if err != nil {
			return nil, fmt.Errorf("%w: assets[%d]: %v", ErrInvalidAsset, i, err)
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// OutputName returns the configured output name or the one derived from Input.
func (c *Config) OutputName() string {
	if c.Output != "" {
		return c.Output
	}
	return fileutil.BundledName(c.Input)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the built-in configuration: index.html with the
// default asset list.
func DefaultConfig() *Config {
	defaults := assets.Defaults()
	list := make([]AssetConfig, 0, len(defaults))
	for _, s := range defaults {
		list = append(list, AssetConfig{Filename: s.Filename, MIME: s.MIMEType, Kind: string(s.Kind)})
	}
	return &Config{
		Input:  DefaultInput,
		Assets: list,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Fields omitted from the file keep their DefaultConfig values; an omitted
// assets key keeps the built-in list.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw Config
	if err := yamlutil.UnmarshalStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := DefaultConfig()
	if raw.Input != "" {
		cfg.Input = raw.Input
	}
	cfg.Output = raw.Output
	if raw.Assets != nil {
		cfg.Assets = raw.Assets
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders the config as YAML, e.g. for --print-config.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-htmlbundle/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-htmlbundle", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
