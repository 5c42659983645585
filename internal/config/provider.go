// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidLoadOptions is returned when LoadOptions holds whitespace-only paths.
var ErrInvalidLoadOptions = errors.New("invalid load options")

type (
	// LoadOptions defines explicit configuration loading inputs.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath string
		// ConfigDirPath overrides the user config directory lookup when set.
		ConfigDirPath string
		// BaseDir is searched for the project file. Empty means the working directory.
		BaseDir string
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		// Load returns the effective configuration and the file it was read
		// from, or "" when only defaults apply.
		Load(ctx context.Context, opts LoadOptions) (*Config, string, error)
	}

	fileProvider struct{}
)

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Validate rejects whitespace-only paths.
func (o LoadOptions) Validate() error {
	var errs []error
	fields := []struct{ name, value string }{
		{"config file path", o.ConfigFilePath},
		{"config directory", o.ConfigDirPath},
		{"base directory", o.BaseDir},
	}
	for _, f := range fields {
		if f.value != "" && strings.TrimSpace(f.value) == "" {
			errs = append(errs, errors.New(f.name+" must not be whitespace-only"))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidLoadOptions}, errs...)...)
	}
	return nil
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	if err := opts.Validate(); err != nil {
		return nil, "", err
	}
	return loadWithOptions(ctx, opts)
}
