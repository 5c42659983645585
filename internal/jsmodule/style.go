// SPDX-License-Identifier: MPL-2.0

package jsmodule

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// PackageJSON is the manifest that may carry a "prettier" key.
const PackageJSON = "package.json"

// styleFileNames are searched in order in every directory.
var styleFileNames = []string{
	".prettierrc",
	".prettierrc.json",
	".prettierrc.yaml",
	".prettierrc.yml",
	".prettierrc.toml",
	PackageJSON,
}

// ErrInvalidStyle is returned when a formatter configuration file exists but cannot be read.
var ErrInvalidStyle = errors.New("invalid formatter configuration")

// rawStyle mirrors the formatter options on disk; nil means "not set".
type rawStyle struct {
	PrintWidth     *int    `json:"printWidth" yaml:"printWidth" toml:"printWidth"`
	TabWidth       *int    `json:"tabWidth" yaml:"tabWidth" toml:"tabWidth"`
	UseTabs        *bool   `json:"useTabs" yaml:"useTabs" toml:"useTabs"`
	SingleQuote    *bool   `json:"singleQuote" yaml:"singleQuote" toml:"singleQuote"`
	Semi           *bool   `json:"semi" yaml:"semi" toml:"semi"`
	BracketSpacing *bool   `json:"bracketSpacing" yaml:"bracketSpacing" toml:"bracketSpacing"`
	TrailingComma  *string `json:"trailingComma" yaml:"trailingComma" toml:"trailingComma"`
}

// ResolveStyle locates the formatter configuration for start and returns the
// resolved style together with the file it came from.
//
// start may name a configuration file directly or any file or directory inside
// the project; the search walks up from its directory. A nil style with an
// empty path and nil error means no configuration was found.
func ResolveStyle(start string) (*Style, string, error) {
	if start == "" {
		return nil, "", nil
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %s: %w", start, err)
	}

	dir := filepath.Dir(abs)
	info, statErr := os.Stat(abs)
	switch {
	case statErr == nil && info.IsDir():
		dir = abs
	case statErr == nil && !slices.Contains(styleFileNames, filepath.Base(abs)):
		// An explicitly named file with a custom name is used as-is.
		style, ok, loadErr := loadStyleFile(abs)
		if loadErr != nil {
			return nil, "", loadErr
		}
		if ok {
			return style, abs, nil
		}
	}

	for {
		for _, name := range styleFileNames {
			candidate := filepath.Join(dir, name)
			style, ok, loadErr := loadStyleFile(candidate)
			if loadErr != nil {
				return nil, "", loadErr
			}
			if ok {
				return style, candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", nil
		}
		dir = parent
	}
}

// loadStyleFile reads path when it exists. ok is false for missing files and for
// package.json manifests without a "prettier" key.
func loadStyleFile(path string) (style *Style, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	var raw rawStyle
	switch {
	case filepath.Base(path) == PackageJSON:
		var manifest struct {
			Prettier json.RawMessage `json:"prettier"`
		}
		if err := json.Unmarshal(data, &manifest); err != nil {
			return nil, false, fmt.Errorf("%w: %s: %w", ErrInvalidStyle, path, err)
		}
		if len(manifest.Prettier) == 0 {
			return nil, false, nil
		}
		if err := json.Unmarshal(manifest.Prettier, &raw); err != nil {
			return nil, false, fmt.Errorf("%w: %s: prettier key must be an object: %w", ErrInvalidStyle, path, err)
		}
	case filepath.Ext(path) == ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, false, fmt.Errorf("%w: %s: %w", ErrInvalidStyle, path, err)
		}
	default:
		// JSON is valid YAML, so .prettierrc in either notation decodes here.
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, false, fmt.Errorf("%w: %s: %w", ErrInvalidStyle, path, err)
		}
	}

	resolved, err := raw.resolve()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrInvalidStyle, path, err)
	}
	return resolved, true, nil
}

func (r rawStyle) resolve() (*Style, error) {
	s := DefaultStyle()
	if r.PrintWidth != nil {
		if *r.PrintWidth <= 0 {
			return nil, fmt.Errorf("printWidth must be positive, got %d", *r.PrintWidth)
		}
		s.PrintWidth = *r.PrintWidth
	}
	if r.TabWidth != nil {
		if *r.TabWidth < 0 {
			return nil, fmt.Errorf("tabWidth must not be negative, got %d", *r.TabWidth)
		}
		s.TabWidth = *r.TabWidth
	}
	if r.UseTabs != nil {
		s.UseTabs = *r.UseTabs
	}
	if r.SingleQuote != nil {
		s.SingleQuote = *r.SingleQuote
	}
	if r.Semi != nil {
		s.Semi = *r.Semi
	}
	if r.BracketSpacing != nil {
		s.BracketSpacing = *r.BracketSpacing
	}
	if r.TrailingComma != nil {
		switch tc := TrailingComma(*r.TrailingComma); tc {
		case TrailingCommaNone, TrailingCommaES5, TrailingCommaAll:
			s.TrailingComma = tc
		default:
			return nil, fmt.Errorf("unknown trailingComma %q", *r.TrailingComma)
		}
	}
	return &s, nil
}
