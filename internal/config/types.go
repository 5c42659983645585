// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/docsite/docsite/internal/sidebar"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidCategoryAlias is returned when an alias has an empty side.
	ErrInvalidCategoryAlias = errors.New("invalid category alias")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError collects every field-level problem of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// CategoryAlias makes categories derived as From match an existing
	// category labelled To.
	CategoryAlias struct {
		From string `json:"from" mapstructure:"from"`
		To   string `json:"to" mapstructure:"to"`
	}

	// Config holds the application configuration.
	Config struct {
		// DocsRoot is the directory scanned for Markdown documents.
		DocsRoot string `json:"docs_root" mapstructure:"docs_root"`
		// SidebarsPath is the sidebars module to reconcile.
		SidebarsPath string `json:"sidebars_path" mapstructure:"sidebars_path"`
		// FormatConfig is where formatter configuration lookup starts.
		FormatConfig string `json:"format_config" mapstructure:"format_config"`
		// APIMarker routes documents to the API group.
		APIMarker string `json:"api_marker" mapstructure:"api_marker"`
		// DefaultGroup and APIGroup name the top-level sidebars.
		DefaultGroup string `json:"default_group" mapstructure:"default_group"`
		APIGroup     string `json:"api_group" mapstructure:"api_group"`
		// IgnoreSuffixes lists document id suffixes that are never placed.
		IgnoreSuffixes []string `json:"ignore_suffixes" mapstructure:"ignore_suffixes"`
		// CategoryAliases lists derived labels matched under another label.
		CategoryAliases []CategoryAlias `json:"category_aliases" mapstructure:"category_aliases"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	rules := sidebar.DefaultOptions()

	aliases := make([]CategoryAlias, 0, len(rules.CategoryAliases))
	for _, from := range slices.Sorted(maps.Keys(rules.CategoryAliases)) {
		aliases = append(aliases, CategoryAlias{From: from, To: rules.CategoryAliases[from]})
	}

	return &Config{
		DocsRoot:        "docs",
		SidebarsPath:    "sidebars.js",
		FormatConfig:    ".prettierrc",
		APIMarker:       rules.APIMarker,
		DefaultGroup:    rules.DefaultGroup,
		APIGroup:        rules.APIGroup,
		IgnoreSuffixes:  rules.IgnoreSuffixes,
		CategoryAliases: aliases,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// SidebarOptions returns the placement vocabulary for sidebar reconciliation.
func (c *Config) SidebarOptions() sidebar.Options {
	aliases := make(map[string]string, len(c.CategoryAliases))
	for _, a := range c.CategoryAliases {
		aliases[a.From] = a.To
	}
	return sidebar.Options{
		IgnoreSuffixes:  c.IgnoreSuffixes,
		CategoryAliases: aliases,
		APIMarker:       c.APIMarker,
		DefaultGroup:    c.DefaultGroup,
		APIGroup:        c.APIGroup,
	}
}

// Validate checks the values that CUE cannot constrain once defaults are
// merged in.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DocsRoot) == "" {
		errs = append(errs, errors.New("docs_root must not be empty"))
	}
	if strings.TrimSpace(c.SidebarsPath) == "" {
		errs = append(errs, errors.New("sidebars_path must not be empty"))
	}
	for i, a := range c.CategoryAliases {
		if a.From == "" || a.To == "" {
			errs = append(errs, fmt.Errorf("%w: category_aliases[%d]", ErrInvalidCategoryAlias, i))
		}
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if err := c.SidebarOptions().Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// GlamourStyle maps the scheme to a glamour standard style name.
func (cs ColorScheme) GlamourStyle() string {
	switch cs {
	case ColorSchemeDark:
		return "dark"
	case ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
