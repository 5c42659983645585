// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/docsite/docsite/internal/issue"
	"github.com/docsite/docsite/pkg/cueutil"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "docsite"
	// ConfigFileName is the name of the user config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// ProjectFileName is the project-local config file.
	ProjectFileName = AppName + "." + ConfigFileExt

	configSchemaPath = "#Config"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the docsite configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions resolves the config file, merges it over the defaults and
// validates the result. The returned path is empty when only defaults apply.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	setDefaults(v)

	resolvedPath, err := resolvePath(opts)
	if err != nil {
		return nil, "", err
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'docsite config dump' to see every option").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Group names, docs_root and sidebars_path must not be empty").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("docs_root", defaults.DocsRoot)
	v.SetDefault("sidebars_path", defaults.SidebarsPath)
	v.SetDefault("format_config", defaults.FormatConfig)
	v.SetDefault("api_marker", defaults.APIMarker)
	v.SetDefault("default_group", defaults.DefaultGroup)
	v.SetDefault("api_group", defaults.APIGroup)
	v.SetDefault("ignore_suffixes", defaults.IgnoreSuffixes)
	v.SetDefault("category_aliases", aliasMaps(defaults.CategoryAliases))
	v.SetDefault("ui.color_scheme", string(defaults.UI.ColorScheme))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
}

func aliasMaps(aliases []CategoryAlias) []map[string]any {
	out := make([]map[string]any, 0, len(aliases))
	for _, a := range aliases {
		out = append(out, map[string]any{"from": a.From, "to": a.To})
	}
	return out
}

// resolvePath picks the config file: the explicit path, then the project file
// in BaseDir, then the user config directory.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	local := filepath.Join(opts.BaseDir, ProjectFileName)
	if fileExists(local) {
		return local, nil
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			// No home directory: defaults only.
			return "", nil //nolint:nilerr // a missing home is not a config error
		}
		cfgDir = dir
	}

	userPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(userPath) {
		return userPath, nil
	}
	return "", nil
}

// loadCUEIntoViper validates a CUE file against #Config and merges its
// contents into Viper, keeping defaults for any field the file leaves out.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	res, err := cueutil.ParseAndDecode[map[string]any](configSchema, data, configSchemaPath,
		cueutil.WithFilename(path))
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*res.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// GenerateCUE generates a CUE representation of the configuration.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// Docsite configuration file\n\n")

	fmt.Fprintf(&sb, "docs_root:     %q\n", cfg.DocsRoot)
	fmt.Fprintf(&sb, "sidebars_path: %q\n", cfg.SidebarsPath)
	fmt.Fprintf(&sb, "format_config: %q\n", cfg.FormatConfig)

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "api_marker:    %q\n", cfg.APIMarker)
	fmt.Fprintf(&sb, "default_group: %q\n", cfg.DefaultGroup)
	fmt.Fprintf(&sb, "api_group:     %q\n", cfg.APIGroup)

	sb.WriteString("\nignore_suffixes: [\n")
	for _, suffix := range cfg.IgnoreSuffixes {
		fmt.Fprintf(&sb, "\t%q,\n", suffix)
	}
	sb.WriteString("]\n")

	sb.WriteString("\ncategory_aliases: [\n")
	for _, a := range cfg.CategoryAliases {
		fmt.Fprintf(&sb, "\t{from: %q, to: %q},\n", a.From, a.To)
	}
	sb.WriteString("]\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}
