// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/docsite/docsite/internal/config"
	"github.com/docsite/docsite/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `docsite config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage docsite configuration",
		Long: `Manage docsite configuration.

Configuration is read from the first of:
  - the file given with --config
  - ./docsite.cue
  - the user config file (Linux: ~/.config/docsite/config.cue,
    macOS: ~/Library/Application Support/docsite/config.cue,
    Windows: %APPDATA%\docsite\config.cue)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := app.loadConfig(cmd.Context())
			if err != nil {
				return app.fail(cmd, err, config.ColorSchemeAuto.GlamourStyle())
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd, app)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to ./docsite.cue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, app, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App) error {
	cfg, path, err := app.loadConfig(cmd.Context())
	if err != nil {
		return app.fail(cmd, err, config.ColorSchemeAuto.GlamourStyle())
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("docs_root"), valueStyle.Render(cfg.DocsRoot))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("sidebars_path"), valueStyle.Render(cfg.SidebarsPath))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("format_config"), valueStyle.Render(cfg.FormatConfig))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("api_marker"), valueStyle.Render(cfg.APIMarker))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("default_group"), valueStyle.Render(cfg.DefaultGroup))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("api_group"), valueStyle.Render(cfg.APIGroup))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ignore_suffixes"))
	if len(cfg.IgnoreSuffixes) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
	}
	for _, suffix := range cfg.IgnoreSuffixes {
		fmt.Fprintf(w, "  - %s\n", valueStyle.Render(suffix))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("category_aliases"))
	if len(cfg.CategoryAliases) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
	}
	for _, alias := range cfg.CategoryAliases {
		fmt.Fprintf(w, "  - %s -> %s\n", valueStyle.Render(alias.From), valueStyle.Render(alias.To))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func showConfigPath(cmd *cobra.Command, app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return app.fail(cmd, err, config.ColorSchemeAuto.GlamourStyle())
	}

	fmt.Fprintf(app.stdout, "Project file: %s\n", config.ProjectFileName)
	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))

	return nil
}

func initConfig(cmd *cobra.Command, app *App, force bool) error {
	path := config.ProjectFileName

	if !force {
		if _, err := os.Stat(path); err == nil {
			return app.fail(cmd, issue.NewErrorContext().
				WithOperation("create configuration").
				WithResource(path).
				WithSuggestion("Pass --force to overwrite it").
				Wrap(fs.ErrExist).
				BuildError(), config.ColorSchemeAuto.GlamourStyle())
		} else if !errors.Is(err, fs.ErrNotExist) {
			return app.fail(cmd, issue.WrapWithContext(err, "create configuration", path), config.ColorSchemeAuto.GlamourStyle())
		}
	}

	if err := os.WriteFile(path, []byte(config.GenerateCUE(config.DefaultConfig())), 0o644); err != nil {
		return app.fail(cmd, issue.WrapWithContext(err, "create configuration", path), config.ColorSchemeAuto.GlamourStyle())
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}
