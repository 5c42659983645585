// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the docsite command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docsite",
		Short: "Keep a documentation site's sidebars in step with its Markdown",
		Long: TitleStyle.Render("docsite") + SubtitleStyle.Render(" - documentation site tooling") + `

docsite scans the documentation tree for Markdown files and appends every
document the sidebars module does not reference yet to a category derived
from its path. Existing entries are never moved or removed.

` + SubtitleStyle.Render("Examples:") + `
  docsite sidebar sync             Add new documents to sidebars.js
  docsite sidebar sync --check     Fail when sidebars.js is out of date
  docsite sidebar tree             Print the sidebars
  docsite render docs/api/app.md   Render one document to HTML
  docsite config show              Show current configuration`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is ./docsite.cue, then $XDG_CONFIG_HOME/docsite/config.cue)")

	rootCmd.AddCommand(newSidebarCommand(app))
	rootCmd.AddCommand(newRenderCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the command tree. It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// handleError prints errors that no command has reported yet. ExitErrors were
// already printed by App.fail.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
