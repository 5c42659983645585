// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/docsite/docsite/internal/config"
	"github.com/docsite/docsite/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives an App and reads configuration through its provider.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer

		// set by the root command's persistent flags
		verbose    bool
		configPath string
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App, filling unset dependencies with defaults.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// loadConfig resolves the effective configuration. A verbose setting in the
// file applies when --verbose was not given.
func (a *App) loadConfig(ctx context.Context) (*config.Config, string, error) {
	cfg, path, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.configPath})
	if err != nil {
		return nil, "", err
	}
	if cfg.UI.Verbose {
		a.verbose = true
	}
	return cfg, path, nil
}

// logger returns the run logger writing to stderr.
func (a *App) logger(prefix string) *log.Logger {
	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: prefix,
		Level:  level,
	})
}

// fail prints err for the user and returns an ExitError so fang does not
// print it a second time. Catalog issues linked to the error are rendered in
// verbose mode.
func (a *App) fail(cmd *cobra.Command, err error, glamourStyle string) error {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))

	var ae *issue.ActionableError
	if a.verbose && errors.As(err, &ae) && ae.Issue != 0 {
		if entry := issue.Get(ae.Issue); entry != nil {
			if rendered, renderErr := entry.Render(glamourStyle); renderErr == nil {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}

	return &ExitError{Code: 1, Err: err}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
