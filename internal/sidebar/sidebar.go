// SPDX-License-Identifier: MPL-2.0

package sidebar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/docsite/docsite/internal/jsmodule"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))

type (
	// RunOptions configures a sync run.
	RunOptions struct {
		// Root is the documentation directory to scan.
		Root string
		// Destination is the sidebars module path.
		Destination string
		// FormatConfig is where formatter configuration lookup starts. Empty
		// disables formatting.
		FormatConfig string
		// Rules is the placement vocabulary.
		Rules Options
		// DryRun computes the new module without writing it.
		DryRun bool
		// Logger receives progress messages. Nil discards them.
		Logger *log.Logger
	}

	// RunResult describes the outcome of Run.
	RunResult struct {
		Reconcile *Result
		// Documents is the number of discovered Markdown files.
		Documents int
		// Existed is true when Destination was present before the run.
		Existed bool
		// Written is true when Destination was rewritten.
		Written bool
		// Output holds the module text whenever something changed.
		Output []byte
		// StylePath is the formatter configuration that was applied, if any.
		StylePath string
	}
)

// Validate checks required inputs.
func (o RunOptions) Validate() error {
	var errs []error
	if strings.TrimSpace(o.Root) == "" {
		errs = append(errs, errors.New("documentation root is required"))
	}
	if strings.TrimSpace(o.Destination) == "" {
		errs = append(errs, errors.New("sidebars destination is required"))
	}
	if err := o.Rules.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Run discovers documents, reconciles them into the sidebars module and
// rewrites the module when at least one document was placed.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	documents, err := Discover(ctx, opts.Root)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered documents", "root", opts.Root, "count", len(documents))

	tree, existed, err := Load(opts.Destination, opts.Rules.GroupNames()...)
	if err != nil {
		return nil, err
	}
	if !existed {
		logger.Debug("no sidebars module yet, starting from empty groups", "path", opts.Destination)
	}

	res := Reconcile(tree, documents, opts.Rules)
	for _, p := range res.Placements {
		logger.Infof("New document found: %s", highlight.Render(p.Document))
		logger.Debug("placed document", "id", p.ID, "category", p.Category, "group", p.Group, "created", p.Created)
	}

	out := &RunResult{Reconcile: res, Documents: len(documents), Existed: existed}
	if !res.Changed() {
		logger.Info("No new documents found")
		return out, nil
	}

	style, stylePath, err := jsmodule.ResolveStyle(opts.FormatConfig)
	if err != nil {
		return nil, err
	}
	if style == nil {
		logger.Debug("no formatter configuration found, writing unformatted output", "start", opts.FormatConfig)
	} else {
		logger.Debug("using formatter configuration", "path", stylePath)
	}
	out.StylePath = stylePath
	out.Output = Marshal(tree, style)

	if opts.DryRun {
		return out, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sync canceled before write: %w", err)
	}
	logger.Infof("Updating %s", highlight.Render(opts.Destination))
	if err := WriteFile(opts.Destination, out.Output); err != nil {
		return nil, err
	}
	out.Written = true
	return out, nil
}
