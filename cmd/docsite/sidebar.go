// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/docsite/docsite/internal/components"
	"github.com/docsite/docsite/internal/config"
	"github.com/docsite/docsite/internal/issue"
	"github.com/docsite/docsite/internal/jsmodule"
	"github.com/docsite/docsite/internal/sidebar"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"
)

// errSidebarsOutOfDate is reported by `sidebar sync --check`.
var errSidebarsOutOfDate = errors.New("sidebars module is out of date")

type syncFlags struct {
	root         string
	dest         string
	formatConfig string
	dryRun       bool
	check        bool
}

func newSidebarCommand(app *App) *cobra.Command {
	sidebarCmd := &cobra.Command{
		Use:   "sidebar",
		Short: "Maintain the sidebars module",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	sidebarCmd.AddCommand(newSidebarSyncCommand(app))
	sidebarCmd.AddCommand(newSidebarTreeCommand(app))

	return sidebarCmd
}

func newSidebarSyncCommand(app *App) *cobra.Command {
	var flags syncFlags

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Add new Markdown documents to the sidebars module",
		Long: `Scan the documentation root for Markdown files and append every document
the sidebars module does not reference yet.

Each new document goes into the category derived from its path: the first
and last path segments are dropped and the remaining directories become the
label ("latest/tutorial/quick-start.md" goes to "Tutorial"). Documents under
the API directory go to the API sidebar. The module is only rewritten when
something was added.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSidebarSync(cmd, app, flags)
		},
	}

	syncCmd.Flags().StringVar(&flags.root, "root", "", "documentation root (default from config: docs)")
	syncCmd.Flags().StringVar(&flags.dest, "dest", "", "sidebars module to update (default from config: sidebars.js)")
	syncCmd.Flags().StringVar(&flags.formatConfig, "format-config", "", "where formatter config lookup starts (default from config: .prettierrc)")
	syncCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the updated module instead of writing it")
	syncCmd.Flags().BoolVar(&flags.check, "check", false, "exit with status 1 when documents are missing from the sidebars")

	return syncCmd
}

func runSidebarSync(cmd *cobra.Command, app *App, flags syncFlags) error {
	ctx := cmd.Context()

	cfg, _, err := app.loadConfig(ctx)
	if err != nil {
		return app.fail(cmd, err, config.ColorSchemeAuto.GlamourStyle())
	}

	opts := sidebar.RunOptions{
		Root:         cfg.DocsRoot,
		Destination:  cfg.SidebarsPath,
		FormatConfig: cfg.FormatConfig,
		Rules:        cfg.SidebarOptions(),
		DryRun:       flags.dryRun || flags.check,
		Logger:       app.logger("sidebar"),
	}
	if cmd.Flags().Changed("root") {
		opts.Root = flags.root
	}
	if cmd.Flags().Changed("dest") {
		opts.Destination = flags.dest
	}
	if cmd.Flags().Changed("format-config") {
		opts.FormatConfig = flags.formatConfig
	}

	res, err := sidebar.Run(ctx, opts)
	if err != nil {
		return app.fail(cmd, syncError(err, opts), cfg.UI.ColorScheme.GlamourStyle())
	}

	placed := len(res.Reconcile.Placements)
	switch {
	case flags.check && placed > 0:
		fmt.Fprintln(app.stderr, WarningStyle.Render(fmt.Sprintf("%d document(s) missing from %s", placed, opts.Destination)))
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: 1, Err: errSidebarsOutOfDate}
	case flags.check:
		fmt.Fprintln(app.stdout, SuccessStyle.Render("✓ ")+"sidebars are up to date")
	case flags.dryRun && placed > 0:
		_, _ = app.stdout.Write(res.Output)
	case res.Written:
		fmt.Fprintf(app.stdout, "%s added %d document(s) to %s\n", SuccessStyle.Render("✓"), placed, CmdStyle.Render(opts.Destination))
	}

	return nil
}

// syncError attaches user-facing context to a sync failure.
func syncError(err error, opts sidebar.RunOptions) error {
	ec := issue.NewErrorContext().Wrap(err)

	switch {
	case errors.Is(err, sidebar.ErrDocsRootUnreadable):
		ec.WithOperation("read documents").
			WithResource(opts.Root).
			WithSuggestion("Run from the repository root or pass --root").
			WithIssue(issue.DocsRootUnreadableId)
	case errors.Is(err, sidebar.ErrMalformedSidebars):
		ec.WithOperation("load sidebars").
			WithResource(opts.Destination).
			WithSuggestion("The file must assign an object literal of arrays to module.exports").
			WithSuggestion("Run with --verbose for an example").
			WithIssue(issue.SidebarsParseFailedId)
	case errors.Is(err, jsmodule.ErrInvalidStyle):
		ec.WithOperation("read formatter configuration").
			WithResource(opts.FormatConfig).
			WithSuggestion("Fix the prettier configuration or pass --format-config ''").
			WithIssue(issue.FormatConfigInvalidId)
	case errors.Is(err, sidebar.ErrWriteSidebars):
		ec.WithOperation("write sidebars").
			WithResource(opts.Destination).
			WithSuggestion("Check that the destination directory exists and is writable").
			WithIssue(issue.SidebarsWriteFailedId)
	default:
		ec.WithOperation("sync sidebars")
	}

	return ec.BuildError()
}

type treeFlags struct {
	dest string
	html bool
	base string
}

func newSidebarTreeCommand(app *App) *cobra.Command {
	var flags treeFlags

	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the sidebars module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSidebarTree(cmd, app, flags)
		},
	}

	treeCmd.Flags().StringVar(&flags.dest, "dest", "", "sidebars module to print (default from config: sidebars.js)")
	treeCmd.Flags().BoolVar(&flags.html, "html", false, "render the navigation as HTML with platform icons")
	treeCmd.Flags().StringVar(&flags.base, "base", "docs", "URL prefix for document links in --html output")

	return treeCmd
}

func runSidebarTree(cmd *cobra.Command, app *App, flags treeFlags) error {
	cfg, _, err := app.loadConfig(cmd.Context())
	if err != nil {
		return app.fail(cmd, err, config.ColorSchemeAuto.GlamourStyle())
	}

	dest := cfg.SidebarsPath
	if cmd.Flags().Changed("dest") {
		dest = flags.dest
	}

	rules := cfg.SidebarOptions()
	s, exists, err := sidebar.Load(dest, rules.GroupNames()...)
	if err != nil {
		return app.fail(cmd, issue.NewErrorContext().
			WithOperation("load sidebars").
			WithResource(dest).
			WithIssue(issue.SidebarsParseFailedId).
			Wrap(err).
			BuildError(), cfg.UI.ColorScheme.GlamourStyle())
	}
	if !exists {
		fmt.Fprintln(app.stderr, WarningStyle.Render("No sidebars module at ")+CmdStyle.Render(dest))
	}

	if flags.html {
		nav, err := components.RenderNav(s, flags.base)
		if err != nil {
			return app.fail(cmd, issue.WrapWithContext(err, "render navigation", dest), cfg.UI.ColorScheme.GlamourStyle())
		}
		fmt.Fprintln(app.stdout, nav)
		return nil
	}

	fmt.Fprint(app.stdout, renderTree(s))
	return nil
}

// renderTree draws each group as a lipgloss tree.
func renderTree(s *sidebar.Sidebars) string {
	var sb strings.Builder
	for _, g := range s.Groups {
		t := tree.Root(TitleStyle.Render(g.Name)).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(treeEnumeratorStyle)
		addTreeItems(t, g.Items)
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func addTreeItems(t *tree.Tree, items []sidebar.Item) {
	for _, it := range items {
		switch it.Kind {
		case sidebar.ItemCategory:
			child := tree.Root(treeCategoryStyle.Render(it.Category.Label)).
				Enumerator(tree.RoundedEnumerator).
				EnumeratorStyle(treeEnumeratorStyle)
			addTreeItems(child, it.Category.Items)
			t.Child(child)
		case sidebar.ItemDoc, sidebar.ItemDocRef:
			line := it.ID
			if tags := it.Tags(); len(tags) > 0 {
				line += " " + SubtitleStyle.Render("["+strings.Join(tags, ", ")+"]")
			}
			t.Child(line)
		default:
			if label := it.Label(); label != "" {
				t.Child(SubtitleStyle.Render(label))
			}
		}
	}
}
