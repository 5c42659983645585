// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/docsite/docsite/internal/badge"
	"github.com/docsite/docsite/internal/components"
	"github.com/docsite/docsite/internal/config"
	"github.com/docsite/docsite/internal/issue"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

type renderFlags struct {
	output    string
	highlight string
}

func newRenderCommand(app *App) *cobra.Command {
	var flags renderFlags

	renderCmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a Markdown document to HTML",
		Long: `Render a documentation page to HTML with the site's Markdown components.

Platform badges such as *macOS* become styled spans, and a cjs code block
directly followed by an mjs code block becomes a CommonJS/ES module tab set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, args[0], flags)
		},
	}

	renderCmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to this file instead of stdout")
	renderCmd.Flags().StringVar(&flags.highlight, "highlight", "", "syntax highlighting style for code blocks (e.g. dracula); empty disables it")

	return renderCmd
}

func runRender(cmd *cobra.Command, app *App, path string, flags renderFlags) error {
	glamourStyle := config.ColorSchemeAuto.GlamourStyle()

	source, err := os.ReadFile(path)
	if err != nil {
		ec := issue.NewErrorContext().
			WithOperation("read document").
			WithResource(path).
			Wrap(err)
		if errors.Is(err, fs.ErrNotExist) {
			ec.WithSuggestion("Check the path, it is resolved against the working directory").
				WithIssue(issue.DocumentNotFoundId)
		}
		return app.fail(cmd, ec.BuildError(), glamourStyle)
	}

	var buf bytes.Buffer
	if err := newMarkdown(flags.highlight).Convert(source, &buf); err != nil {
		return app.fail(cmd, issue.WrapWithContext(err, "render document", path), glamourStyle)
	}

	if flags.output == "" {
		_, _ = app.stdout.Write(buf.Bytes())
		return nil
	}

	if err := os.WriteFile(flags.output, buf.Bytes(), 0o644); err != nil {
		return app.fail(cmd, issue.WrapWithContext(err, "write HTML", flags.output), glamourStyle)
	}
	fmt.Fprintf(app.stdout, "%s rendered %s to %s\n", SuccessStyle.Render("✓"), path, CmdStyle.Render(flags.output))
	return nil
}

// newMarkdown builds the document converter. Raw HTML in documents is passed
// through since the site's pages embed components directly.
func newMarkdown(highlightStyle string) goldmark.Markdown {
	extensions := []goldmark.Extender{
		extension.GFM,
		badge.New(nil),
		components.CodeTabsExtension,
	}
	if highlightStyle != "" {
		extensions = append(extensions, highlighting.NewHighlighting(highlighting.WithStyle(highlightStyle)))
	}

	return goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}
