// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docsite/docsite/internal/config"
	"github.com/docsite/docsite/internal/issue"
	"github.com/docsite/docsite/internal/testutil"
)

const componentsPage = "# Notifications\n\n" +
	"*macOS* *Windows*\n\n" +
	"```cjs\nconst { Notification } = require('electron')\n```\n\n" +
	"```mjs\nimport { Notification } from 'electron'\n```\n"

func TestRender(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"page.md": componentsPage})
	provider := staticProvider{cfg: config.DefaultConfig()}

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		run := runCommand(t, provider, "render", filepath.Join(dir, "page.md"))
		if run.err != nil {
			t.Fatalf("render error = %v", run.err)
		}
		out := run.stdout.String()
		for _, want := range []string{
			`<h1 id="notifications">Notifications</h1>`,
			`<em class="badge badge--primary">macOS</em>`,
			`<div class="tabs-container">`,
			`<code class="language-mjs">`,
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("output file", func(t *testing.T) {
		t.Parallel()

		dest := filepath.Join(t.TempDir(), "page.html")
		run := runCommand(t, provider, "render", filepath.Join(dir, "page.md"), "-o", dest)
		if run.err != nil {
			t.Fatalf("render error = %v", run.err)
		}
		if !strings.Contains(testutil.MustReadFile(t, dest), "tabs-container") {
			t.Error("rendered HTML should be written to -o")
		}
		if !strings.Contains(run.stdout.String(), "rendered") {
			t.Errorf("stdout = %q", run.stdout.String())
		}
	})

	t.Run("missing document", func(t *testing.T) {
		t.Parallel()

		run := runCommand(t, provider, "render", filepath.Join(dir, "missing.md"))

		var ae *issue.ActionableError
		if !errors.As(run.err, &ae) {
			t.Fatalf("error = %v, want ActionableError", run.err)
		}
		if ae.Issue != issue.DocumentNotFoundId {
			t.Errorf("Issue = %d, want DocumentNotFoundId", ae.Issue)
		}
	})

	t.Run("requires a file argument", func(t *testing.T) {
		t.Parallel()

		if run := runCommand(t, provider, "render"); run.err == nil {
			t.Error("render without arguments should fail")
		}
	})
}

func TestNewMarkdown_Highlighting(t *testing.T) {
	t.Parallel()

	var plain, highlighted strings.Builder
	source := []byte("```go\nfunc main() {}\n```\n")

	if err := newMarkdown("").Convert(source, &plain); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if err := newMarkdown("dracula").Convert(source, &highlighted); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if !strings.Contains(plain.String(), `<code class="language-go">`) {
		t.Errorf("plain output = %q", plain.String())
	}
	if !strings.Contains(highlighted.String(), "style=") {
		t.Errorf("highlighted output should carry inline styles, got %q", highlighted.String())
	}
}
