// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

// Tests in this file replace the package-level render function and must not
// run in parallel.

func stubRender(t *testing.T) {
	t.Helper()

	original := render
	t.Cleanup(func() { render = original })
	render = func(in string, _ string) (string, error) {
		return in, nil
	}
}

func TestId_Constants(t *testing.T) {
	seen := make(map[Id]bool)
	for _, issue := range Values() {
		if seen[issue.Id()] {
			t.Errorf("duplicate ID: %d", issue.Id())
		}
		seen[issue.Id()] = true
	}

	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1", ConfigLoadFailedId)
	}
}

func TestIssuesMapCompleteness(t *testing.T) {
	for _, id := range []Id{
		ConfigLoadFailedId,
		DocsRootUnreadableId,
		SidebarsParseFailedId,
		SidebarsWriteFailedId,
		FormatConfigInvalidId,
		DocumentNotFoundId,
	} {
		issue := Get(id)
		if issue == nil {
			t.Errorf("issue %d is not registered", id)
			continue
		}
		if issue.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, issue.Id())
		}
	}

	if Get(Id(9999)) != nil {
		t.Error("Get() of unknown id should return nil")
	}
}

func TestValues_SortedById(t *testing.T) {
	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not ordered at %d", i)
		}
	}
}

func TestIssue_LinksAreCopies(t *testing.T) {
	issue := Get(FormatConfigInvalidId)
	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("expected external links")
	}
	links[0] = "changed"
	if issue.ExtLinks()[0] == "changed" {
		t.Error("ExtLinks() should return a copy")
	}
	if issue.DocLinks() != nil {
		t.Errorf("DocLinks() = %v, want nil", issue.DocLinks())
	}
}

func TestIssue_Render(t *testing.T) {
	stubRender(t)

	rendered, err := Get(SidebarsParseFailedId).Render("")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(rendered, "module.exports") {
		t.Error("Render() output should contain the example module")
	}
	if strings.Contains(rendered, "See also") {
		t.Error("issue without links should not render a See also section")
	}

	rendered, err = Get(ConfigLoadFailedId).Render("")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(rendered, "## See also\n\n- <https://cuelang.org/docs/tour/>") {
		t.Errorf("Render() missing links section:\n%s", rendered)
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	for _, issue := range Values() {
		if issue.MarkdownMsg() == "" {
			t.Errorf("issue %d has empty MarkdownMsg", issue.Id())
		}
		rendered, err := issue.Render("notty")
		if err != nil {
			t.Errorf("issue %d failed to render: %v", issue.Id(), err)
		}
		if strings.TrimSpace(rendered) == "" {
			t.Errorf("issue %d rendered to empty string", issue.Id())
		}
	}
}
