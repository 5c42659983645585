// SPDX-License-Identifier: MPL-2.0

package sidebar

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docsite/docsite/internal/jsmodule"
)

const nestedSidebars = `module.exports = {
  docs: [
    {
      type: 'category',
      label: 'Get Started',
      collapsed: false,
      link: { type: 'doc', id: 'latest/tutorial/introduction' },
      items: [
        'latest/tutorial/quick-start',
        { type: 'doc', id: 'latest/tutorial/tutorial-prerequisites', customProps: { tags: ['mac', 'linux'] } },
        {
          type: 'category',
          label: 'Deep',
          items: ['latest/tutorial/deep/one', { type: 'category', label: 'Deeper', items: ['latest/tutorial/deep/two'] }],
        },
        { type: 'link', label: 'Blog', href: 'https://example.com/blog' },
      ],
    },
  ],
  api: [],
};
`

func TestParse_NestedTree(t *testing.T) {
	t.Parallel()

	s := mustParse(t, nestedSidebars)
	if len(s.Groups) != 2 || s.Groups[0].Name != "docs" || s.Groups[1].Name != "api" {
		t.Fatalf("unexpected groups: %+v", s.Groups)
	}

	c := findCategory(s, "docs", "Get Started")
	if c == nil {
		t.Fatal("category Get Started not found")
	}
	if c.LinkDocID != "latest/tutorial/introduction" {
		t.Errorf("LinkDocID = %q", c.LinkDocID)
	}
	if len(c.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(c.Items))
	}

	kinds := []ItemKind{ItemDoc, ItemDocRef, ItemCategory, ItemOther}
	for i, k := range kinds {
		if c.Items[i].Kind != k {
			t.Errorf("item %d kind = %v, want %v", i, c.Items[i].Kind, k)
		}
	}
	if tags := c.Items[1].Tags(); !equalStrings(tags, []string{"mac", "linux"}) {
		t.Errorf("Tags() = %v", tags)
	}
	if label := c.Items[3].Label(); label != "Blog" {
		t.Errorf("Label() = %q", label)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "not javascript", src: "docs:\n  - a\n"},
		{name: "array root", src: `module.exports = [];`},
		{name: "group not array", src: `module.exports = { docs: {} };`},
		{name: "numeric entry", src: `module.exports = { docs: [1] };`},
		{name: "category without label", src: `module.exports = { docs: [{ type: 'category', items: [] }] };`},
		{name: "items not array", src: `module.exports = { docs: [{ type: 'category', label: 'A', items: 'x' }] };`},
		{name: "nested bad entry", src: `module.exports = { docs: [{ type: 'category', label: 'A', items: [true] }] };`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.src))
			if !errors.Is(err, ErrMalformedSidebars) {
				t.Errorf("error = %v, want ErrMalformedSidebars", err)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefault(t *testing.T) {
	t.Parallel()

	s, existed, err := Load(filepath.Join(t.TempDir(), "sidebars.js"), DefaultGroupName, APIGroupName)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if existed {
		t.Error("existed = true for a missing file")
	}
	if len(s.Groups) != 2 || s.Groups[0].Name != "docs" || s.Groups[1].Name != "api" {
		t.Errorf("unexpected default groups: %+v", s.Groups)
	}
}

func TestLoad_MalformedFileIsFatal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sidebars.js")
	writeTestFile(t, path, "module.exports = { docs: [ ;")

	_, existed, err := Load(path, DefaultGroupName, APIGroupName)
	if err == nil {
		t.Fatal("expected error")
	}
	if !existed {
		t.Error("existed = false for a present file")
	}
	if !errors.Is(err, ErrMalformedSidebars) || !errors.Is(err, jsmodule.ErrSyntax) {
		t.Errorf("error chain = %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error does not name the file: %v", err)
	}
}

func TestEncode_PreservesUnknownKeysAndOrder(t *testing.T) {
	t.Parallel()

	s := mustParse(t, nestedSidebars)
	c := findCategory(s, "docs", "Get Started")
	c.AddDoc("latest/tutorial/new-page")

	style := jsmodule.DefaultStyle()
	style.SingleQuote = true
	out := string(Marshal(s, &style))

	for _, want := range []string{
		"collapsed: false,",
		"link: { type: 'doc', id: 'latest/tutorial/introduction' },",
		"customProps: { tags: ['mac', 'linux'] },",
		"{ type: 'link', label: 'Blog', href: 'https://example.com/blog' },",
		"'latest/tutorial/new-page',",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "label: 'Get Started'") > strings.Index(out, "collapsed: false") {
		t.Errorf("key order changed:\n%s", out)
	}

	again := mustParse(t, out)
	if ids := findCategory(again, "docs", "Get Started").DocIDs(); ids[len(ids)-1] != "latest/tutorial/new-page" {
		t.Errorf("appended document lost on reload: %v", ids)
	}
}

func TestEncode_NewCategoryShape(t *testing.T) {
	t.Parallel()

	s := Default(DefaultGroupName, APIGroupName)
	c, _ := FindOrCreateCategory(s, "Api", APIGroupName, DefaultOptions())
	c.AddDoc("latest/api/app")

	got := string(Marshal(s, nil))
	want := `module.exports = {docs:[],api:[{type:"category",label:"Api",items:["latest/api/app"]}]};` + "\n"
	if got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
