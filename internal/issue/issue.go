// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	ConfigLoadFailedId Id = iota + 1
	DocsRootUnreadableId
	SidebarsParseFailedId
	SidebarsWriteFailedId
	FormatConfigInvalidId
	DocumentNotFoundId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink  // links into the docsite documentation
		extLinks []HttpLink  // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal Markdown using the glamour style at
// stylePath ("auto", "dark", "light", "notty" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
		for _, link := range i.extLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The docsite configuration file could not be read or does not match the schema.

## Search locations (in order of precedence):
1. The file passed with ` + "`--config`" + `
2. ` + "`docsite.cue`" + ` in the current directory
3. ` + "`$XDG_CONFIG_HOME/docsite/config.cue`" + `

## Things you can try:
- Print the effective configuration:
~~~
$ docsite config show
~~~

- Start again from the defaults:
~~~
$ docsite config dump > docsite.cue
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/tour/"},
	}

	docsRootUnreadableIssue = &Issue{
		id: DocsRootUnreadableId,
		mdMsg: `
# Documentation root not readable!

The directory holding the Markdown documents does not exist or cannot be listed.

## Things you can try:
- Run the command from the repository root
- Point docsite at the right directory:
~~~
$ docsite sidebar sync --root ./docs
~~~

- Set ` + "`docs_root`" + ` in your configuration file`,
	}

	sidebarsParseFailedIssue = &Issue{
		id: SidebarsParseFailedId,
		mdMsg: `
# Sidebars file is malformed!

The sidebars module must assign an object literal to ` + "`module.exports`" + `.
Each top-level key is a sidebar whose value is a list of document ids or
category objects.

## Example:
~~~js
module.exports = {
  docs: [
    { type: 'category', label: 'Tutorial', items: ['latest/tutorial/quick-start'] },
  ],
  api: [],
};
~~~

## Things you can try:
- Remove comments and computed values from the file
- Make sure every category has a string ` + "`label`" + ` and an ` + "`items`" + ` list`,
	}

	sidebarsWriteFailedIssue = &Issue{
		id: SidebarsWriteFailedId,
		mdMsg: `
# Failed to write sidebars!

The updated sidebars file could not be saved. The previous file was left untouched.

## Things you can try:
- Check that the destination directory exists and is writable
- Preview the result without writing:
~~~
$ docsite sidebar sync --dry-run
~~~`,
	}

	formatConfigInvalidIssue = &Issue{
		id: FormatConfigInvalidId,
		mdMsg: `
# Formatter configuration is invalid!

The prettier configuration used to format the sidebars file could not be read.

## Supported files:
- ` + "`.prettierrc`" + `, ` + "`.prettierrc.json`" + `, ` + "`.prettierrc.yaml`" + `, ` + "`.prettierrc.yml`" + `
- ` + "`.prettierrc.toml`" + `
- the ` + "`prettier`" + ` key of ` + "`package.json`" + `

## Supported options:
` + "`printWidth`, `tabWidth`, `useTabs`, `semi`, `singleQuote`, `bracketSpacing`, `trailingComma`",
		extLinks: []HttpLink{"https://prettier.io/docs/en/options.html"},
	}

	documentNotFoundIssue = &Issue{
		id: DocumentNotFoundId,
		mdMsg: `
# Document not found!

The Markdown file to render does not exist.

## Things you can try:
- Check the path, it is resolved from the current directory
- List the documents known to the sidebars:
~~~
$ docsite sidebar tree
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		docsRootUnreadableIssue.Id():  docsRootUnreadableIssue,
		sidebarsParseFailedIssue.Id(): sidebarsParseFailedIssue,
		sidebarsWriteFailedIssue.Id(): sidebarsWriteFailedIssue,
		formatConfigInvalidIssue.Id(): formatConfigInvalidIssue,
		documentNotFoundIssue.Id():    documentNotFoundIssue,
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
