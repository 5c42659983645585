// SPDX-License-Identifier: MPL-2.0

package components

import (
	"bytes"
	"html/template"
	"path"

	"github.com/docsite/docsite/internal/sidebar"
)

type (
	navGroup struct {
		Name  string
		Nodes []navNode
	}

	navNode struct {
		Label    string
		Href     string
		Icons    []template.HTML
		Category bool
		Children []navNode
	}
)

var navTemplate = template.Must(template.New("nav").Parse(`
{{- define "nodes" }}<ul>
{{- range . }}
{{- if .Category }}
<li class="menu__list-item menu__list-item--category"><span class="menu__link">{{ if .Href }}<a href="{{ .Href }}">{{ .Label }}</a>{{ else }}{{ .Label }}{{ end }}</span>
{{ template "nodes" .Children }}</li>
{{- else }}
<li class="menu__list-item">{{ if .Href }}<a class="menu__link" href="{{ .Href }}">{{ .Label }}</a>{{ else }}<span class="menu__link">{{ .Label }}</span>{{ end }}{{ range .Icons }}{{ . }}{{ end }}</li>
{{- end }}
{{- end }}
</ul>{{ end -}}
<nav class="menu">
{{- range . }}
<section data-sidebar="{{ .Name }}">
{{ template "nodes" .Nodes }}
</section>
{{- end }}
</nav>
`))

// RenderNav renders the sidebar tree as nested lists. Document links are
// resolved against base; documents tagged with platforms get their icons.
func RenderNav(s *sidebar.Sidebars, base string) (template.HTML, error) {
	groups := make([]navGroup, 0, len(s.Groups))
	for _, g := range s.Groups {
		groups = append(groups, navGroup{Name: g.Name, Nodes: navNodes(g.Items, base)})
	}

	var buf bytes.Buffer
	if err := navTemplate.Execute(&buf, groups); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}

func navNodes(items []sidebar.Item, base string) []navNode {
	nodes := make([]navNode, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case sidebar.ItemCategory:
			node := navNode{Label: it.Category.Label, Category: true, Children: navNodes(it.Category.Items, base)}
			if it.Category.LinkDocID != "" {
				node.Href = docHref(base, it.Category.LinkDocID)
			}
			nodes = append(nodes, node)
		case sidebar.ItemDoc, sidebar.ItemDocRef:
			label := it.Label()
			if label == "" {
				label = path.Base(it.ID)
			}
			node := navNode{Label: label, Href: docHref(base, it.ID)}
			for _, tag := range it.Tags() {
				node.Icons = append(node.Icons, PlatformIcon(tag))
			}
			nodes = append(nodes, node)
		default:
			label := it.Label()
			if label == "" {
				continue
			}
			href := ""
			if it.Raw != nil {
				href, _ = it.Raw.GetString("href")
			}
			nodes = append(nodes, navNode{Label: label, Href: href})
		}
	}
	return nodes
}

func docHref(base, id string) string {
	return path.Join("/", base, id)
}
