// SPDX-License-Identifier: MPL-2.0

package components

import (
	"bytes"
	"html/template"
)

type (
	// Tab is one pane of a tab switcher.
	Tab struct {
		Label   string
		Value   string
		Content string
	}
)

var codeTabsTemplate = template.Must(template.New("codetabs").Parse(`<div class="tabs-container">
<ul role="tablist" class="tabs">
{{- range $i, $t := . }}
<li role="tab" class="tabs__item{{ if eq $i 0 }} tabs__item--active{{ end }}" data-value="{{ $t.Value }}" aria-selected="{{ if eq $i 0 }}true{{ else }}false{{ end }}">{{ $t.Label }}</li>
{{- end }}
</ul>
{{- range $i, $t := . }}
<div role="tabpanel" data-value="{{ $t.Value }}"{{ if ne $i 0 }} hidden{{ end }}><pre><code class="language-{{ $t.Value }}">{{ $t.Content }}</code></pre></div>
{{- end }}
</div>
`))

// JSTabs returns the CommonJS and ES module tabs for a snippet pair.
func JSTabs(cjs, mjs string) []Tab {
	return []Tab{
		{Label: "CJS", Value: "cjs", Content: cjs},
		{Label: "ESM", Value: "mjs", Content: mjs},
	}
}

// RenderTabs renders tabs as a tab switcher. The first tab is selected.
func RenderTabs(tabs []Tab) (template.HTML, error) {
	var buf bytes.Buffer
	if err := codeTabsTemplate.Execute(&buf, tabs); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}

// CodeTabs renders the CJS/ESM switcher for the same example written in both
// module systems.
func CodeTabs(cjs, mjs string) (template.HTML, error) {
	return RenderTabs(JSTabs(cjs, mjs))
}
