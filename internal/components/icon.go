// SPDX-License-Identifier: MPL-2.0

package components

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
)

const (
	// PlatformWindows is the tag value for Windows availability.
	PlatformWindows = "windows"
	// PlatformMac is the tag value for macOS availability.
	PlatformMac = "mac"
	// PlatformLinux is the tag value for Linux availability.
	PlatformLinux = "linux"
)

type platformIcon struct {
	Title string
	Body  template.HTML
}

var (
	//go:embed assets/*.svg
	assetsFS embed.FS

	iconTemplate = template.Must(template.New("icon").Parse(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="16" height="16" fill="currentColor" role="img"><title>{{.Title}}</title>{{.Body}}</svg>`,
	))

	platformTitles = map[string]string{
		PlatformWindows: "Available on Windows",
		PlatformMac:     "Available on macOS",
		PlatformLinux:   "Available on Linux",
	}
)

// PlatformIcon returns the inline SVG for a platform tag. Unknown platforms
// render as an empty span.
func PlatformIcon(platform string) template.HTML {
	title, ok := platformTitles[platform]
	if !ok {
		return "<span></span>"
	}

	body, err := assetsFS.ReadFile("assets/platform-" + platform + ".svg")
	if err != nil {
		return "<span></span>"
	}

	var buf bytes.Buffer
	// Embedded assets are trusted markup.
	icon := platformIcon{Title: title, Body: template.HTML(strings.TrimSpace(string(body)))} //nolint:gosec // embedded asset
	if err := iconTemplate.Execute(&buf, icon); err != nil {
		return "<span></span>"
	}
	return template.HTML(buf.String()) //nolint:gosec // produced by html/template
}
