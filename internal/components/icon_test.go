// SPDX-License-Identifier: MPL-2.0

package components

import (
	"strings"
	"testing"
)

func TestPlatformIcon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		platform string
		title    string
	}{
		{PlatformWindows, "Available on Windows"},
		{PlatformMac, "Available on macOS"},
		{PlatformLinux, "Available on Linux"},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			t.Parallel()

			got := string(PlatformIcon(tt.platform))
			if !strings.HasPrefix(got, "<svg ") || !strings.HasSuffix(got, "</svg>") {
				t.Fatalf("PlatformIcon(%q) = %q, want an svg element", tt.platform, got)
			}
			if !strings.Contains(got, `role="img"`) {
				t.Errorf("PlatformIcon(%q) missing role attribute", tt.platform)
			}
			if !strings.Contains(got, "<title>"+tt.title+"</title>") {
				t.Errorf("PlatformIcon(%q) missing title %q", tt.platform, tt.title)
			}
			if !strings.Contains(got, "<path ") {
				t.Errorf("PlatformIcon(%q) missing embedded shape", tt.platform)
			}
		})
	}
}

func TestPlatformIcon_Unknown(t *testing.T) {
	t.Parallel()

	for _, platform := range []string{"", "android", "Windows", "../mac"} {
		if got := PlatformIcon(platform); got != "<span></span>" {
			t.Errorf("PlatformIcon(%q) = %q, want empty span", platform, got)
		}
	}
}
