// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Site: {
	name:  string & !=""
	port?: int & >0
	tags?: [...string]
}
`

type testSite struct {
	Name string   `json:"name"`
	Port int      `json:"port"`
	Tags []string `json:"tags"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	res, err := ParseAndDecode[testSite]([]byte(testSchema), []byte(`name: "docs", port: 8080, tags: ["a", "b"]`), "#Site")
	if err != nil {
		t.Fatalf("ParseAndDecode() error = %v", err)
	}
	if res.Value.Name != "docs" || res.Value.Port != 8080 || len(res.Value.Tags) != 2 {
		t.Errorf("ParseAndDecode() = %+v", res.Value)
	}
	if !res.Unified.Exists() {
		t.Error("Unified value should exist")
	}
}

func TestParseAndDecode_Map(t *testing.T) {
	t.Parallel()

	res, err := ParseAndDecode[map[string]any]([]byte(testSchema), []byte(`name: "docs"`), "#Site")
	if err != nil {
		t.Fatalf("ParseAndDecode() error = %v", err)
	}
	if got := (*res.Value)["name"]; got != "docs" {
		t.Errorf("name = %v, want docs", got)
	}
	if _, ok := (*res.Value)["port"]; ok {
		t.Error("unset optional field should not be decoded")
	}
}

func TestParseAndDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		opts    []Option
		path    string
		wantErr []string
	}{
		{
			name:    "syntax error",
			data:    `name: "docs`,
			opts:    []Option{WithFilename("site.cue")},
			path:    "#Site",
			wantErr: []string{"site.cue"},
		},
		{
			name:    "type mismatch",
			data:    `name: "docs", port: "eighty"`,
			opts:    []Option{WithFilename("site.cue")},
			path:    "#Site",
			wantErr: []string{"site.cue", "port"},
		},
		{
			name:    "closed definition",
			data:    `name: "docs", unknown: true`,
			path:    "#Site",
			wantErr: []string{"<input>", "unknown"},
		},
		{
			name:    "too large",
			data:    `name: "docs"`,
			opts:    []Option{WithMaxFileSize(4)},
			path:    "#Site",
			wantErr: []string{"exceeds maximum"},
		},
		{
			name:    "missing definition",
			data:    `name: "docs"`,
			path:    "#Missing",
			wantErr: []string{"#Missing"},
		},
		{
			name:    "concrete required",
			data:    `name: string`,
			opts:    []Option{WithConcrete(true)},
			path:    "#Site",
			wantErr: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseAndDecode[testSite]([]byte(testSchema), []byte(tt.data), tt.path, tt.opts...)
			if err == nil {
				t.Fatal("expected an error")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q should contain %q", err, want)
				}
			}
		})
	}
}
