// SPDX-License-Identifier: MPL-2.0

// Package cueutil compiles an embedded CUE schema, unifies user data with one
// of its definitions and decodes the result, reporting failures with
// JSON-path style locations.
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	res, err := cueutil.ParseAndDecode[map[string]any](schema, data, "#Config",
//	    cueutil.WithFilename("docsite.cue"))
package cueutil
