// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the docsite command tree.
//
// Every command is built from an App, which carries the configuration
// provider and output streams so tests can drive the tree without touching
// the real environment.
package cmd
