// SPDX-License-Identifier: MPL-2.0

// Package sidebar keeps a documentation site's sidebar configuration in step
// with the Markdown documents on disk.
//
// A run discovers every document under a root directory, loads the existing
// sidebars module (or starts from empty groups), and appends each document that
// is not referenced anywhere in the tree to the category derived from its
// directory. Existing entries are never reordered or removed. The module is
// rewritten only when at least one document was placed.
package sidebar
