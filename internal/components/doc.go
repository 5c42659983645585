// SPDX-License-Identifier: MPL-2.0

// Package components renders the HTML fragments shared by the documentation
// pages: the CJS/ESM code tab switcher, platform availability icons and the
// sidebar navigation tree. A goldmark extension wires the code tabs into
// Markdown rendering.
package components
