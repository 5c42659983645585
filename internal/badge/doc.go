// SPDX-License-Identifier: MPL-2.0

// Package badge turns single-word emphasis in API reference pages into
// styled badges. Writing _macOS_ or _Deprecated_ in Markdown renders an
// emphasis element carrying the matching badge classes.
package badge
