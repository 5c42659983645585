// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting: ActionableError carries
// the failed operation, the resource involved and hints for fixing it, and the
// issue catalog holds longer Markdown explanations rendered with glamour.
package issue
