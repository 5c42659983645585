// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover fixture trees (WriteFiles, MustReadFile, MustMkdirAll) and
// process state (MustChdir).
package testutil
