// SPDX-License-Identifier: MPL-2.0

// Package jsmodule reads and writes CommonJS configuration modules of the form
// `module.exports = <object literal>;`.
//
// The object literal is held as an ordered value tree (Object, Array, String,
// Literal) so that key order survives a read/modify/write cycle. Printing honours
// a subset of the project formatter configuration (.prettierrc and friends).
package jsmodule
