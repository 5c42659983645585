// SPDX-License-Identifier: MPL-2.0

// Package config handles docsite configuration using Viper with CUE as the file format.
//
// Configuration is read from the file given with --config, otherwise from
// docsite.cue in the working directory, otherwise from config.cue in the user
// configuration directory ($XDG_CONFIG_HOME/docsite on Linux,
// ~/Library/Application Support/docsite on macOS, %APPDATA%\docsite on
// Windows). Files are validated against the embedded config_schema.cue and
// merged over the compiled-in defaults; a missing file is not an error.
package config
