// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/docsite/docsite/cmd/docsite"

func main() {
	cmd.Execute()
}
