// SPDX-License-Identifier: MPL-2.0

// Command modrun runs one of its compiled-in modules by name.
package main

import cmd "github.com/invowk/modrun/cmd/modrun"

func main() {
	cmd.Execute()
}
