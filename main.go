// SPDX-License-Identifier: MPL-2.0

package main

import cmd "cipherly/cmd/cipherly"

func main() {
	cmd.Execute()
}
