// SPDX-License-Identifier: MIT

// Command honet builds higher-order aggregate networks from temporal edge
// lists. See "honet --help".
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/honet/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "honet:", err)
		os.Exit(1)
	}
}
