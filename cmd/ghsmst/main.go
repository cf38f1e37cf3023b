// SPDX-License-Identifier: MIT

// Command ghsmst runs the distributed GHS minimum spanning tree emulator and
// checks its output against Kruskal.
package main

import (
	"os"

	"github.com/katalvlaran/ghsmst/cmd/ghsmst/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
