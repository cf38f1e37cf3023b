// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ghsmst/builder"
	"github.com/katalvlaran/ghsmst/edgelist"
)

// ExampleBuildGraph builds a four-node cycle with constant weight 2 and prints
// it in the text format.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(4, []builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Cycle())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = edgelist.WriteWithHeader(os.Stdout, g)
	// Output:
	// 4 4
	// 0 1 2
	// 1 2 2
	// 2 3 2
	// 3 0 2
}
