// SPDX-License-Identifier: MIT

package ghs_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ghsmst/edgelist"
	"github.com/katalvlaran/ghsmst/ghs"
)

// ExampleRun computes the MST of a triangle with the distributed protocol.
func ExampleRun() {
	g, _ := edgelist.FromEdges(3,
		edgelist.Edge{U: 0, V: 1, Weight: 5},
		edgelist.Edge{U: 1, V: 2, Weight: 3},
		edgelist.Edge{U: 0, V: 2, Weight: 7},
	)

	res, err := ghs.Run(g, ghs.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = edgelist.Write(os.Stdout, res.Tree)
	fmt.Println("weight:", res.Tree.TotalWeight())
	// Output:
	// 1 2 3
	// 0 1 5
	// weight: 8
}

// ExampleVerify compares the distributed result with Kruskal.
func ExampleVerify() {
	g, _ := edgelist.FromEdges(4,
		edgelist.Edge{U: 0, V: 1, Weight: 2},
		edgelist.Edge{U: 1, V: 2, Weight: 3},
		edgelist.Edge{U: 2, V: 3, Weight: 2},
		edgelist.Edge{U: 3, V: 0, Weight: 3},
	)

	ok, err := ghs.Verify(g, ghs.WithSeed(7))
	fmt.Println(ok, err)
	// Output: true <nil>
}
