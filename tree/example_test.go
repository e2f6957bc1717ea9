package tree_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/tree"
)

// ExampleWalk prints the connection tree of a user in a small triangle:
//
//	  Ann
//	 /   \
//	Bo───Cy
//
// Every mutual connection shows up again one level deeper.
func ExampleWalk() {
	g := core.NewGraph()
	g.AddUser(1, "Ann", "ann")
	g.AddUser(2, "Bo", "bo")
	g.AddUser(3, "Cy", "cy")
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 3}} {
		_ = g.AddConnection(e[0], e[1])
	}

	res, err := tree.Walk(g, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = tree.Render(os.Stdout, g, res)

	// Output:
	// Bo (bo)
	//     |-- Ann (ann)
	//         |-- Bo (bo)
	//         |-- Cy (cy)
	//     |-- Cy (cy)
	//         |-- Ann (ann)
	//         |-- Bo (bo)
}
