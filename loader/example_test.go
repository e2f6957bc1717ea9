package loader_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/loader"
)

// ExampleLoad replays a three-row file; row 1 names users defined later.
func ExampleLoad() {
	const data = `1,Ann,ann,2,3
2,Bo,bo
3,Cy,cy
oops,Bad,bad
`
	g := core.NewGraph()
	report, err := loader.Load(context.Background(), g, strings.NewReader(data))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("rows=%d accepted=%d skipped=%d\n", report.Rows, report.Accepted, report.Skipped)
	fmt.Println(g.Connections(1), g.Connections(3))
	// Output:
	// rows=4 accepted=3 skipped=1
	// [2 3] [1]
}
