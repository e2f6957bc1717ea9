package influence

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/socialnet/core"
)

// Render writes the header line and one line per ranked entry.
func Render(w io.Writer, g *core.Graph, entries []Entry) error {
	if g == nil {
		return ErrGraphNil
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Influential users based on the number of connections:")
	for _, e := range entries {
		u, _ := g.User(e.ID)
		fmt.Fprintf(bw, " - %s (%s) with %d connections.\n", u.Name, u.Handle, e.Degree)
	}

	return bw.Flush()
}
