package suggest

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/socialnet/core"
)

// NoSuggestions is printed instead of candidate lines when Result.Empty().
const NoSuggestions = "No suggestions available."

// Render writes the header line for the user followed by one line per
// candidate, or NoSuggestions when there are none.
func Render(w io.Writer, g *core.Graph, res *Result) error {
	if g == nil {
		return ErrGraphNil
	}
	if res == nil {
		res = &Result{}
	}

	bw := bufio.NewWriter(w)
	owner, _ := g.User(res.UserID)
	fmt.Fprintf(bw, "Suggested friends for %s based on mutual connections:\n", owner.Name)
	for _, c := range res.Candidates {
		u, _ := g.User(c.ID)
		fmt.Fprintf(bw, " - %s (%s), Mutual Friends: %d\n", u.Name, u.Handle, c.Mutual)
	}
	if res.Empty() {
		fmt.Fprintln(bw, NoSuggestions)
	}

	return bw.Flush()
}
