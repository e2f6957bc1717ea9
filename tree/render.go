package tree

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/socialnet/core"
)

const (
	indentUnit   = "    " // per depth level
	branchMarker = "|-- " // prefix for non-root lines
)

// Render writes one line per visited node:
// four spaces per depth level, "|-- " below the root, then "<name> (<handle>)".
// Users without a record render with empty name and handle.
func Render(w io.Writer, g *core.Graph, res *Result) error {
	if g == nil {
		return ErrGraphNil
	}
	if res == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, ln := range res.Lines {
		u, _ := g.User(ln.ID)
		bw.WriteString(FormatLine(u, ln.Depth))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// FormatLine formats a single tree line without the trailing newline.
func FormatLine(u core.User, depth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(indentUnit, depth))
	if depth > 0 {
		sb.WriteString(branchMarker)
	}
	sb.WriteString(u.Name)
	sb.WriteString(" (")
	sb.WriteString(u.Handle)
	sb.WriteString(")")

	return sb.String()
}
