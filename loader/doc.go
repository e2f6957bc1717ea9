// Package loader reads the flat social graph file and replays it into a
// core.Graph.
//
// File format: one user per row, comma separated:
//
//	id,name,handle[,neighborId...]
//
//	1,Ann,ann,2,3
//	2,Bo,bo
//	3,Cy,cy,2
//
// Rows are applied in file order: AddUser(id, name, handle) followed by
// AddConnection(id, n) for every neighbor. A row may name neighbors that
// appear later in the file; core keeps those connections when the later
// row is applied.
//
// Rows with fewer than three fields or non-integer ids are skipped and
// logged; they never reach the graph. Rows with a negative id or an empty or
// whitespace-containing handle are loaded with all their connections and
// logged as suspect (Record.Check, Report.Flagged).
//
// Options:
//
//   - WithLogger(l)      zap logger for skip warnings and the load summary.
//   - WithDelimiter(r)   field separator (default ',').
//   - WithComment(r)     comment-line prefix (default none).
package loader
