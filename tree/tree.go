package tree

import (
	"fmt"

	"github.com/katalvlaran/socialnet/core"
)

// walker encapsulates state during the walk.
type walker struct {
	graph *core.Graph // underlying graph
	opts  Options     // walk options
	res   *Result     // result collector
}

// Walk performs a depth-bounded, depth-first walk from rootID and returns the
// visited nodes in pre-order.
//
// There is no visited set: on a graph with cycles the same user is revisited
// along every path, and the depth limit alone bounds the output. Neighbors are
// explored in adjacency insertion order.
//
// For the default depth of 2 the number of lines is
// 1 + deg(root) + Σ deg(n) over n in Connections(root).
func Walk(g *core.Graph, rootID int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}
	if wopts.MaxDepth < 0 {
		return nil, ErrNegativeDepth
	}

	// 3. Verify root
	if !g.HasUser(rootID) {
		return nil, fmt.Errorf("tree: Walk(%d): %w", rootID, ErrRootNotFound)
	}

	w := &walker{
		graph: g,
		opts:  wopts,
		res:   &Result{Root: rootID, MaxDepth: wopts.MaxDepth},
	}
	if err := w.traverse(rootID, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// traverse emits id at depth, then recurses into each neighbor at depth+1.
func (w *walker) traverse(id, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Record and notify
	w.res.Lines = append(w.res.Lines, Line{ID: id, Depth: depth})
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("tree: OnVisit hook for %d: %w", id, err)
		}
	}

	// 4. Leaves at the limit need no neighbor fetch
	if depth == w.opts.MaxDepth {
		return nil
	}

	// 5. Explore each neighbor in insertion order
	for _, nid := range w.graph.Connections(id) {
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	return nil
}
