// Package tree implements the bounded connection tree of a user on core.Graph.
//
// The walk is a plain depth-first recursion traverse(id, depth) over each
// user's adjacency list in insertion order. It keeps no visited set, so a
// mutual connection A–B prints B under A and A again under B; the depth
// limit is the only bound on output size.
//
// Key features:
//   - Walk(g, rootID, opts...): pre-order list of (id, depth) lines
//   - Render(w, g, res): indented text, "|-- " marker below the root
//   - Hooks: OnVisit (pre-order) with error abort
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(1 + d + d²) for depth 2 on a graph of max degree d.
//   - Memory: O(lines) for the result plus O(MaxDepth) recursion.
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithOnVisit(fn)      pre-order hook; error aborts the walk.
//   - WithMaxDepth(limit)  deepest level visited (>= 0, default 2).
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrRootNotFound      if rootID has no user record.
//   - ErrNegativeDepth     if the depth limit is negative.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnVisit.
package tree
