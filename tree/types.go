// Package tree defines types and options for the depth-bounded connection
// tree walk, including cancellation, a pre-order hook, and depth limiting.
package tree

import (
	"context"
	"errors"
)

// DefaultMaxDepth is the deepest level printed below the root.
// The root is depth 0, so the default tree shows friends and friends-of-friends.
const DefaultMaxDepth = 2

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Walk.
	ErrGraphNil = errors.New("tree: graph is nil")

	// ErrRootNotFound indicates that the root user ID does not exist in the graph.
	ErrRootNotFound = errors.New("tree: root user not found")

	// ErrNegativeDepth indicates that WithMaxDepth received a negative limit.
	// An unbounded walk never terminates on a graph with cycles.
	ErrNegativeDepth = errors.New("tree: max depth must be non-negative")
)

// Option configures optional behavior of Walk.
type Option func(*Options)

// Options holds configurable parameters for the connection tree walk.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per visited node.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked for every emitted line (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(id, depth int) error

	// MaxDepth limits recursion: nodes deeper than MaxDepth are not visited.
	// Zero visits only the root. Default is DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns Options with:
//   - Background context
//   - No visit hook
//   - MaxDepth = DefaultMaxDepth
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: DefaultMaxDepth,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits the walk to depth limit.
// A limit of 0 means only the root is visited; negative limits are rejected by Walk.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// Line is one visited node of the tree.
type Line struct {
	// ID is the user visited.
	ID int

	// Depth is the number of hops from the root along the walked path.
	Depth int
}

// Result captures the outcome of a walk.
type Result struct {
	// Root is the user the walk started from.
	Root int

	// MaxDepth is the limit the walk ran with.
	MaxDepth int

	// Lines lists visited nodes in pre-order. The same user may appear
	// several times when reachable along different paths.
	Lines []Line
}
