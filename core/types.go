// Package core defines the central social Graph and User types,
// and provides thread-safe primitives for loading and querying them.
//
// All core APIs use separate sync.RWMutex locks internally (muUsers for the
// user catalog, muAdj for adjacency lists), so concurrent readers never block
// each other.
//
// This file declares User, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrUserNotFound    - requested user does not exist.
//	ErrHandleNotFound  - no user carries the requested handle.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrUserNotFound indicates an operation referenced a non-existent user.
	ErrUserNotFound = errors.New("core: user not found")

	// ErrHandleNotFound indicates that no user carries the requested handle.
	ErrHandleNotFound = errors.New("core: handle not found")
)

// User is a member of the social graph.
//
// ID is immutable once assigned; Name and Handle may be replaced by a later
// AddUser call with the same ID.
type User struct {
	// ID uniquely identifies this User within its Graph.
	ID int

	// Name is the display name.
	Name string

	// Handle is the human-readable lookup key (case-sensitive).
	Handle string

	// Placeholder is true while the record exists only because a connection
	// referenced its ID. AddUser for the same ID clears it.
	Placeholder bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictEndpoints makes AddConnection reject IDs that have no user record
// (ErrUserNotFound) instead of creating placeholder users for them.
func WithStrictEndpoints() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is the in-memory undirected social graph.
//
// users maps ID → User; adjacency maps ID → neighbor IDs in insertion order.
// Parallel edges and self-loops are kept as-is.
// muUsers protects users; muAdj protects adjacency and connections.
// Lock order is always muUsers → muAdj.
type Graph struct {
	muUsers sync.RWMutex // guards users
	muAdj   sync.RWMutex // guards adjacency and connections

	// Configuration flags
	strict bool // reject unknown endpoints in AddConnection

	// Storage
	users       map[int]*User // user ID → User
	adjacency   map[int][]int // user ID → neighbor IDs, insertion order
	connections int           // successful AddConnection calls
	selfLoops   int           // connections with equal endpoints
}

// GraphStats is a read-only snapshot of a Graph's configuration and sizes.
type GraphStats struct {
	// Strict reports whether WithStrictEndpoints was applied.
	Strict bool

	// UserCount is the number of user records, placeholders included.
	UserCount int

	// PlaceholderCount is the number of users auto-created by AddConnection.
	PlaceholderCount int

	// ConnectionCount is the number of AddConnection calls that succeeded.
	ConnectionCount int

	// SelfLoopCount is the number of connections whose endpoints are equal.
	SelfLoopCount int

	// IsolatedCount is the number of users with an empty adjacency list.
	IsolatedCount int
}

// NewGraph creates an empty Graph with the given options.
// By default unknown connection endpoints become placeholder users.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		users:     make(map[int]*User),
		adjacency: make(map[int][]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
