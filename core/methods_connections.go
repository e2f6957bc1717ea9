// File: methods_connections.go
// Role: Connection lifecycle & neighborhood queries.
//
// Determinism:
//   - Connections() preserves insertion order, duplicates included.
//
// Concurrency:
//   - AddConnection holds muUsers then muAdj (write) so both directions and
//     any placeholder records appear atomically to readers.
//   - Read queries hold muAdj read lock only.
package core

import "fmt"

// AddConnection appends b to a's adjacency list and a to b's adjacency list.
//
// Implementation:
//   - Stage 1: Under muUsers write lock, resolve both endpoints.
//     Strict graphs reject unknown IDs; otherwise a placeholder user is created.
//   - Stage 2: Under muAdj write lock, append both directions.
//
// Behavior highlights:
//   - No dedup: repeating a connection appends again, inflating degree.
//   - Self-loop (a == b) appends a to its own list twice.
//   - In strict mode the graph is untouched when an endpoint is unknown.
//
// Errors:
//   - ErrUserNotFound: strict mode only, if a or b has no user record.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddConnection(a, b int) error {
	g.muUsers.Lock()
	defer g.muUsers.Unlock()

	if g.strict {
		for _, id := range [2]int{a, b} {
			if _, ok := g.users[id]; !ok {
				return fmt.Errorf("core: AddConnection(%d, %d): user %d: %w", a, b, id, ErrUserNotFound)
			}
		}
	}
	for _, id := range [2]int{a, b} {
		if _, ok := g.users[id]; !ok {
			g.users[id] = &User{ID: id, Placeholder: true}
		}
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	g.ensureAdjacency(a)
	g.ensureAdjacency(b)
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)

	g.connections++
	if a == b {
		g.selfLoops++
	}

	return nil
}

// Connections returns a copy of id's adjacency list in insertion order.
// An unknown id yields an empty, non-nil slice.
//
// Complexity: O(d) time and space, d = len(adjacency[id]).
func (g *Graph) Connections(id int) []int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	src := g.adjacency[id]
	out := make([]int, len(src))
	copy(out, src)

	return out
}

// Degree returns the raw length of id's adjacency list.
// Parallel connections count once per occurrence; a self-loop counts twice.
// Unknown ids have degree 0.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return len(g.adjacency[id])
}

// ConnectionCount returns the number of successful AddConnection calls.
// Complexity: O(1).
func (g *Graph) ConnectionCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.connections
}

// ensureAdjacency makes sure id has an adjacency list.
// Caller must hold muAdj write lock.
func (g *Graph) ensureAdjacency(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = []int{}
	}
}
