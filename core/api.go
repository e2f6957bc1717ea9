// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Strict reports whether AddConnection rejects unknown endpoints.
//
// Implementation:
//   - Stage 1: Acquire muUsers read lock to observe configuration consistently.
//   - Stage 2: Return the immutable flag value.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Strict() bool {
	g.muUsers.RLock()
	defer g.muUsers.RUnlock()

	return g.strict
}

// Stats produces a deterministic, read-only snapshot of configuration flags
// and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muUsers.RLock, snapshot flags, user and placeholder counts, then release.
//   - Stage 2: Acquire muAdj.RLock, snapshot connection counters and isolated users, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//
// Determinism:
//   - Deterministic for a fixed graph state; under concurrent loading each
//     phase is internally consistent.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muUsers.RLock()
	stats := GraphStats{
		Strict:    g.strict,
		UserCount: len(g.users),
	}
	for _, u := range g.users {
		if u.Placeholder {
			stats.PlaceholderCount++
		}
	}
	g.muUsers.RUnlock()

	g.muAdj.RLock()
	stats.ConnectionCount = g.connections
	stats.SelfLoopCount = g.selfLoops
	for _, nbs := range g.adjacency {
		if len(nbs) == 0 {
			stats.IsolatedCount++
		}
	}
	g.muAdj.RUnlock()

	return &stats
}
