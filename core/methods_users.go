// File: methods_users.go
// Role: User lifecycle & queries.
//
// Determinism:
//   - UserIDs() returns IDs sorted ascending.
//   - UserIDByHandle() scans in ascending ID order; first match wins.
//
// Concurrency:
//   - User catalog protected by muUsers.
//   - Adjacency bootstrap under muAdj (lock order muUsers -> muAdj).
package core

import "sort"

// AddUser inserts or overwrites the user record at id.
//
// Implementation:
//   - Stage 1: Under muUsers write lock, replace the record (later call wins).
//   - Stage 2: Under muAdj write lock, create the adjacency list if missing.
//
// Behavior highlights:
//   - Existing adjacency is never reset, so AddUser may safely follow
//     AddConnection calls that touched id (the placeholder is filled in).
//   - Duplicate IDs are not an error.
//   - Any handle is accepted, including "" and handles with spaces; such
//     users are still connected and ranked but UserIDByHandle may not reach them.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddUser(id int, name, handle string) {
	g.muUsers.Lock()
	defer g.muUsers.Unlock()

	g.users[id] = &User{ID: id, Name: name, Handle: handle}

	g.muAdj.Lock()
	g.ensureAdjacency(id)
	g.muAdj.Unlock()
}

// HasUser reports whether a user record exists for id (placeholders included).
// Complexity: O(1).
func (g *Graph) HasUser(id int) bool {
	g.muUsers.RLock()
	defer g.muUsers.RUnlock()
	_, ok := g.users[id]

	return ok
}

// User returns a copy of the user record at id.
//
// Errors:
//   - ErrUserNotFound: if no record exists.
//
// Complexity: O(1).
func (g *Graph) User(id int) (User, error) {
	g.muUsers.RLock()
	defer g.muUsers.RUnlock()

	u, ok := g.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}

	return *u, nil
}

// UserIDByHandle returns the ID of the first user, in ascending ID order,
// whose handle equals handle exactly.
//
// Implementation:
//   - Stage 1: Snapshot and sort user IDs under muUsers read lock.
//   - Stage 2: Linear scan comparing handles.
//
// Behavior highlights:
//   - Deterministic for duplicate handles: the lowest ID wins.
//   - An empty handle never matches, so placeholders and users loaded
//     without a handle are not reachable by handle.
//
// Errors:
//   - ErrHandleNotFound: if no user carries handle.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) UserIDByHandle(handle string) (int, error) {
	if handle == "" {
		return 0, ErrHandleNotFound
	}

	g.muUsers.RLock()
	defer g.muUsers.RUnlock()

	for _, id := range sortedKeys(g.users) {
		if g.users[id].Handle == handle {
			return id, nil
		}
	}

	return 0, ErrHandleNotFound
}

// UserIDs returns all user IDs in ascending order.
//
// This is the stable enumeration surface that query packages use as the
// secondary (tie-break) ordering.
//
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) UserIDs() []int {
	g.muUsers.RLock()
	defer g.muUsers.RUnlock()

	return sortedKeys(g.users)
}

// UserCount returns the number of user records, placeholders included.
// Complexity: O(1).
func (g *Graph) UserCount() int {
	g.muUsers.RLock()
	defer g.muUsers.RUnlock()

	return len(g.users)
}

// sortedKeys returns the keys of m in ascending order.
// Caller must hold muUsers (read or write).
func sortedKeys(m map[int]*User) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
