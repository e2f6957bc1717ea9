// Package core provides a thread-safe in-memory social Graph with a minimal,
// composable API surface.
//
// The Graph G = (U,E) is undirected:
//
//   - Users are keyed by a stable integer ID and carry a Name and a Handle.
//   - Each user owns an adjacency list of neighbor IDs in insertion order.
//   - AddConnection(a,b) appends both directions under a single write lock.
//   - Parallel connections and self-loops are stored as-is (no dedup);
//     degree is the raw adjacency length.
//   - Separate sync.RWMutex for users (muUsers) and adjacency (muAdj)
//     so that concurrent readers never contend.
//
// Loading contract:
//
//	AddUser never resets adjacency. Rows may therefore reference users that
//	appear later in the file: the referenced ID first becomes a placeholder
//	user (empty Name/Handle, Placeholder=true), and the later AddUser fills
//	in the record while keeping every connection already made.
//
// Configuration Options (GraphOption):
//
//	– WithStrictEndpoints()
//	    AddConnection rejects IDs without a user record (ErrUserNotFound)
//	    instead of creating placeholders.
//
// Core Methods:
//
//	// User lifecycle
//	AddUser(id int, name, handle string)         // O(1)
//	HasUser(id int) bool                         // O(1)
//	User(id int) (User, error)                   // O(1)
//	UserIDByHandle(handle string) (int, error)   // O(V log V)
//	UserIDs() []int                              // O(V log V), ascending
//
//	// Connections
//	AddConnection(a, b int) error                // O(1)
//	Connections(id int) []int                    // O(d), copy
//	Degree(id int) int                           // O(1)
//
//	// Snapshots
//	Stats() *GraphStats                          // O(V)
//
// Example:
//
//	g := core.NewGraph()
//	g.AddUser(1, "Ann", "ann")
//	g.AddUser(2, "Bo", "bo")
//	_ = g.AddConnection(1, 2)
//	id, err := g.UserIDByHandle("bo") // 2, nil
package core
