// Package suggest implements friend-of-friend recommendations on core.Graph.
//
// A candidate is any user exactly two hops away: reachable through at least
// one direct friend, and neither the user itself nor a direct friend. Each
// adjacency entry from a direct friend to the candidate adds one to its
// mutual count.
//
// Ordering is fully deterministic: mutual count descending, then user ID
// ascending.
//
// "No suggestions" is reported through Result.Empty(), never as an error, so
// callers can tell an unknown user (ErrUserNotFound) from a user with nobody
// to suggest.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked per direct friend.
//   - WithLimit(n)       keep the top n candidates (0 = all).
package suggest
