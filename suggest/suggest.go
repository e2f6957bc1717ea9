package suggest

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/socialnet/core"
)

// Suggest ranks friend-of-friend candidates for userID by mutual connections.
//
// Steps:
//  1. direct = set of userID's neighbors (duplicate edges collapse).
//  2. For each friend f in direct (ascending ID), for each neighbor p of f
//     (adjacency order): if p != userID and p ∉ direct, count[p]++.
//  3. Sort by count descending, ID ascending.
//  4. Truncate to Limit when set.
//
// Parallel edges between a friend and a candidate count once per occurrence,
// matching the raw adjacency lists.
//
// Complexity: O(Σ deg(f) + k log k) for f in direct and k candidates.
func Suggest(g *core.Graph, userID int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}
	if sopts.Limit < 0 {
		return nil, ErrNegativeLimit
	}

	if !g.HasUser(userID) {
		return nil, fmt.Errorf("suggest: Suggest(%d): %w", userID, ErrUserNotFound)
	}

	// 1. Direct friends as a set, iterated in ascending order.
	direct := make(map[int]struct{})
	for _, f := range g.Connections(userID) {
		direct[f] = struct{}{}
	}
	friends := make([]int, 0, len(direct))
	for f := range direct {
		friends = append(friends, f)
	}
	sort.Ints(friends)

	// 2. Count second-hop candidates.
	mutual := make(map[int]int)
	for _, f := range friends {
		select {
		case <-sopts.Ctx.Done():
			return nil, sopts.Ctx.Err()
		default:
		}
		for _, p := range g.Connections(f) {
			if p == userID {
				continue
			}
			if _, isFriend := direct[p]; isFriend {
				continue
			}
			mutual[p]++
		}
	}

	// 3. Rank with an explicit secondary key.
	cands := make([]Candidate, 0, len(mutual))
	for id, n := range mutual {
		cands = append(cands, Candidate{ID: id, Mutual: n})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Mutual != cands[j].Mutual {
			return cands[i].Mutual > cands[j].Mutual
		}
		return cands[i].ID < cands[j].ID
	})

	// 4. Optional cap.
	if sopts.Limit > 0 && len(cands) > sopts.Limit {
		cands = cands[:sopts.Limit]
	}

	return &Result{UserID: userID, Candidates: cands}, nil
}
