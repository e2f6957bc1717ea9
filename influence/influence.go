package influence

import (
	"errors"
	"sort"

	"github.com/katalvlaran/socialnet/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Rank.
	ErrGraphNil = errors.New("influence: graph is nil")

	// ErrNegativeLimit indicates that WithLimit received a negative value.
	ErrNegativeLimit = errors.New("influence: limit must be non-negative")
)

// Option configures optional behavior of Rank.
type Option func(*Options)

// Options holds configurable parameters for Rank.
type Options struct {
	// Limit caps the number of returned entries. Zero means no cap.
	Limit int
}

// WithLimit returns an Option that keeps only the top n users.
// Zero keeps all; negative values are rejected by Rank.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// Entry is one ranked user.
type Entry struct {
	// ID is the ranked user.
	ID int

	// Degree is the raw adjacency length of ID.
	Degree int
}

// Rank orders every user of g by degree, descending, ties by ID ascending.
//
// Degree is the raw adjacency length: parallel connections inflate it and a
// self-loop counts twice. Placeholder users are ranked like any other user.
// An empty graph yields an empty, non-nil slice.
//
// Complexity: O(V log V).
func Rank(g *core.Graph, opts ...Option) ([]Entry, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.Limit < 0 {
		return nil, ErrNegativeLimit
	}

	ids := g.UserIDs()
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, Entry{ID: id, Degree: g.Degree(id)})
	}
	// Degree descending, ID ascending.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Degree != out[j].Degree {
			return out[i].Degree > out[j].Degree
		}
		return out[i].ID < out[j].ID
	})

	if o.Limit > 0 && len(out) > o.Limit {
		out = out[:o.Limit]
	}

	return out, nil
}
