package suggest

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Suggest.
	ErrGraphNil = errors.New("suggest: graph is nil")

	// ErrUserNotFound indicates that the user to suggest for does not exist.
	ErrUserNotFound = errors.New("suggest: user not found")

	// ErrNegativeLimit indicates that WithLimit received a negative value.
	ErrNegativeLimit = errors.New("suggest: limit must be non-negative")
)

// Option configures optional behavior of Suggest.
type Option func(*Options)

// Options holds configurable parameters for Suggest.
type Options struct {
	// Ctx allows cancellation; checked once per direct friend.
	Ctx context.Context

	// Limit caps the number of returned candidates. Zero means no cap.
	Limit int
}

// DefaultOptions returns Options with a Background context and no limit.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Limit: 0,
	}
}

// WithContext returns an Option that sets the Context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit returns an Option that keeps only the top n candidates.
// Zero keeps all; negative values are rejected by Suggest.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// Candidate is a suggested friend and the number of mutual connections.
type Candidate struct {
	// ID is the suggested user.
	ID int

	// Mutual counts direct-friend adjacency entries that reach ID.
	Mutual int
}

// Result is the ranked outcome of Suggest.
type Result struct {
	// UserID is the user the suggestions are for.
	UserID int

	// Candidates is sorted by Mutual descending, then ID ascending.
	Candidates []Candidate
}

// Empty reports the "no suggestions" state: the user exists but nobody is
// two hops away. It is distinct from every error Suggest returns.
func (r *Result) Empty() bool {
	return r == nil || len(r.Candidates) == 0
}
