// SPDX-License-Identifier: MIT
// Package: socialnet/loader
//
// options.go - functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type Option func(*loaderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     Read/Load themselves never panic.
//   • newLoaderConfig applies options in order (later overrides earlier).

package loader

import "go.uber.org/zap"

// Deterministic defaults.
const (
	defaultDelimiter = ','
	defaultComment   = rune(0) // no comment lines
)

// loaderConfig aggregates all knobs used by Read and Apply.
// It is passed by value.
type loaderConfig struct {
	logger    *zap.Logger
	delimiter rune
	comment   rune
}

// Option customizes the loader.
type Option func(*loaderConfig)

// newLoaderConfig constructs a config with defaults and applies all options in order.
func newLoaderConfig(opts ...Option) loaderConfig {
	cfg := loaderConfig{
		logger:    zap.NewNop(),
		delimiter: defaultDelimiter,
		comment:   defaultComment,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes skip warnings and load summaries to l.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("loader: WithLogger(nil)")
	}
	return func(c *loaderConfig) {
		c.logger = l.Named("loader")
	}
}

// WithDelimiter sets the field separator (default ',').
// Panics on characters encoding/csv cannot use as a separator.
func WithDelimiter(r rune) Option {
	if r == 0 || r == '"' || r == '\r' || r == '\n' {
		panic("loader: WithDelimiter: invalid separator")
	}
	return func(c *loaderConfig) {
		c.delimiter = r
	}
}

// WithComment makes rows starting with r be ignored entirely (not counted).
func WithComment(r rune) Option {
	return func(c *loaderConfig) {
		c.comment = r
	}
}
