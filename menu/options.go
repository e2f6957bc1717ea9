package menu

import "go.uber.org/zap"

// runConfig holds the resolved options of Run.
type runConfig struct {
	settings Settings
	logger   *zap.Logger
}

// Option customizes Run.
type Option func(*runConfig)

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{
		settings: DefaultSettings(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSettings replaces DefaultSettings for every dispatched command.
func WithSettings(s Settings) Option {
	return func(c *runConfig) {
		c.settings = s
	}
}

// WithLogger routes per-round debug logs to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("menu: WithLogger(nil)")
	}
	return func(c *runConfig) {
		c.logger = l.Named("menu")
	}
}
