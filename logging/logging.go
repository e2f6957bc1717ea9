// Package logging builds the zap logger used by the socialnet CLI.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadLevel is returned when the level string is not a zap level.
var ErrBadLevel = errors.New("logging: bad level")

// New creates a logger for environment at the given level.
//
// "production" yields JSON output with sampling; anything else yields the
// console encoder with colored levels. Both write to stderr so that
// stdout carries only query output.
func New(environment, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBadLevel, level, err)
	}

	var config zap.Config
	if environment == "production" {
		config = zap.NewProductionConfig()
		config.Sampling = &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		}
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = lvl
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("env", environment)), nil
}
