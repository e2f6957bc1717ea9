// Package config loads runtime settings for the socialnet CLI.
//
// Resolution order (later wins):
//
//	Default() -> YAML file (optional) -> SOCIALNET_* environment -> Validate()
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialnet/tree"
)

// Environment names understood by the logging package.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Environment variable names.
const (
	EnvKeyDataFile        = "SOCIALNET_DATA_FILE"
	EnvKeyEnvironment     = "SOCIALNET_ENV"
	EnvKeyLogLevel        = "SOCIALNET_LOG_LEVEL"
	EnvKeyMaxDepth        = "SOCIALNET_MAX_DEPTH"
	EnvKeySuggestionLimit = "SOCIALNET_SUGGESTION_LIMIT"
	EnvKeyInfluenceLimit  = "SOCIALNET_INFLUENCE_LIMIT"
	EnvKeyStrict          = "SOCIALNET_STRICT"
)

var (
	// ErrReadFailed wraps failures reading the YAML file.
	ErrReadFailed = errors.New("config: read failed")

	// ErrParseFailed wraps YAML decoding failures and malformed env values.
	ErrParseFailed = errors.New("config: parse failed")

	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid")
)

// Config holds all settings for one CLI run.
type Config struct {
	// DataFile is the CSV graph file.
	DataFile string `yaml:"data_file" validate:"required"`

	// Environment selects the logger flavour.
	Environment string `yaml:"environment" validate:"oneof=development production"`

	// LogLevel is any level zap understands (debug, info, warn, error...).
	LogLevel string `yaml:"log_level" validate:"required"`

	// MaxDepth bounds the connection tree.
	MaxDepth int `yaml:"max_depth" validate:"gte=0"`

	// SuggestionLimit caps suggestion output; 0 means unlimited.
	SuggestionLimit int `yaml:"suggestion_limit" validate:"gte=0"`

	// InfluenceLimit caps influence output; 0 means unlimited.
	InfluenceLimit int `yaml:"influence_limit" validate:"gte=0"`

	// StrictConnections makes connections to unknown ids fail the load.
	StrictConnections bool `yaml:"strict_connections"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataFile:        "users.csv",
		Environment:     EnvDevelopment,
		LogLevel:        "info",
		MaxDepth:        tree.DefaultMaxDepth,
		SuggestionLimit: 0,
		InfluenceLimit:  0,
	}
}

// Load resolves settings from path (skipped when empty), then the
// environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrParseFailed, path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			parts := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(parts, ", "))
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.DataFile = getEnv(EnvKeyDataFile, c.DataFile)
	c.Environment = getEnv(EnvKeyEnvironment, c.Environment)
	c.LogLevel = getEnv(EnvKeyLogLevel, c.LogLevel)

	ints := []struct {
		key string
		dst *int
	}{
		{EnvKeyMaxDepth, &c.MaxDepth},
		{EnvKeySuggestionLimit, &c.SuggestionLimit},
		{EnvKeyInfluenceLimit, &c.InfluenceLimit},
	}
	for _, e := range ints {
		v, err := getEnvInt(e.key, *e.dst)
		if err != nil {
			return err
		}
		*e.dst = v
	}

	if raw := os.Getenv(EnvKeyStrict); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrParseFailed, EnvKeyStrict, raw)
		}
		c.StrictConnections = b
	}

	return nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrParseFailed, key, raw)
	}
	return v, nil
}
