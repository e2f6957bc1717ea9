package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/config"
	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/loader"
	"github.com/katalvlaran/socialnet/logging"
	"github.com/katalvlaran/socialnet/menu"
)

// errNotLoaded guards commands that run without setupApp.
var errNotLoaded = errors.New("socialnet: graph not loaded")

// appState is built once per invocation by setupApp.
type appState struct {
	cfg    config.Config
	logger *zap.Logger
	graph  *core.Graph
}

var app *appState

// setupApp resolves configuration, builds the logger and loads the graph.
// Flags override the config file and environment.
func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataFile = dataFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("strict") {
		cfg.StrictConnections = strictFlag
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}

	var gopts []core.GraphOption
	if cfg.StrictConnections {
		gopts = append(gopts, core.WithStrictEndpoints())
	}
	g := core.NewGraph(gopts...)

	report, err := loader.LoadFile(cmd.Context(), g, cfg.DataFile, loader.WithLogger(logger))
	if err != nil {
		_ = logger.Sync()
		return fmt.Errorf("load %s: %w", cfg.DataFile, err)
	}
	logger.Debug("ready",
		zap.String("command", cmd.Name()),
		zap.String("data_file", cfg.DataFile),
		zap.Int("skipped", report.Skipped),
	)

	app = &appState{cfg: cfg, logger: logger, graph: g}
	return nil
}

func teardownApp(_ *cobra.Command, _ []string) {
	if app != nil {
		_ = app.logger.Sync()
	}
}

// settings maps the resolved config onto menu.Settings.
func (a *appState) settings() menu.Settings {
	return menu.Settings{
		MaxDepth:        a.cfg.MaxDepth,
		SuggestionLimit: a.cfg.SuggestionLimit,
		InfluenceLimit:  a.cfg.InfluenceLimit,
	}
}

func currentApp() (*appState, error) {
	if app == nil {
		return nil, errNotLoaded
	}
	return app, nil
}
