package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialnet/tree"
)

// --- Global Command Variables ---
var (
	configPath  string // --config
	dataFile    string // --data, overrides config data_file
	logLevel    string // --log-level, overrides config log_level
	strictFlag  bool   // --strict, overrides config strict_connections
	depthFlag   int    // connections --depth
	suggestFlag int    // suggest --limit
	topFlag     int    // influencers --limit

	rootCmd = &cobra.Command{
		Use:   "socialnet",
		Short: "Query a social graph loaded from a CSV file",
		Long: `socialnet loads users and their connections from a CSV file
(id,name,handle[,neighborId...]) and answers three questions:
who a user is connected to, whom they might know, and who is
best connected overall.

Without a subcommand it starts the interactive menu.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupApp,
		PersistentPostRun: teardownApp,
		RunE:              runMenu, // Defined in cmd_menu.go
	}

	menuCmd = &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE:  runMenu, // Defined in cmd_menu.go
	}

	// --- Queries ---
	connectionsCmd = &cobra.Command{
		Use:     "connections HANDLE",
		Short:   "Print the connection tree of a user",
		Aliases: []string{"tree"},
		Args:    cobra.ExactArgs(1),
		RunE:    runConnections, // Defined in cmd_query.go
	}
	suggestCmd = &cobra.Command{
		Use:   "suggest HANDLE",
		Short: "Suggest friends of friends ranked by mutual connections",
		Args:  cobra.ExactArgs(1),
		RunE:  runSuggest, // Defined in cmd_query.go
	}
	influencersCmd = &cobra.Command{
		Use:   "influencers",
		Short: "Rank users by number of connections",
		Args:  cobra.NoArgs,
		RunE:  runInfluencers, // Defined in cmd_query.go
	}

	// --- Diagnostics ---
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print graph size counters",
		Args:  cobra.NoArgs,
		RunE:  runStats, // Defined in cmd_stats.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "data", "d", "", "CSV data file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "fail the load on connections to unknown user ids")

	connectionsCmd.Flags().IntVar(&depthFlag, "depth", tree.DefaultMaxDepth, "maximum tree depth")
	suggestCmd.Flags().IntVarP(&suggestFlag, "limit", "n", 0, "maximum number of suggestions (0 = all)")
	influencersCmd.Flags().IntVarP(&topFlag, "limit", "n", 0, "maximum number of users (0 = all)")

	rootCmd.AddCommand(menuCmd, connectionsCmd, suggestCmd, influencersCmd, statsCmd)
}
