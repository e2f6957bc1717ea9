package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// runStats prints the core.GraphStats counters, one per line.
func runStats(cmd *cobra.Command, _ []string) error {
	a, err := currentApp()
	if err != nil {
		return err
	}
	st := a.graph.Stats()

	w := cmd.OutOrStdout()
	_, err = fmt.Fprintf(w, "users:        %d\nplaceholders: %d\nconnections:  %d\nself-loops:   %d\nisolated:     %d\nstrict:       %t\n",
		st.UserCount, st.PlaceholderCount, st.ConnectionCount, st.SelfLoopCount, st.IsolatedCount, st.Strict)
	return err
}
