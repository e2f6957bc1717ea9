package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialnet/menu"
)

// runMenu starts the interactive loop on the command's stdin and stdout.
func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := currentApp()
	if err != nil {
		return err
	}

	return menu.Run(cmd.Context(), a.graph, cmd.InOrStdin(), cmd.OutOrStdout(),
		menu.WithSettings(a.settings()),
		menu.WithLogger(a.logger),
	)
}
