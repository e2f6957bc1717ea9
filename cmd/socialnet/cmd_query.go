package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialnet/menu"
)

// runConnections prints the connection tree for args[0].
func runConnections(cmd *cobra.Command, args []string) error {
	return dispatch(cmd, menu.Command{Choice: menu.ChoiceConnections, Handle: args[0]}, func(s *menu.Settings) {
		if cmd.Flags().Changed("depth") {
			s.MaxDepth = depthFlag
		}
	})
}

// runSuggest prints friend suggestions for args[0].
func runSuggest(cmd *cobra.Command, args []string) error {
	return dispatch(cmd, menu.Command{Choice: menu.ChoiceSuggestions, Handle: args[0]}, func(s *menu.Settings) {
		if cmd.Flags().Changed("limit") {
			s.SuggestionLimit = suggestFlag
		}
	})
}

// runInfluencers prints the influence ranking.
func runInfluencers(cmd *cobra.Command, _ []string) error {
	return dispatch(cmd, menu.Command{Choice: menu.ChoiceInfluencers}, func(s *menu.Settings) {
		if cmd.Flags().Changed("limit") {
			s.InfluenceLimit = topFlag
		}
	})
}

// dispatch runs one menu command with per-command flag overrides applied.
func dispatch(cmd *cobra.Command, mc menu.Command, override func(*menu.Settings)) error {
	a, err := currentApp()
	if err != nil {
		return err
	}
	s := a.settings()
	override(&s)

	return menu.Dispatch(cmd.Context(), cmd.OutOrStdout(), a.graph, mc, s)
}
