package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "leadwizard-cli",
		Short:         "Operator tooling for the lead wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newRelayCommand())
	rootCmd.AddCommand(newQuestionsCommand())

	return rootCmd
}
