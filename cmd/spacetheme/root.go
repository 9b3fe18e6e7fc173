package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spacetheme/spacetheme/internal/messages"
)

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return cmd.Help()
			}
			return runInteractive(cmd, flags)
		},
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", messages.RootConfigFlag)
	cmd.PersistentFlags().BoolVar(&flags.json, "json", false, messages.RootJSONFlag)
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, messages.RootNoColorFlag)

	for _, def := range actionCommands {
		cmd.AddCommand(newActionCmd(flags, def))
	}
	cmd.AddCommand(
		newStatusCmd(flags),
		newDiffCmd(flags),
		newSteamPathCmd(flags),
	)
	return cmd
}
