package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spacetheme/spacetheme/internal/install"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

func newStatusCmd(flags *rootFlags) *cobra.Command {
	var steamPath string
	cmd := &cobra.Command{
		Use:       messages.StatusUse,
		Short:     messages.StatusShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: target.SelectorNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := target.All
			if len(args) == 1 {
				var err error
				if kinds, err = target.ParseSelector(args[0]); err != nil {
					return err
				}
			}
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			statuses, err := a.orch.Inspect(cmd.Context(), kinds, steamPath)
			if err != nil {
				return err
			}
			if a.json {
				return a.writeJSON(statuses)
			}
			for _, st := range statuses {
				a.printStatus(st)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&steamPath, "steam-path", "", messages.FlagSteamPath)
	return cmd
}

func (a *app) printStatus(st install.TargetStatus) {
	var label string
	switch {
	case st.Installed:
		label = a.paint(color.New(color.FgGreen), messages.StatusInstalledLabel)
	case st.Eligible:
		label = a.paint(color.New(color.FgYellow), messages.StatusMissingLabel)
	default:
		label = a.paint(color.New(color.FgRed), messages.StatusUnavailLabel)
	}
	_, _ = fmt.Fprintf(a.out, messages.StatusLineFmt, label, st.DisplayName)
	if st.Path != "" {
		_, _ = fmt.Fprintf(a.out, messages.StatusPathFmt, st.Path)
	}
	if st.Detail != "" {
		_, _ = fmt.Fprintf(a.out, messages.StatusDetailFmt, st.Detail)
	}
}
