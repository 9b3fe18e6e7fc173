package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacetheme/spacetheme/internal/messages"
)

func newSteamPathCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.SteamPathUse,
		Short: messages.SteamPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			root, err := a.orch.SteamRoot(cmd.Context())
			if err != nil {
				return err
			}
			if a.json {
				return a.writeJSON(map[string]string{"path": root})
			}
			_, err = fmt.Fprintln(a.out, root)
			return err
		},
	}
}
