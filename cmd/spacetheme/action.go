package main

import (
	"github.com/spf13/cobra"

	"github.com/spacetheme/spacetheme/internal/install"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

type actionCommand struct {
	action     target.Action
	use        string
	short      string
	long       string
	millennium bool
}

var actionCommands = []actionCommand{
	{action: target.Install, use: messages.InstallUse, short: messages.InstallShort, long: messages.InstallLong, millennium: true},
	{action: target.Uninstall, use: messages.UninstallUse, short: messages.UninstallShort, long: messages.UninstallLong},
	{action: target.Reset, use: messages.ResetUse, short: messages.ResetShort, long: messages.ResetLong, millennium: true},
}

func newActionCmd(flags *rootFlags, def actionCommand) *cobra.Command {
	var steamPath string
	var millennium bool

	cmd := &cobra.Command{
		Use:       def.use,
		Short:     def.short,
		Long:      def.long,
		Args:      cobra.ExactArgs(1),
		ValidArgs: target.SelectorNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := target.ParseSelector(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			return a.run(cmd, install.Request{
				Targets:             kinds,
				Action:              def.action,
				ResolvedRoot:        steamPath,
				MillenniumRequested: millennium,
			})
		},
	}
	cmd.Flags().StringVar(&steamPath, "steam-path", "", messages.FlagSteamPath)
	if def.millennium {
		cmd.Flags().BoolVar(&millennium, "millennium", false, messages.FlagMillennium)
	}
	return cmd
}

// outcomeJSON is the final line written in --json mode.
type outcomeJSON struct {
	Status  install.Status `json:"status"`
	Reason  string         `json:"reason,omitempty"`
	Targets []resultJSON   `json:"targets"`
}

type resultJSON struct {
	Target  string `json:"target"`
	Changed bool   `json:"changed"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// run executes req. Progress lines have already been written by the sink, so
// a failed outcome exits non-zero without printing anything else.
func (a *app) run(cmd *cobra.Command, req install.Request) error {
	outcome := a.orch.Run(cmd.Context(), req)
	if a.json {
		summary := outcomeJSON{Status: outcome.Status, Reason: outcome.Reason, Targets: []resultJSON{}}
		for _, res := range outcome.Results {
			r := resultJSON{Target: res.Target.String(), Changed: res.Changed, Skipped: res.Skipped}
			if res.Err != nil {
				r.Error = res.Err.Error()
			}
			summary.Targets = append(summary.Targets, r)
		}
		if err := a.writeJSON(summary); err != nil {
			return err
		}
	}
	if !outcome.Succeeded() {
		return &SilentExitError{Code: 1}
	}
	return nil
}
