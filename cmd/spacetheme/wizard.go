package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/spacetheme/spacetheme/internal/install"
	"github.com/spacetheme/spacetheme/internal/terminal"
	"github.com/spacetheme/spacetheme/internal/wizard"
)

var isTerminal = terminal.IsInteractive

var runWizard = func(defaults wizard.Defaults, out io.Writer) (wizard.Choice, bool, error) {
	return wizard.Run(wizard.NewHuhUI(), defaults, out)
}

// runInteractive collects a request through the form and runs it.
func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	a, err := newApp(cmd, flags)
	if err != nil {
		return err
	}
	defaults := wizard.Defaults{SteamPath: a.cfg.Steam.InstallPath}
	if defaults.SteamPath == "" {
		// Detection failures just leave the field empty.
		if root, err := a.orch.SteamRoot(cmd.Context()); err == nil {
			defaults.SteamPath = root
		}
	}
	choice, ok, err := runWizard(defaults, a.out)
	if err != nil || !ok {
		return err
	}
	return a.run(cmd, install.Request{
		Targets:             choice.Targets,
		Action:              choice.Action,
		ResolvedRoot:        choice.SteamPath,
		MillenniumRequested: choice.Millennium,
	})
}
