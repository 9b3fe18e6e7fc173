package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spacetheme/spacetheme/internal/install"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

func newDiffCmd(flags *rootFlags) *cobra.Command {
	var maxLines int
	cmd := &cobra.Command{
		Use:       messages.DiffUse,
		Short:     messages.DiffShort,
		Long:      messages.DiffLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"discord", "betterdiscord", "vencord"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxLines <= 0 {
				return fmt.Errorf(messages.DiffLinesInvalid)
			}
			selector := messages.DiffDefaultTarget
			if len(args) == 1 {
				selector = args[0]
			}
			kinds, err := target.ParseSelector(selector)
			if err != nil {
				return err
			}
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			previews, err := a.orch.Preview(cmd.Context(), kinds, maxLines)
			if err != nil {
				return err
			}
			if a.json {
				return a.writeJSON(previews)
			}
			for _, p := range previews {
				a.printPreview(p)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxLines, "lines", install.DefaultDiffMaxLines, messages.DiffLinesFlag)
	return cmd
}

func (a *app) printPreview(p install.DiffPreview) {
	_, _ = fmt.Fprintf(a.out, messages.DiffHeaderFmt, a.paint(color.New(color.Bold), p.Target.String()), p.Path)
	switch {
	case !p.Changed:
		_, _ = fmt.Fprintln(a.out, a.paint(color.New(color.FgGreen), messages.DiffUpToDate))
		return
	case !p.Installed:
		_, _ = fmt.Fprintln(a.out, a.paint(color.New(color.FgYellow), messages.DiffNotInstalled))
	}
	for _, line := range strings.SplitAfter(p.UnifiedDiff, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			_, _ = fmt.Fprint(a.out, line)
		case strings.HasPrefix(line, "+"):
			_, _ = fmt.Fprint(a.out, a.paint(color.New(color.FgGreen), line))
		case strings.HasPrefix(line, "-"):
			_, _ = fmt.Fprint(a.out, a.paint(color.New(color.FgRed), line))
		default:
			_, _ = fmt.Fprint(a.out, line)
		}
	}
}
