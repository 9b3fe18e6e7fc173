// Package wizard implements the interactive request form shown when the CLI
// runs without a subcommand.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

var (
	errWizardBack      = errors.New("wizard back requested")
	errWizardCancelled = errors.New("wizard cancelled")
)

// Defaults seeds the form.
type Defaults struct {
	// SteamPath is the configured or detected Steam root. Empty means unknown.
	SteamPath  string
	Millennium bool
}

// Choice is the request assembled by the form.
type Choice struct {
	Selector   string
	Targets    []target.Kind
	Action     target.Action
	Millennium bool
	SteamPath  string
}

type step int

const (
	stepTheme step = iota
	stepAction
	stepMillennium
	stepSteamPath
	stepSummary
	stepDone
)

type form struct {
	ui         UI
	out        io.Writer
	themeLabel string
	actionLbl  string
	choice     Choice
}

// Run walks the user through the form and returns the assembled choice.
// ok is false when the user left the form; a short notice is written to out
// in that case.
func Run(ui UI, defaults Defaults, out io.Writer) (Choice, bool, error) {
	f := &form{
		ui:         ui,
		out:        out,
		themeLabel: messages.WizardThemeDiscordOption,
		actionLbl:  messages.WizardActionInstallOption,
		choice: Choice{
			Millennium: defaults.Millennium,
			SteamPath:  defaults.SteamPath,
		},
	}
	confirmed, err := f.run()
	if err != nil {
		if errors.Is(err, errWizardBack) || errors.Is(err, errWizardCancelled) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return Choice{}, false, nil
		}
		return Choice{}, false, err
	}
	if !confirmed {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return Choice{}, false, nil
	}
	if !f.applies(stepMillennium) {
		f.choice.Millennium = false
	}
	if !f.applies(stepSteamPath) {
		f.choice.SteamPath = ""
	}
	return f.choice, true, nil
}

func (f *form) run() (bool, error) {
	current := stepTheme
	confirmed := false
	for current != stepDone {
		var err error
		switch current {
		case stepTheme:
			err = f.promptTheme()
		case stepAction:
			err = f.promptAction()
		case stepMillennium:
			err = f.ui.Confirm(messages.WizardMillenniumTitle, &f.choice.Millennium)
		case stepSteamPath:
			err = f.ui.Input(messages.WizardSteamPathTitle, messages.WizardSteamPathEmptyHint, &f.choice.SteamPath)
			f.choice.SteamPath = strings.TrimSpace(f.choice.SteamPath)
		case stepSummary:
			confirmed, err = f.promptSummary()
		}

		if err == nil {
			current = f.next(current)
			continue
		}
		if !errors.Is(err, errWizardBack) {
			return false, err
		}
		if current == stepTheme {
			exit, confirmErr := confirmExitOnFirstStepEscape(f.ui)
			if confirmErr != nil {
				return false, confirmErr
			}
			if exit {
				return false, errWizardCancelled
			}
			continue
		}
		current = f.prev(current)
	}
	return confirmed, nil
}

// applies reports whether s is shown for the choices made so far.
func (f *form) applies(s step) bool {
	steam := f.choice.Selector == "steam"
	switch s {
	case stepMillennium:
		return steam && f.choice.Action != target.Uninstall
	case stepSteamPath:
		return steam
	default:
		return true
	}
}

func (f *form) next(s step) step {
	for s++; s < stepDone && !f.applies(s); s++ {
	}
	return s
}

func (f *form) prev(s step) step {
	for s--; s > stepTheme && !f.applies(s); s-- {
	}
	return s
}

func (f *form) promptTheme() error {
	options := []string{messages.WizardThemeDiscordOption, messages.WizardThemeSteamOption}
	if err := f.ui.Select(messages.WizardThemeTitle, options, &f.themeLabel); err != nil {
		return err
	}
	var selector string
	switch f.themeLabel {
	case messages.WizardThemeDiscordOption:
		selector = "discord"
	case messages.WizardThemeSteamOption:
		selector = "steam"
	default:
		return fmt.Errorf(messages.WizardUnknownThemeSelectionFmt, f.themeLabel)
	}
	kinds, err := target.ParseSelector(selector)
	if err != nil {
		return err
	}
	f.choice.Selector = selector
	f.choice.Targets = kinds
	return nil
}

func (f *form) promptAction() error {
	options := []string{
		messages.WizardActionInstallOption,
		messages.WizardActionUninstallOption,
		messages.WizardActionResetOption,
	}
	if err := f.ui.Select(messages.WizardActionTitle, options, &f.actionLbl); err != nil {
		return err
	}
	switch f.actionLbl {
	case messages.WizardActionInstallOption:
		f.choice.Action = target.Install
	case messages.WizardActionUninstallOption:
		f.choice.Action = target.Uninstall
	case messages.WizardActionResetOption:
		f.choice.Action = target.Reset
	default:
		return fmt.Errorf(messages.WizardUnknownActionSelectionFmt, f.actionLbl)
	}
	return nil
}

func (f *form) promptSummary() (bool, error) {
	if err := f.ui.Note(messages.WizardSummaryTitle, f.summary()); err != nil {
		return false, err
	}
	apply := true
	if err := f.ui.Confirm(messages.WizardSummaryTitle, &apply); err != nil {
		return false, err
	}
	return apply, nil
}

func (f *form) summary() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, messages.WizardSummaryThemeFmt, f.themeLabel)
	_, _ = fmt.Fprintf(&b, messages.WizardSummaryActionFmt, f.actionLbl)
	if f.applies(stepMillennium) {
		_, _ = fmt.Fprintf(&b, messages.WizardSummaryMillenniumFmt, yesNo(f.choice.Millennium))
	}
	if f.applies(stepSteamPath) {
		path := f.choice.SteamPath
		if path == "" {
			path = messages.WizardSummaryAutoDetect
		}
		_, _ = fmt.Fprintf(&b, messages.WizardSummarySteamPathFmt, path)
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return messages.WizardSummaryYes
	}
	return messages.WizardSummaryNo
}

func confirmExitOnFirstStepEscape(ui UI) (bool, error) {
	exit := true
	if err := ui.Confirm(messages.WizardFirstStepEscapeExitPrompt, &exit); err != nil {
		if errors.Is(err, errWizardBack) {
			return false, nil
		}
		return false, err
	}
	return exit, nil
}
