package wizard

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/terminal"
)

// UI is the set of prompts the request form needs.
type UI interface {
	Select(title string, options []string, current *string) error
	Confirm(title string, value *bool) error
	Input(title string, placeholder string, value *string) error
	Note(title string, body string) error
}

// HuhUI renders each prompt as a single-field huh form on stderr.
type HuhUI struct {
	isTerminal func() bool
	// ctrlCAbort is set by the key filter while a form runs.
	ctrlCAbort bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI that checks terminal.IsInteractive before each form.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	interactive := ui.isTerminal
	if interactive == nil {
		interactive = terminal.IsInteractive
	}
	if !interactive() {
		return errors.New(messages.WizardRequiresTerminal)
	}
	return nil
}

var (
	backHint = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	exitHint = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))
)

// wizardKeyMap returns the keymap shared by every form step.
// Esc and Ctrl+C both abort the form; runForm tells them apart afterwards.
// Field-level Prev and Next are never reached because the form handles both
// keys at the Quit level, so they only carry the help hints.
func wizardKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	km.Select.Prev, km.Select.Next = backHint, exitHint
	km.Confirm.Prev, km.Confirm.Next = backHint, exitHint
	km.Input.Prev, km.Input.Next = backHint, exitHint
	km.Note.Prev, km.Note.Next = backHint, exitHint

	// Filter mode would swallow Esc.
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// hintField keeps the back and exit hints visible. huh calls WithPosition on
// every key press and disables Prev on the first field and Next on the last;
// with one field per form both would always be hidden.
type hintField struct {
	huh.Field
	km *huh.KeyMap
}

func newHintField(field huh.Field) huh.Field {
	return &hintField{Field: field, km: wizardKeyMap()}
}

// Update keeps the wrapper in the group's field list.
func (f *hintField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

// WithPosition lets huh update positional state, then restores the hints.
func (f *hintField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.WithKeyMap(f.km)
	return f
}

// formFilter records Ctrl+C key presses in ctrlCAbort and turns InterruptMsg
// into QuitMsg so bubbletea clears the form on the way out.
//
// In raw mode Ctrl+C arrives as a KeyMsg before the InterruptMsg, so the flag
// is set by the time the abort completes. Esc never sets it. An external
// SIGINT produces only InterruptMsg and therefore maps to errWizardBack.
func (ui *HuhUI) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		switch m := msg.(type) {
		case tea.KeyMsg:
			if m.Type == tea.KeyCtrlC {
				ui.ctrlCAbort = true
			}
		case tea.InterruptMsg:
			return tea.QuitMsg{}
		}
		return msg
	}
}

// runForm runs a one-field form. Esc yields errWizardBack and Ctrl+C yields
// errWizardCancelled.
func (ui *HuhUI) runForm(field huh.Field) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	form := huh.NewForm(huh.NewGroup(newHintField(field)))
	form.WithKeyMap(wizardKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithReportFocus(),
		tea.WithFilter(ui.formFilter()),
	)

	ui.ctrlCAbort = false
	err := runFormFunc(form)
	if !errors.Is(err, huh.ErrUserAborted) {
		return err
	}
	if ui.ctrlCAbort {
		return errWizardCancelled
	}
	return errWizardBack
}

// Select renders a single-choice prompt. current holds the preselected option
// and receives the answer.
func (ui *HuhUI) Select(title string, options []string, current *string) error {
	opts := huh.NewOptions(options...)
	return ui.runForm(huh.NewSelect[string]().Title(title).Options(opts...).Value(current))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewConfirm().Title(title).Value(value))
}

// Input renders a text prompt. placeholder is shown while the value is empty.
func (ui *HuhUI) Input(title string, placeholder string, value *string) error {
	return ui.runForm(huh.NewInput().Title(title).Placeholder(placeholder).Value(value))
}

// Note shows body until the user continues.
func (ui *HuhUI) Note(title string, body string) error {
	return ui.runForm(huh.NewNote().Title(title).Description(body))
}
