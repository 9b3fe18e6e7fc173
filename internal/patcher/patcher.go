// Package patcher runs the external companion patcher that prepares Steam for
// custom skins.
package patcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/spacetheme/spacetheme/internal/messages"
)

// ErrNotConfigured reports that no patcher command is available on this platform.
var ErrNotConfigured = errors.New("patcher: no command configured")

// Runner runs the patcher to completion.
type Runner interface {
	Run(ctx context.Context) error
}

// Func adapts a function to Runner.
type Func func(ctx context.Context) error

// Run calls f.
func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}

// CommandRunner runs an executable and waits for it to exit.
type CommandRunner struct {
	Name string
	Args []string
	// Output receives the combined output as it is produced. Optional.
	Output io.Writer
}

// New builds a CommandRunner. command is split on whitespace and script, when
// set, is appended as the final argument. An empty command selects the
// platform default.
func New(command string, script string) CommandRunner {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		name, args := DefaultCommand(script)
		return CommandRunner{Name: name, Args: args}
	}
	args := append([]string{}, fields[1:]...)
	if script != "" {
		args = append(args, script)
	}
	return CommandRunner{Name: fields[0], Args: args}
}

// Run starts the command and waits for it. A non-zero exit is reported with
// the last line the command printed.
func (r CommandRunner) Run(ctx context.Context) error {
	if r.Name == "" {
		return ErrNotConfigured
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Name, r.Args...)
	var out io.Writer = &buf
	if r.Output != nil {
		out = io.MultiWriter(&buf, r.Output)
	}
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		if line := lastLine(buf.String()); line != "" {
			return fmt.Errorf(messages.PatcherFailedOutputFmt, r.Name, err, line)
		}
		return fmt.Errorf(messages.PatcherFailedFmt, r.Name, err)
	}
	return nil
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
