package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spacetheme/spacetheme/internal/archive"
	"github.com/spacetheme/spacetheme/internal/config"
	"github.com/spacetheme/spacetheme/internal/fetch"
	"github.com/spacetheme/spacetheme/internal/install"
	"github.com/spacetheme/spacetheme/internal/locate"
	"github.com/spacetheme/spacetheme/internal/lock"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/patcher"
	"github.com/spacetheme/spacetheme/internal/progress"
)

var (
	lookupEnv  = os.LookupEnv
	newFetcher = func(opts fetch.Options) install.Fetcher { return fetch.New(opts) }
	newPatcher = func(cfg *config.Config) patcher.Runner {
		return patcher.New(cfg.Patcher.Command, cfg.Patcher.Script)
	}
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	configPath string
	json       bool
	noColor    bool
}

func (f *rootFlags) colorize() bool {
	return !f.noColor && !color.NoColor
}

// app bundles the loaded config and the orchestrator for one command.
type app struct {
	cfg   *config.Config
	orch  *install.Orchestrator
	out   io.Writer
	json  bool
	color bool
}

func newApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	path, explicit := config.ResolvePath(flags.configPath, lookupEnv)
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	var sink progress.Sink
	if flags.json {
		sink = progress.NewJSONSink(out)
	} else {
		sink = progress.NewWriterSink(out, flags.colorize())
	}

	orch, err := install.New(install.Options{
		Fetcher:    newFetcher(cfg.FetchOptions(fmt.Sprintf(messages.UserAgentFmt, Version))),
		Extractor:  archive.Extractor{},
		Resolver:   locate.Default(cfg.Steam.InstallPath),
		Patcher:    newPatcher(cfg),
		Sink:       sink,
		Locker:     lock.Dir{Path: cfg.Paths.LockDir},
		Profiles:   cfg.Profiles(),
		ConfigRoot: cfg.Paths.ConfigRoot,
		StagingDir: cfg.Paths.StagingDir,
	})
	if err != nil {
		return nil, fmt.Errorf(messages.CLISetupFailedFmt, err)
	}
	return &app{cfg: cfg, orch: orch, out: out, json: flags.json, color: flags.colorize()}, nil
}

// writeJSON encodes v as a single JSON line.
func (a *app) writeJSON(v any) error {
	return json.NewEncoder(a.out).Encode(v)
}

// paint applies c when color output is enabled.
func (a *app) paint(c *color.Color, s string) string {
	if !a.color {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}
