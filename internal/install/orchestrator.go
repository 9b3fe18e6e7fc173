// Package install drives the install, uninstall, and reset workflows for each
// target and reports progress as it goes.
package install

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spacetheme/spacetheme/internal/archive"
	"github.com/spacetheme/spacetheme/internal/fsutil"
	"github.com/spacetheme/spacetheme/internal/locate"
	"github.com/spacetheme/spacetheme/internal/lock"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/patcher"
	"github.com/spacetheme/spacetheme/internal/progress"
	"github.com/spacetheme/spacetheme/internal/target"
)

// Fetcher downloads a remote resource into dest.
type Fetcher interface {
	Fetch(ctx context.Context, url string, dest io.Writer) (int64, error)
}

// Extractor unpacks an archive into an existing directory.
type Extractor interface {
	Extract(ctx context.Context, zipPath string, destDir string) (int, error)
}

// Options wires the orchestrator's collaborators. Fetcher and ConfigRoot are
// required; the rest default to the real implementations.
type Options struct {
	System    fsutil.System
	Fetcher   Fetcher
	Extractor Extractor
	Resolver  locate.Resolver
	Patcher   patcher.Runner
	Sink      progress.Sink
	Locker    lock.Locker
	Profiles  target.Profiles

	// ConfigRoot is the per-user configuration directory that holds the chat
	// clients' folders.
	ConfigRoot string
	// StagingDir receives downloaded archives. Default: os.TempDir().
	StagingDir string
}

// Orchestrator runs requests against the configured targets.
type Orchestrator struct {
	sys        fsutil.System
	fetcher    Fetcher
	extractor  Extractor
	resolver   locate.Resolver
	patcher    patcher.Runner
	sink       progress.Sink
	locker     lock.Locker
	profiles   target.Profiles
	configRoot string
	stagingDir string
}

// New validates opts and returns an Orchestrator.
func New(opts Options) (*Orchestrator, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf(messages.InstallFetcherRequired)
	}
	if opts.ConfigRoot == "" {
		return nil, fmt.Errorf(messages.InstallConfigRootRequired)
	}
	o := &Orchestrator{
		sys:        opts.System,
		fetcher:    opts.Fetcher,
		extractor:  opts.Extractor,
		resolver:   opts.Resolver,
		patcher:    opts.Patcher,
		sink:       opts.Sink,
		locker:     opts.Locker,
		profiles:   opts.Profiles,
		configRoot: opts.ConfigRoot,
		stagingDir: opts.StagingDir,
	}
	if o.sys == nil {
		o.sys = fsutil.RealSystem{}
	}
	if o.extractor == nil {
		o.extractor = archive.Extractor{}
	}
	if o.resolver == nil {
		o.resolver = locate.Default("")
	}
	if o.patcher == nil {
		o.patcher = patcher.New("", "")
	}
	if o.sink == nil {
		o.sink = progress.Discard
	}
	if o.locker == nil {
		o.locker = lock.None{}
	}
	if o.profiles == nil {
		o.profiles = target.DefaultProfiles()
	}
	if o.stagingDir == "" {
		o.stagingDir = os.TempDir()
	}
	for _, kind := range target.All {
		if _, ok := o.profiles[kind]; !ok {
			return nil, fmt.Errorf(messages.InstallProfileMissingFmt, kind)
		}
	}
	return o, nil
}

// run holds the state of one Run call.
type run struct {
	o       *Orchestrator
	ctx     context.Context
	req     Request
	sink    progress.Sink
	results []TargetResult
}

// Run executes req and returns its outcome. Every line in the outcome was also
// delivered to the configured sink, in the same order. Run never panics on
// target failures; they are reported in the outcome.
func (o *Orchestrator) Run(ctx context.Context, req Request) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	rec := &progress.Recorder{}
	r := &run{
		o:    o,
		ctx:  ctx,
		req:  req,
		sink: progress.Tee(o.sink, rec),
	}

	if err := req.Validate(); err != nil {
		r.emit(0, progress.StatusError, fmt.Sprintf(messages.InstallInvalidRequestFmt, err))
		return Outcome{Status: Failed, Reason: err.Error(), Lines: rec.Lines()}
	}

	r.emit(0, progress.StatusInfo, messages.InstallPreparing)
	if req.isSteam() {
		r.runSteam()
	} else {
		r.runChat()
	}

	status, reason := summarize(r.results)
	return Outcome{Status: status, Reason: reason, Lines: rec.Lines(), Results: r.results}
}

func (r *run) emit(kind target.Kind, status progress.Status, message string) {
	line := progress.Line{Status: status, Message: message}
	if kind != 0 {
		line.Target = kind.String()
	}
	r.sink.Emit(line)
}

func (r *run) info(kind target.Kind, format string, args ...any) {
	r.emit(kind, progress.StatusInfo, sprintf(format, args...))
}

func (r *run) success(kind target.Kind, format string, args ...any) {
	r.emit(kind, progress.StatusSuccess, sprintf(format, args...))
}

func (r *run) warn(kind target.Kind, format string, args ...any) {
	r.emit(kind, progress.StatusWarning, sprintf(format, args...))
}

func (r *run) fail(kind target.Kind, format string, args ...any) {
	r.emit(kind, progress.StatusError, sprintf(format, args...))
}

func (r *run) record(res TargetResult) {
	r.results = append(r.results, res)
}

func (r *run) profile(kind target.Kind) target.Profile {
	return r.o.profiles[kind]
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
