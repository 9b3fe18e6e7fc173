package install

import (
	"fmt"
	"os"

	"github.com/spacetheme/spacetheme/internal/fsutil"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

const themeFilePerm = 0o644

func (r *run) runChat() {
	switch r.req.Action {
	case target.Uninstall:
		r.uninstallChat()
	case target.Reset:
		r.info(0, messages.ResetStarting)
		failed := r.resetChat()
		r.installChat(failed)
	case target.Install:
		r.installChat(nil)
	}
}

func (r *run) uninstallChat() {
	removedAny := false
	failedAny := false
	for _, kind := range r.req.Targets {
		p := r.profile(kind)
		var removed bool
		err := r.o.locker.WithLock(kind.String(), func() error {
			var err error
			removed, err = fsutil.RemoveIfExists(r.o.sys, p.ThemePath(r.o.configRoot))
			return err
		})
		if err != nil {
			failedAny = true
			r.fail(kind, messages.UninstallChatErrorFmt, p.DisplayName, err)
			r.record(TargetResult{Target: kind, Err: classify(FilesystemFailure, kind, err)})
			continue
		}
		if removed {
			removedAny = true
			r.success(kind, messages.UninstallChatSucceededFmt, p.DisplayName)
		}
		r.record(TargetResult{Target: kind, Changed: removed})
	}
	if !removedAny && !failedAny {
		r.warn(0, messages.UninstallChatNotFound)
	}
}

// resetChat removes every existing copy and returns the targets whose removal
// failed; those are not reinstalled.
func (r *run) resetChat() map[target.Kind]error {
	failed := map[target.Kind]error{}
	for _, kind := range r.req.Targets {
		p := r.profile(kind)
		var removed bool
		err := r.o.locker.WithLock(kind.String(), func() error {
			var err error
			removed, err = fsutil.RemoveIfExists(r.o.sys, p.ThemePath(r.o.configRoot))
			return err
		})
		if err != nil {
			r.fail(kind, messages.ResetRemoveErrorFmt, p.DisplayName, err)
			failed[kind] = classify(FilesystemFailure, kind, err)
			continue
		}
		if removed {
			r.info(kind, messages.ResetRemovedFmt, p.DisplayName)
		}
	}
	return failed
}

func (r *run) installChat(failed map[target.Kind]error) {
	var eligible []target.Kind
	var missing []target.Kind
	for _, kind := range r.req.Targets {
		if err, ok := failed[kind]; ok {
			r.record(TargetResult{Target: kind, Err: err})
			continue
		}
		ok, err := fsutil.IsDir(r.o.sys, r.profile(kind).ClientRoot(r.o.configRoot))
		if err != nil {
			r.fail(kind, messages.InstallChatErrorFmt, r.profile(kind).DisplayName, err)
			r.record(TargetResult{Target: kind, Err: classify(FilesystemFailure, kind, err)})
			continue
		}
		if ok {
			eligible = append(eligible, kind)
		} else {
			missing = append(missing, kind)
		}
	}

	if len(missing) == len(r.req.Targets) {
		msg := r.noEligibleMessage(missing)
		r.fail(0, "%s", msg)
		for _, kind := range missing {
			r.record(TargetResult{Target: kind, Err: newError(PrerequisiteMissing, kind, fmt.Errorf("%s", msg))})
		}
		return
	}
	for _, kind := range missing {
		r.warn(kind, messages.InstallChatSkippedFmt, r.profile(kind).DisplayName)
		r.record(TargetResult{Target: kind, Skipped: true})
	}

	for _, kind := range eligible {
		p := r.profile(kind)
		err := r.o.locker.WithLock(kind.String(), func() error {
			return r.installChatClient(p)
		})
		if err != nil {
			r.fail(kind, messages.InstallChatErrorFmt, p.DisplayName, err)
			r.record(TargetResult{Target: kind, Err: classify(FilesystemFailure, kind, err)})
			continue
		}
		r.success(kind, messages.InstallSucceededFmt, p.DisplayName)
		r.record(TargetResult{Target: kind, Changed: true})
	}
}

func (r *run) noEligibleMessage(missing []target.Kind) string {
	if len(missing) == 1 {
		return fmt.Sprintf(messages.InstallChatClientMissingFmt, r.profile(missing[0]).DisplayName)
	}
	return messages.InstallChatNoneEligible
}

// installChatClient writes the stylesheet through a temp file beside the
// destination; an existing copy is replaced by the final rename.
func (r *run) installChatClient(p target.Profile) error {
	themesDir := p.ThemesDir(r.o.configRoot)
	created, err := fsutil.EnsureDir(r.o.sys, themesDir)
	if err != nil {
		return err
	}
	if created {
		r.info(p.Kind, messages.InstallCreatedDirFmt, p.DisplayName)
	}

	r.info(p.Kind, messages.InstallDownloadingFmt, p.DisplayName)
	err = fsutil.ReplaceFile(r.o.sys, p.ThemePath(r.o.configRoot), themeFilePerm, func(f *os.File) error {
		if _, err := r.o.fetcher.Fetch(r.ctx, p.SourceURL, f); err != nil {
			return newError(NetworkFailure, p.Kind, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.info(p.Kind, messages.InstallDownloadedFmt, p.ThemeFile, themesDir)
	return nil
}
