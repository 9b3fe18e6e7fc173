package install

import (
	"errors"
	"fmt"

	"github.com/spacetheme/spacetheme/internal/archive"
	"github.com/spacetheme/spacetheme/internal/fsutil"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

const (
	stagingArchivePattern = "SpaceTheme_for_Steam-*.zip"
	extractDirPattern     = ".spacetheme-extract-*"
)

func (r *run) runSteam() {
	kind := target.Steam
	root, err := r.steamRoot()
	if err != nil {
		r.fail(kind, "%s", err.Error())
		r.record(TargetResult{Target: kind, Err: err})
		return
	}

	if r.req.Action == target.Uninstall {
		r.uninstallSteam(root)
		return
	}

	p := r.profile(kind)
	if r.req.MillenniumRequested && p.PatcherAllowed {
		r.info(kind, messages.MillenniumStarting)
		if err := r.o.patcher.Run(r.ctx); err != nil {
			r.fail(kind, messages.MillenniumErrorFmt, err)
			r.record(TargetResult{Target: kind, Err: newError(ExternalProcessFailure, kind, err)})
			return
		}
		r.success(kind, messages.MillenniumSucceeded)
	}

	skins := target.SkinsDir(root)
	ok, err := fsutil.IsDir(r.o.sys, skins)
	if err != nil {
		r.fail(kind, messages.SteamErrorFmt, err)
		r.record(TargetResult{Target: kind, Err: newError(FilesystemFailure, kind, err)})
		return
	}
	if !ok {
		r.fail(kind, messages.SteamSkinsMissing)
		r.record(TargetResult{Target: kind, Err: newError(PrerequisiteMissing, kind, errors.New(messages.SteamSkinsMissing))})
		return
	}

	changed := false
	err = r.o.locker.WithLock(kind.String(), func() error {
		if r.req.Action == target.Reset {
			removed, err := r.resetSteam(p, root)
			if err != nil {
				return err
			}
			changed = removed
		}
		if err := r.installSteam(p, root); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		r.fail(kind, messages.SteamErrorFmt, err)
		r.record(TargetResult{Target: kind, Changed: changed, Err: classify(FilesystemFailure, kind, err)})
		return
	}
	r.success(kind, messages.SteamSucceeded)
	r.record(TargetResult{Target: kind, Changed: changed})
}

// steamRoot returns the caller-supplied root or asks the resolver once.
func (r *run) steamRoot() (string, error) {
	if r.req.ResolvedRoot != "" {
		return r.req.ResolvedRoot, nil
	}
	res, err := r.o.resolver.Resolve(r.ctx, target.Steam)
	if err != nil {
		return "", newError(PrerequisiteMissing, target.Steam, fmt.Errorf(messages.SteamResolveErrorFmt, err))
	}
	if !res.Found {
		return "", newError(PrerequisiteMissing, target.Steam, errors.New(messages.SteamRootNotFound))
	}
	return res.Path, nil
}

func (r *run) uninstallSteam(root string) {
	kind := target.Steam
	p := r.profile(kind)
	r.info(kind, messages.SteamUninstallStarting)
	r.info(kind, messages.SteamUninstallChecking)

	var removed bool
	err := r.o.locker.WithLock(kind.String(), func() error {
		var err error
		removed, err = fsutil.RemoveIfExists(r.o.sys, p.DestinationPath(root))
		return err
	})
	if err != nil {
		r.fail(kind, messages.SteamErrorFmt, err)
		r.record(TargetResult{Target: kind, Err: classify(FilesystemFailure, kind, err)})
		return
	}
	if !removed {
		r.warn(kind, messages.SteamThemeNotFound)
		r.record(TargetResult{Target: kind})
		return
	}
	r.info(kind, messages.SteamUninstallDeleted)
	r.success(kind, messages.SteamUninstallSucceeded)
	r.record(TargetResult{Target: kind, Changed: true})
}

func (r *run) resetSteam(p target.Profile, root string) (bool, error) {
	r.info(p.Kind, messages.SteamResetStarting)
	removed, err := fsutil.RemoveIfExists(r.o.sys, p.DestinationPath(root))
	if err != nil {
		return false, err
	}
	if removed {
		r.info(p.Kind, messages.SteamResetRemoved)
		r.info(p.Kind, messages.SteamResetProceeding)
	} else {
		r.info(p.Kind, messages.SteamResetNothing)
	}
	return removed, nil
}

// installSteam downloads the archive to the staging directory, extracts it
// into a scratch directory inside the skins folder, and renames the archive
// root into place. Staging artifacts are removed on every path.
func (r *run) installSteam(p target.Profile, root string) error {
	skins := target.SkinsDir(root)
	dest := p.DestinationPath(root)

	tmp, err := r.o.sys.CreateTemp(r.o.stagingDir, stagingArchivePattern)
	if err != nil {
		return fmt.Errorf(messages.FSCreateTempFmt, r.o.stagingDir, err)
	}
	zipPath := tmp.Name()
	defer func() {
		if _, cleanupErr := fsutil.RemoveIfExists(r.o.sys, zipPath); cleanupErr != nil {
			r.warn(p.Kind, messages.SteamCleanupErrorFmt, cleanupErr)
		}
	}()

	r.info(p.Kind, messages.SteamDownloading)
	_, fetchErr := r.o.fetcher.Fetch(r.ctx, p.SourceURL, tmp)
	closeErr := tmp.Close()
	if fetchErr != nil {
		return newError(NetworkFailure, p.Kind, fetchErr)
	}
	if closeErr != nil {
		return fmt.Errorf(messages.FSCloseTempFmt, closeErr)
	}
	r.info(p.Kind, messages.SteamDownloadedFmt, zipPath)

	r.info(p.Kind, messages.SteamExtracting)
	extractDir, err := r.o.sys.MkdirTemp(skins, extractDirPattern)
	if err != nil {
		return fmt.Errorf(messages.FSCreateDirFmt, skins, err)
	}
	defer func() {
		if _, cleanupErr := fsutil.RemoveIfExists(r.o.sys, extractDir); cleanupErr != nil {
			r.warn(p.Kind, messages.SteamCleanupErrorFmt, cleanupErr)
		}
	}()

	if _, err := r.o.extractor.Extract(r.ctx, zipPath, extractDir); err != nil {
		if archive.IsLayoutError(err) {
			return newError(ArchiveLayoutMismatch, p.Kind, fmt.Errorf(messages.SteamExtractFailedFmt, err))
		}
		return newError(FilesystemFailure, p.Kind, fmt.Errorf(messages.SteamExtractFailedFmt, err))
	}
	r.info(p.Kind, messages.SteamExtractedFmt, skins)

	src, err := archive.Root(extractDir, p.ArchiveRoot)
	if err != nil {
		if archive.IsLayoutError(err) {
			return newError(ArchiveLayoutMismatch, p.Kind, fmt.Errorf(messages.SteamExtractFailedFmt, err))
		}
		return err
	}

	removed, err := fsutil.RemoveIfExists(r.o.sys, dest)
	if err != nil {
		return err
	}
	if removed {
		r.info(p.Kind, messages.SteamReplacedExisting)
	}
	return fsutil.MoveDir(r.o.sys, src, dest)
}
