package messages

// System messages for internal operations.
const (
	// FSStatFmt formats filesystem stat errors.
	FSStatFmt              = "stat %s: %w"
	FSCreateDirFmt         = "create directory %s: %w"
	FSRemoveFmt            = "remove %s: %w"
	FSCreateTempFmt        = "create temp file in %s: %w"
	FSSyncTempFmt          = "sync temp file: %w"
	FSCloseTempFmt         = "close temp file: %w"
	FSChmodFmt             = "chmod %s: %w"
	FSRenameFmt            = "move %s into place at %s: %w"
	FSDestinationExistsFmt = "destination %s already exists"

	// FetchCreateRequestFmt formats request construction errors.
	FetchCreateRequestFmt    = "download %s: %w"
	FetchRequestFmt          = "download %s: %w"
	FetchTimeoutFmt          = "download %s: request timed out: %w"
	FetchRedirectLocationFmt = "download %s: invalid redirect location: %w"
	FetchTooManyRedirectsFmt = "%w: %s answered with another redirect (HTTP %d)"
	FetchStatusFmt           = "%w: download %s failed with status %d"
	FetchReadFmt             = "read %s: %w"
	FetchTooLargeFmt         = "%w: download %s exceeds %d bytes"

	// ArchiveOpenFmt formats archive open errors.
	ArchiveOpenFmt          = "open archive %s: %w"
	ArchiveResolveDestFmt   = "resolve extraction directory %s: %w"
	ArchiveCreateDirFmt     = "create directory %s: %w"
	ArchiveUnsafeEntryFmt   = "%w: %s"
	ArchiveOpenEntryFmt     = "open archive entry %s: %w"
	ArchiveWriteEntryFmt    = "write %s: %w"
	ArchiveTooLargeFmt      = "%w: stopped at %s"
	ArchiveReadDirFmt       = "read extracted files in %s: %w"
	ArchiveRootMissingFmt   = "%w: expected top-level directory %q, found [%s]"
	ArchiveRootAmbiguousFmt = "%w: expected exactly one top-level directory, found %d"

	// LockCreateDirFmt formats lock directory creation errors.
	LockCreateDirFmt = "create lock directory %s: %w"
	LockOpenFmt      = "open lock file %s: %w"
	LockAcquireFmt   = "acquire lock %s: %w"
	LockTimeoutFmt   = "timed out after %s waiting for another spacetheme process to finish"

	// LocateUnsupportedFmt formats resolver kind errors.
	LocateUnsupportedFmt = "%w: %s"
	LocateHomeFmt        = "resolve home dir: %w"
	LocateRegistryFmt    = "read registry key %s: %w"

	// PatcherFailedFmt formats patcher failures without output.
	PatcherFailedFmt       = "%s failed: %w"
	PatcherFailedOutputFmt = "%s failed: %w: %s"

	// TargetUnknownFmt formats unknown target selector errors.
	TargetUnknownFmt       = "unknown target %q (supported: %s)"
	TargetUnknownActionFmt = "unknown action %q (supported: install, uninstall, reset)"
)
