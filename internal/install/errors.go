package install

import (
	"errors"

	"github.com/spacetheme/spacetheme/internal/target"
)

// ErrorKind classifies why a target failed.
type ErrorKind int

const (
	// InvalidRequest means the request was rejected before any side effect.
	InvalidRequest ErrorKind = iota + 1
	// PrerequisiteMissing means the host application or its skins folder is absent.
	PrerequisiteMissing
	// NetworkFailure means the remote resource could not be fetched.
	NetworkFailure
	// ArchiveLayoutMismatch means the archive did not contain the expected directory.
	ArchiveLayoutMismatch
	// FilesystemFailure means a local create, remove, or rename failed.
	FilesystemFailure
	// ExternalProcessFailure means the companion patcher failed.
	ExternalProcessFailure
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrInvalidRequest         = errors.New("invalid request")
	ErrPrerequisiteMissing    = errors.New("prerequisite missing")
	ErrNetworkFailure         = errors.New("network failure")
	ErrArchiveLayoutMismatch  = errors.New("archive layout mismatch")
	ErrFilesystemFailure      = errors.New("filesystem failure")
	ErrExternalProcessFailure = errors.New("external process failure")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidRequest:
		return ErrInvalidRequest
	case PrerequisiteMissing:
		return ErrPrerequisiteMissing
	case NetworkFailure:
		return ErrNetworkFailure
	case ArchiveLayoutMismatch:
		return ErrArchiveLayoutMismatch
	case FilesystemFailure:
		return ErrFilesystemFailure
	case ExternalProcessFailure:
		return ErrExternalProcessFailure
	default:
		return nil
	}
}

// String returns the kind's short description.
func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown"
}

// Error is a classified per-target failure. Its message is the underlying
// error's message so log lines read naturally.
type Error struct {
	Kind   ErrorKind
	Target target.Kind
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind ErrorKind, t target.Kind, err error) *Error {
	return &Error{Kind: kind, Target: t, Err: err}
}

// classify wraps err as kind unless it already carries a classification.
func classify(kind ErrorKind, t target.Kind, err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}
	return newError(kind, t, err)
}

// KindOf returns the classification of err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind, true
	}
	return 0, false
}
