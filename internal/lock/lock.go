// Package lock serializes mutations of a single target across processes with
// an advisory lock file per target.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spacetheme/spacetheme/internal/messages"
)

var (
	lockWaitTimeout = 30 * time.Second
	lockPollEvery   = 100 * time.Millisecond
	lockSleep       = time.Sleep
)

// Locker runs a function while holding the lock for a named target.
type Locker interface {
	WithLock(name string, fn func() error) error
}

// Dir locks targets with files named <name>.lock inside a directory.
type Dir struct {
	Path string
}

// WithLock acquires the lock for name, runs fn, and releases the lock.
func (d Dir) WithLock(name string, fn func() error) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf(messages.LockCreateDirFmt, d.Path, err)
	}
	lock, err := acquireFileLock(filepath.Join(d.Path, name+".lock"))
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.release()
	}()
	return fn()
}

// None runs functions without locking.
type None struct{}

// WithLock runs fn.
func (None) WithLock(_ string, fn func() error) error {
	return fn()
}

type fileLock struct {
	file *os.File
}

// acquireFileLock opens or creates path and acquires an exclusive lock.
func acquireFileLock(path string) (*fileLock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.LockOpenFmt, path, err)
	}
	if err := lockFileFn(file); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf(messages.LockAcquireFmt, path, err)
	}
	return &fileLock{file: file}, nil
}

// release unlocks and closes the file lock.
func (l *fileLock) release() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := unlockFileFn(l.file); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}

// pollLock retries try until it succeeds, fails for a reason other than
// contention, or the wait timeout elapses.
func pollLock(try func() (busy bool, err error)) error {
	deadline := time.Now().Add(lockWaitTimeout)
	for {
		busy, err := try()
		if err == nil {
			return nil
		}
		if !busy {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.LockTimeoutFmt, lockWaitTimeout)
		}
		lockSleep(lockPollEvery)
	}
}
