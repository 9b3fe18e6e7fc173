//go:build windows

package lock

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

var lockFileFn = lockFile
var unlockFileFn = unlockFile

// lockFile acquires an exclusive lock on the first byte of the file.
func lockFile(file *os.File) error {
	handle := windows.Handle(file.Fd())
	return pollLock(func() (bool, error) {
		ol := new(windows.Overlapped)
		err := windows.LockFileEx(handle, windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY, 0, 1, 0, ol)
		if err == nil {
			return false, nil
		}
		return errors.Is(err, windows.ERROR_LOCK_VIOLATION), err
	})
}

// unlockFile releases the lock on the file.
func unlockFile(file *os.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(file.Fd()), 0, 1, 0, ol)
}
