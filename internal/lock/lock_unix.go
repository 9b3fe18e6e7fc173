//go:build !windows

package lock

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

var lockFileFn = lockFile
var unlockFileFn = unlockFile
var flockFn = unix.Flock

// lockFile acquires an exclusive advisory lock on the file.
func lockFile(file *os.File) error {
	return pollLock(func() (bool, error) {
		err := flockFn(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return false, nil
		}
		return errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN), err
	})
}

// unlockFile releases the advisory lock on the file.
func unlockFile(file *os.File) error {
	return flockFn(int(file.Fd()), unix.LOCK_UN)
}
