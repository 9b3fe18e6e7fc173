// Package fsutil holds the idempotent filesystem mutations used to place themes.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spacetheme/spacetheme/internal/messages"
)

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(sys System, path string) (bool, error) {
	if _, err := sys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.FSStatFmt, path, err)
	}
	return true, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(sys System, path string) (bool, error) {
	info, err := sys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.FSStatFmt, path, err)
	}
	return info.IsDir(), nil
}

// EnsureDir creates path if it is missing and reports whether it did.
func EnsureDir(sys System, path string) (bool, error) {
	exists, err := IsDir(sys, path)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := sys.MkdirAll(path, 0o755); err != nil {
		return false, fmt.Errorf(messages.FSCreateDirFmt, path, err)
	}
	return true, nil
}

// RemoveIfExists deletes path (recursively for directories) and reports
// whether anything was there to delete.
func RemoveIfExists(sys System, path string) (bool, error) {
	exists, err := Exists(sys, path)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := sys.RemoveAll(path); err != nil {
		return false, fmt.Errorf(messages.FSRemoveFmt, path, err)
	}
	return true, nil
}

// ReplaceFile writes dest through a temp file in the same directory and
// renames it into place, so dest is never observed partially written.
// fill receives the open temp file; on any error the temp file is removed.
func ReplaceFile(sys System, dest string, perm os.FileMode, fill func(f *os.File) error) error {
	dir := filepath.Dir(dest)
	tmp, err := sys.CreateTemp(dir, "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FSCreateTempFmt, dir, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = sys.Remove(tmpName)
		}
	}()

	if err := fill(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FSSyncTempFmt, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FSCloseTempFmt, err)
	}
	if err := sys.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf(messages.FSChmodFmt, tmpName, err)
	}
	if err := sys.Rename(tmpName, dest); err != nil {
		return fmt.Errorf(messages.FSRenameFmt, tmpName, dest, err)
	}
	committed = true
	return nil
}

// MoveDir renames src to dest. dest must not exist.
func MoveDir(sys System, src string, dest string) error {
	exists, err := Exists(sys, dest)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf(messages.FSDestinationExistsFmt, dest)
	}
	if err := sys.Rename(src, dest); err != nil {
		return fmt.Errorf(messages.FSRenameFmt, src, dest, err)
	}
	return nil
}
