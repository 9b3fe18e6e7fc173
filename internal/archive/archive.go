// Package archive unpacks zip archives into a destination directory and
// locates the expected top-level directory inside the result.
package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spacetheme/spacetheme/internal/messages"
)

// DefaultMaxBytes caps the total uncompressed size of an archive.
const DefaultMaxBytes = int64(512 * 1024 * 1024)

var (
	// ErrUnsafePath reports an entry that would be written outside the destination.
	ErrUnsafePath = errors.New("archive: entry escapes destination")
	// ErrTooLarge reports an archive whose uncompressed size exceeds the limit.
	ErrTooLarge = errors.New("archive: uncompressed size exceeds limit")
	// ErrLayoutMismatch reports that the expected top-level directory is missing.
	ErrLayoutMismatch = errors.New("archive: unexpected layout")
)

// IsLayoutError reports whether err means the archive itself is unusable, as
// opposed to a local filesystem failure while unpacking it.
func IsLayoutError(err error) bool {
	return errors.Is(err, ErrUnsafePath) ||
		errors.Is(err, ErrTooLarge) ||
		errors.Is(err, ErrLayoutMismatch) ||
		errors.Is(err, zip.ErrFormat)
}

// Extractor unpacks zip archives.
type Extractor struct {
	// MaxBytes caps the total uncompressed size. Default: DefaultMaxBytes.
	MaxBytes int64
}

// Extract unpacks the zip at zipPath into destDir, which must already exist.
// It returns the number of regular files written.
func (e Extractor) Extract(ctx context.Context, zipPath string, destDir string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	limit := e.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return 0, fmt.Errorf(messages.ArchiveOpenFmt, zipPath, err)
	}
	defer func() { _ = r.Close() }()

	root, err := filepath.Abs(destDir)
	if err != nil {
		return 0, fmt.Errorf(messages.ArchiveResolveDestFmt, destDir, err)
	}

	var written int64
	files := 0
	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		target, err := entryPath(root, f.Name)
		if err != nil {
			return files, err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return files, fmt.Errorf(messages.ArchiveCreateDirFmt, target, err)
			}
			continue
		}
		if !f.Mode().IsRegular() {
			// Symlinks and devices are skipped; theme archives only carry files.
			continue
		}
		n, err := writeEntry(f, target, limit-written)
		written += n
		if err != nil {
			return files, err
		}
		files++
	}
	return files, nil
}

func entryPath(root string, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.VolumeName(clean) != "" {
		return "", fmt.Errorf(messages.ArchiveUnsafeEntryFmt, ErrUnsafePath, name)
	}
	target := filepath.Join(root, clean)
	if target != root && !strings.HasPrefix(target, root+string(filepath.Separator)) {
		return "", fmt.Errorf(messages.ArchiveUnsafeEntryFmt, ErrUnsafePath, name)
	}
	return target, nil
}

func writeEntry(f *zip.File, target string, remaining int64) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, fmt.Errorf(messages.ArchiveCreateDirFmt, filepath.Dir(target), err)
	}
	src, err := f.Open()
	if err != nil {
		return 0, fmt.Errorf(messages.ArchiveOpenEntryFmt, f.Name, err)
	}
	defer func() { _ = src.Close() }()

	perm := f.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return 0, fmt.Errorf(messages.ArchiveWriteEntryFmt, target, err)
	}
	n, err := io.Copy(out, io.LimitReader(src, remaining+1))
	closeErr := out.Close()
	if err != nil {
		return n, fmt.Errorf(messages.ArchiveWriteEntryFmt, target, err)
	}
	if n > remaining {
		return n, fmt.Errorf(messages.ArchiveTooLargeFmt, ErrTooLarge, f.Name)
	}
	if closeErr != nil {
		return n, fmt.Errorf(messages.ArchiveWriteEntryFmt, target, closeErr)
	}
	return n, nil
}

// Root returns the path of the top-level directory named name inside dir.
// When name is empty, dir must contain exactly one top-level directory and
// that directory is returned.
func Root(dir string, name string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf(messages.ArchiveReadDirFmt, dir, err)
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	if name != "" {
		for _, d := range dirs {
			if d == name {
				return filepath.Join(dir, d), nil
			}
		}
		return "", fmt.Errorf(messages.ArchiveRootMissingFmt, ErrLayoutMismatch, name, strings.Join(dirs, ", "))
	}
	if len(dirs) != 1 {
		return "", fmt.Errorf(messages.ArchiveRootAmbiguousFmt, ErrLayoutMismatch, len(dirs))
	}
	return filepath.Join(dir, dirs[0]), nil
}
