//go:build windows

package locate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows/registry"

	"github.com/spacetheme/spacetheme/internal/fsutil"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

const (
	steamRegistryKey   = `SOFTWARE\WOW6432Node\Valve\Steam`
	steamRegistryValue = "InstallPath"
	steamExecutable    = "steam.exe"
)

// Registry reads the Steam installation root from the machine registry.
type Registry struct {
	Sys fsutil.System
}

// Resolve implements Resolver. A registered path without steam.exe is not found.
func (r Registry) Resolve(_ context.Context, kind target.Kind) (Result, error) {
	if kind != target.Steam {
		return Result{}, fmt.Errorf(messages.LocateUnsupportedFmt, ErrUnsupported, kind)
	}
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, steamRegistryKey, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf(messages.LocateRegistryFmt, steamRegistryKey, err)
	}
	defer func() { _ = key.Close() }()

	root, _, err := key.GetStringValue(steamRegistryValue)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf(messages.LocateRegistryFmt, steamRegistryKey, err)
	}
	sys := r.Sys
	if sys == nil {
		sys = fsutil.RealSystem{}
	}
	ok, err := fsutil.Exists(sys, filepath.Join(root, steamExecutable))
	if err != nil || !ok {
		return Result{}, err
	}
	return Result{Found: true, Path: root}, nil
}

func platformResolver() Resolver {
	return Registry{}
}
