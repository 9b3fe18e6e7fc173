// Package locate finds the installation root of a host application.
package locate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/spacetheme/spacetheme/internal/fsutil"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

// ErrUnsupported reports a kind the resolver does not know how to locate.
var ErrUnsupported = errors.New("locate: unsupported target")

// Result is the outcome of a lookup. Path is set only when Found is true.
type Result struct {
	Found bool
	Path  string
}

// Resolver locates the installation root for a kind.
type Resolver interface {
	Resolve(ctx context.Context, kind target.Kind) (Result, error)
}

// Static resolves the game client to a caller-supplied root.
type Static struct {
	Path string
}

// Resolve returns the configured path for Steam.
func (s Static) Resolve(_ context.Context, kind target.Kind) (Result, error) {
	if kind != target.Steam {
		return Result{}, fmt.Errorf(messages.LocateUnsupportedFmt, ErrUnsupported, kind)
	}
	if s.Path == "" {
		return Result{}, nil
	}
	return Result{Found: true, Path: filepath.Clean(s.Path)}, nil
}

// Chain tries each resolver in order and returns the first root found.
// Errors from earlier resolvers are returned only when nothing is found.
type Chain []Resolver

// Resolve implements Resolver.
func (c Chain) Resolve(ctx context.Context, kind target.Kind) (Result, error) {
	var firstErr error
	for _, r := range c {
		if r == nil {
			continue
		}
		res, err := r.Resolve(ctx, kind)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if res.Found {
			return res, nil
		}
	}
	return Result{}, firstErr
}

// Probe checks a list of candidate Steam roots relative to the home directory.
// A candidate is confirmed when it contains one of Markers.
type Probe struct {
	Sys        fsutil.System
	Home       func() (string, error)
	Candidates []string
	Markers    []string
}

// Resolve implements Resolver.
func (p Probe) Resolve(ctx context.Context, kind target.Kind) (Result, error) {
	if kind != target.Steam {
		return Result{}, fmt.Errorf(messages.LocateUnsupportedFmt, ErrUnsupported, kind)
	}
	sys := p.Sys
	if sys == nil {
		sys = fsutil.RealSystem{}
	}
	home := p.Home
	if home == nil {
		home = homedir.Dir
	}
	dir, err := home()
	if err != nil {
		return Result{}, fmt.Errorf(messages.LocateHomeFmt, err)
	}
	for _, candidate := range p.Candidates {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		root := candidate
		if !filepath.IsAbs(root) {
			root = filepath.Join(dir, candidate)
		}
		ok, err := confirmed(sys, root, p.Markers)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return Result{Found: true, Path: root}, nil
		}
	}
	return Result{}, nil
}

func confirmed(sys fsutil.System, root string, markers []string) (bool, error) {
	for _, marker := range markers {
		ok, err := fsutil.Exists(sys, filepath.Join(root, marker))
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Default returns the resolver for the current platform, preceded by a
// static root when one is configured.
func Default(configured string) Resolver {
	if configured == "" {
		return platformResolver()
	}
	return Chain{Static{Path: configured}, platformResolver()}
}
