package locate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacetheme/spacetheme/internal/fsutil"
	"github.com/spacetheme/spacetheme/internal/target"
)

type stubResolver struct {
	res Result
	err error
}

func (s stubResolver) Resolve(context.Context, target.Kind) (Result, error) {
	return s.res, s.err
}

func TestStatic(t *testing.T) {
	res, err := Static{Path: "/games/Steam/"}.Resolve(context.Background(), target.Steam)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, filepath.Clean("/games/Steam"), res.Path)

	res, err = Static{}.Resolve(context.Background(), target.Steam)
	require.NoError(t, err)
	assert.False(t, res.Found)

	_, err = Static{Path: "/x"}.Resolve(context.Background(), target.Vencord)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestChainFirstFound(t *testing.T) {
	chain := Chain{
		stubResolver{err: errors.New("registry unavailable")},
		stubResolver{},
		stubResolver{res: Result{Found: true, Path: "/steam"}},
	}
	res, err := chain.Resolve(context.Background(), target.Steam)
	require.NoError(t, err)
	assert.Equal(t, "/steam", res.Path)
}

func TestChainReturnsFirstErrorWhenNothingFound(t *testing.T) {
	chain := Chain{nil, stubResolver{err: errors.New("registry unavailable")}, stubResolver{}}
	res, err := chain.Resolve(context.Background(), target.Steam)
	assert.False(t, res.Found)
	assert.EqualError(t, err, "registry unavailable")
}

func TestProbeFindsMarkedCandidate(t *testing.T) {
	home := t.TempDir()
	unmarked := filepath.Join(home, ".steam", "steam")
	require.NoError(t, os.MkdirAll(unmarked, 0o755))
	marked := filepath.Join(home, ".local", "share", "Steam")
	require.NoError(t, os.MkdirAll(filepath.Join(marked, "steamui"), 0o755))

	probe := Probe{
		Home:       func() (string, error) { return home, nil },
		Candidates: []string{".steam/steam", ".local/share/Steam"},
		Markers:    []string{"steam.sh", "steamui"},
	}
	res, err := probe.Resolve(context.Background(), target.Steam)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, marked, res.Path)
}

func TestProbeNotFound(t *testing.T) {
	home := t.TempDir()
	probe := Probe{
		Home:       func() (string, error) { return home, nil },
		Candidates: []string{".steam/steam"},
		Markers:    []string{"steam.sh"},
	}
	res, err := probe.Resolve(context.Background(), target.Steam)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
}

func TestProbeAbsoluteCandidate(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "steam.sh"), nil, 0o755))
	probe := Probe{
		Home:       func() (string, error) { return "/nonexistent-home", nil },
		Candidates: []string{root},
		Markers:    []string{"steam.sh"},
	}
	res, err := probe.Resolve(context.Background(), target.Steam)
	require.NoError(t, err)
	assert.Equal(t, root, res.Path)
}

func TestProbeHomeError(t *testing.T) {
	probe := Probe{Home: func() (string, error) { return "", errors.New("no home") }}
	_, err := probe.Resolve(context.Background(), target.Steam)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no home")
}

type statErrSystem struct {
	fsutil.RealSystem
}

func (statErrSystem) Stat(string) (os.FileInfo, error) {
	return nil, os.ErrPermission
}

func TestProbeStatError(t *testing.T) {
	probe := Probe{
		Sys:        statErrSystem{},
		Home:       func() (string, error) { return t.TempDir(), nil },
		Candidates: []string{"Steam"},
		Markers:    []string{"steam.sh"},
	}
	_, err := probe.Resolve(context.Background(), target.Steam)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestProbeRejectsChatClient(t *testing.T) {
	_, err := Probe{}.Resolve(context.Background(), target.BetterDiscord)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestDefault(t *testing.T) {
	_, ok := Default("").(Chain)
	assert.False(t, ok)

	chain, ok := Default("/opt/steam").(Chain)
	require.True(t, ok)
	require.Len(t, chain, 2)
	assert.Equal(t, Static{Path: "/opt/steam"}, chain[0])
}
