package install

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacetheme/spacetheme/internal/locate"
	"github.com/spacetheme/spacetheme/internal/target"
)

func steamRequest(action target.Action) Request {
	return Request{Targets: []target.Kind{target.Steam}, Action: action}
}

func TestSteamInstall(t *testing.T) {
	env := newTestEnv(t)
	mustMkdir(t, env.skinsDir())
	env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-main")

	out := env.orchestrator(t).Run(context.Background(), steamRequest(target.Install))

	require.Equal(t, Completed, out.Status, out.Reason)
	assert.Equal(t, `{"name":"SpaceTheme For Steam"}`, readString(t, filepath.Join(env.steamDest(), "skin.json")))
	assert.Equal(t, []string{"SpaceTheme For Steam"}, dirNames(t, env.skinsDir()), "extraction scratch leaked")
	assert.Empty(t, dirNames(t, env.stagingDir), "staging archive leaked")

	msgs := messagesOf(out)
	assert.Equal(t, "Preparing installation...", msgs[0])
	assert.Contains(t, msgs, "Downloading SpaceTheme for Steam...")
	assert.Contains(t, msgs, "Extracting files...")
	assert.Contains(t, msgs, "SpaceTheme for Steam was successfully extracted to "+env.skinsDir())
	assert.Equal(t, "SpaceTheme installed successfully for Steam.", msgs[len(msgs)-1])
	assert.Zero(t, env.patcherRan)
}

func TestSteamInstallReplacesExistingInstallation(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, filepath.Join(env.steamDest(), "old.css"), "old")
	env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-main")

	out := env.orchestrator(t).Run(context.Background(), steamRequest(target.Install))

	require.Equal(t, Completed, out.Status, out.Reason)
	assert.False(t, exists(filepath.Join(env.steamDest(), "old.css")))
	assert.True(t, exists(filepath.Join(env.steamDest(), "skin.json")))
	assert.Contains(t, messagesOf(out), "Replacing existing Steam theme installation")
}

func TestSteamInstallSingleTopLevelWhenRootUnset(t *testing.T) {
	env := newTestEnv(t)
	mustMkdir(t, env.skinsDir())
	env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-3f2a9c1")
	opts := env.options()
	profiles := target.DefaultProfiles()
	steam := profiles[target.Steam]
	steam.ArchiveRoot = ""
	profiles[target.Steam] = steam
	opts.Profiles = profiles
	o, err := New(opts)
	require.NoError(t, err)

	out := o.Run(context.Background(), steamRequest(target.Install))

	require.Equal(t, Completed, out.Status, out.Reason)
	assert.True(t, exists(filepath.Join(env.steamDest(), "skin.json")))
}

func TestSteamInstallLayoutMismatchLeavesExistingInstallation(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, filepath.Join(env.steamDest(), "skin.json"), "installed")
	env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-develop")

	out := env.orchestrator(t).Run(context.Background(), steamRequest(target.Install))

	require.Equal(t, Failed, out.Status)
	assert.True(t, errors.Is(out.Err(), ErrArchiveLayoutMismatch))
	assert.Equal(t, "installed", readString(t, filepath.Join(env.steamDest(), "skin.json")))
	assert.Equal(t, []string{"SpaceTheme For Steam"}, dirNames(t, env.skinsDir()))
	assert.Empty(t, dirNames(t, env.stagingDir))
	assert.Contains(t, strings.Join(messagesOf(out), "\n"), "Error during Steam theme operation: Failed to extract theme files")
}

func TestSteamInstallCorruptArchive(t *testing.T) {
	env := newTestEnv(t)
	mustMkdir(t, env.skinsDir())
	env.fetcher.bodies[target.SteamArchiveURL] = []byte("<html>rate limited</html>")

	out := env.orchestrator(t).Run(context.Background(), steamRequest(target.Install))

	require.Equal(t, Failed, out.Status)
	assert.True(t, errors.Is(out.Err(), ErrArchiveLayoutMismatch))
	assert.Empty(t, dirNames(t, env.skinsDir()))
	assert.Empty(t, dirNames(t, env.stagingDir))
}

func TestSteamInstallNetworkFailure(t *testing.T) {
	env := newTestEnv(t)
	mustMkdir(t, env.skinsDir())
	env.fetcher.errs[target.SteamArchiveURL] = errors.New("no such host")

	out := env.orchestrator(t).Run(context.Background(), steamRequest(target.Install))

	require.Equal(t, Failed, out.Status)
	assert.True(t, errors.Is(out.Err(), ErrNetworkFailure))
	assert.Empty(t, dirNames(t, env.skinsDir()))
	assert.Empty(t, dirNames(t, env.stagingDir))
	assert.Contains(t, messagesOf(out), "Error during Steam theme operation: no such host")
}

func TestSteamInstallRenameFailureCleansUp(t *testing.T) {
	env := newTestEnv(t)
	mustMkdir(t, env.skinsDir())
	env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-main")
	env.sys.renameErrs[env.steamDest()] = os.ErrPermission

	out := env.orchestrator(t).Run(context.Background(), steamRequest(target.Install))

	require.Equal(t, Failed, out.Status)
	assert.True(t, errors.Is(out.Err(), ErrFilesystemFailure))
	assert.Empty(t, dirNames(t, env.skinsDir()))
	assert.Empty(t, dirNames(t, env.stagingDir))
}

func TestSteamCleanupErrorIsLoggedOnly(t *testing.T) {
	env := newTestEnv(t)
	mustMkdir(t, env.skinsDir())
	env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-main")
	env.sys.removeErr = func(path string) error {
		if strings.HasSuffix(path, ".zip") {
			return errors.New("file locked by antivirus")
		}
		return nil
	}

	out := env.orchestrator(t).Run(context.Background(), steamRequest(target.Install))

	require.Equal(t, Completed, out.Status, out.Reason)
	assert.Contains(t, strings.Join(messagesOf(out), "\n"), "Cleanup error: ")
	assert.True(t, exists(filepath.Join(env.steamDest(), "skin.json")))
}

func TestSteamSkinsFolderMissing(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-main")

	for _, action := range []target.Action{target.Install, target.Reset} {
		out := env.orchestrator(t).Run(context.Background(), steamRequest(action))
		require.Equal(t, Failed, out.Status, action.String())
		assert.True(t, errors.Is(out.Err(), ErrPrerequisiteMissing))
		assert.Contains(t, messagesOf(out), "Steam skins folder not found. Please install Millennium first.")
	}
	assert.Zero(t, env.fetcher.callCount())
	assert.False(t, exists(env.skinsDir()))
}

func TestSteamUninstallNothingInstalledIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	mustMkdir(t, env.skinsDir())
	o := env.orchestrator(t)

	for i := 0; i < 2; i++ {
		out := o.Run(context.Background(), steamRequest(target.Uninstall))
		require.Equal(t, CompletedWithNoOp, out.Status)
		assert.Equal(t, "Steam theme not found", messagesOf(out)[len(out.Lines)-1])
	}
	assert.Empty(t, dirNames(t, env.skinsDir()))
}

func TestSteamUninstallWithoutSkinsFolderIsNoOp(t *testing.T) {
	env := newTestEnv(t)

	out := env.orchestrator(t).Run(context.Background(), steamRequest(target.Uninstall))

	require.Equal(t, CompletedWithNoOp, out.Status)
	assert.False(t, exists(env.skinsDir()))
}

func TestSteamUninstallRemovesInstallation(t *testing.T) {
	env := newTestEnv(t)
	mustWrite(t, filepath.Join(env.steamDest(), "skin.json"), "{}")

	out := env.orchestrator(t).Run(context.Background(), steamRequest(target.Uninstall))

	require.Equal(t, Completed, out.Status)
	assert.False(t, exists(env.steamDest()))
	assert.Equal(t, []string{
		"Preparing installation...",
		"Starting Steam theme uninstallation...",
		"Trying to see if you have SteamTheme installed...",
		"SteamTheme path was found and deleted!",
		"SpaceTheme uninstalled successfully for Steam.",
	}, messagesOf(out))
}

func TestSteamResetTwiceMatchesSingleReset(t *testing.T) {
	env := newTestEnv(t)
	mustMkdir(t, env.skinsDir())
	env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-main")
	o := env.orchestrator(t)

	first := o.Run(context.Background(), steamRequest(target.Reset))
	require.Equal(t, Completed, first.Status, first.Reason)
	assert.Contains(t, messagesOf(first), "No existing Steam theme found, proceeding with installation...")

	second := o.Run(context.Background(), steamRequest(target.Reset))
	require.Equal(t, Completed, second.Status, second.Reason)
	assert.Contains(t, messagesOf(second), "Removed existing Steam theme installation")

	assert.Equal(t, []string{"SpaceTheme For Steam"}, dirNames(t, env.skinsDir()))
	assert.Equal(t, []string{"assets", "skin.json", "src"}, dirNames(t, env.steamDest()))
}

func TestSteamPatcherFailureTouchesNothing(t *testing.T) {
	for _, action := range []target.Action{target.Install, target.Reset} {
		t.Run(action.String(), func(t *testing.T) {
			env := newTestEnv(t)
			mustWrite(t, filepath.Join(env.steamDest(), "skin.json"), "installed")
			env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-main")
			env.patcherErr = errors.New("exit status 1: Steam is running")
			req := steamRequest(action)
			req.MillenniumRequested = true

			out := env.orchestrator(t).Run(context.Background(), req)

			require.Equal(t, Failed, out.Status)
			assert.True(t, errors.Is(out.Err(), ErrExternalProcessFailure))
			assert.Equal(t, 1, env.patcherRan)
			assert.Zero(t, env.fetcher.callCount())
			assert.Equal(t, "installed", readString(t, filepath.Join(env.steamDest(), "skin.json")))
			assert.Equal(t, []string{"SpaceTheme For Steam"}, dirNames(t, env.skinsDir()))
			assert.Contains(t, messagesOf(out), "Millennium installation error: exit status 1: Steam is running")
		})
	}
}

func TestSteamPatcherRunsBeforeSkinsCheck(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-main")
	opts := env.options()
	skins := env.skinsDir()
	opts.Patcher = patcherFunc(func() error {
		env.patcherRan++
		return os.MkdirAll(skins, 0o755)
	})
	o, err := New(opts)
	require.NoError(t, err)
	req := steamRequest(target.Install)
	req.MillenniumRequested = true

	out := o.Run(context.Background(), req)

	require.Equal(t, Completed, out.Status, out.Reason)
	msgs := messagesOf(out)
	assert.Equal(t, "Starting Millennium installation...", msgs[1])
	assert.Equal(t, "Millennium installation completed successfully", msgs[2])
	assert.True(t, exists(filepath.Join(env.steamDest(), "skin.json")))
}

func TestSteamPatcherNotRunForUninstall(t *testing.T) {
	env := newTestEnv(t)
	req := steamRequest(target.Uninstall)
	req.MillenniumRequested = true

	env.orchestrator(t).Run(context.Background(), req)

	assert.Zero(t, env.patcherRan)
}

func TestSteamRootFromRequestWinsOverResolver(t *testing.T) {
	env := newTestEnv(t)
	mustMkdir(t, env.skinsDir())
	env.fetcher.bodies[target.SteamArchiveURL] = steamArchive(t, "Steam-main")
	opts := env.options()
	opts.Resolver = locate.Static{Path: filepath.Join(t.TempDir(), "elsewhere")}
	o, err := New(opts)
	require.NoError(t, err)
	req := steamRequest(target.Install)
	req.ResolvedRoot = env.steamRoot

	out := o.Run(context.Background(), req)

	require.Equal(t, Completed, out.Status, out.Reason)
	assert.True(t, exists(env.steamDest()))
}

func TestSteamRootNotFound(t *testing.T) {
	env := newTestEnv(t)
	opts := env.options()
	opts.Resolver = locate.Static{}
	o, err := New(opts)
	require.NoError(t, err)

	out := o.Run(context.Background(), steamRequest(target.Install))

	require.Equal(t, Failed, out.Status)
	assert.True(t, errors.Is(out.Err(), ErrPrerequisiteMissing))
	assert.Zero(t, env.fetcher.callCount())
	assert.Zero(t, env.patcherRan)
}

func TestSteamResolverError(t *testing.T) {
	env := newTestEnv(t)
	opts := env.options()
	opts.Resolver = resolverFunc(func() (locate.Result, error) {
		return locate.Result{}, errors.New("registry key not found")
	})
	o, err := New(opts)
	require.NoError(t, err)

	out := o.Run(context.Background(), steamRequest(target.Install))

	require.Equal(t, Failed, out.Status)
	assert.Contains(t, out.Reason, "registry key not found")
}

type patcherFunc func() error

func (f patcherFunc) Run(context.Context) error { return f() }

type resolverFunc func() (locate.Result, error)

func (f resolverFunc) Resolve(context.Context, target.Kind) (locate.Result, error) { return f() }
