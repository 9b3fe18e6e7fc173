package main

// Tests in this package replace package-level hooks (newFetcher, newPatcher,
// lookupEnv, isTerminal, runWizard). Do not use t.Parallel().

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spacetheme/spacetheme/internal/config"
	"github.com/spacetheme/spacetheme/internal/fetch"
	"github.com/spacetheme/spacetheme/internal/install"
	"github.com/spacetheme/spacetheme/internal/patcher"
	"github.com/spacetheme/spacetheme/internal/target"
)

const publishedTheme = "/* SpaceTheme */\n:root { --accent: #7f5af0; }\n"

// mapFetcher serves canned bodies keyed by URL.
type mapFetcher map[string][]byte

func (m mapFetcher) Fetch(_ context.Context, url string, dest io.Writer) (int64, error) {
	body, ok := m[url]
	if !ok {
		return 0, fmt.Errorf("%w: 404 Not Found", fetch.ErrUnexpectedStatus)
	}
	n, err := dest.Write(body)
	return int64(n), err
}

type cliEnv struct {
	dir        string
	configRoot string
	configPath string
	steamRoot  string
	fetcher    mapFetcher
	patcherRan int
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	env := &cliEnv{
		dir:        dir,
		configRoot: filepath.Join(dir, "appdata"),
		configPath: filepath.Join(dir, "config.toml"),
		steamRoot:  filepath.Join(dir, "Steam"),
		fetcher: mapFetcher{
			target.DiscordThemeURL: []byte(publishedTheme),
			target.SteamArchiveURL: steamZip(t),
		},
	}
	mustMkdirAll(t, env.configRoot)
	env.writeConfig(t, "")

	origFetcher, origPatcher, origLookup := newFetcher, newPatcher, lookupEnv
	origTerminal, origWizard := isTerminal, runWizard
	t.Cleanup(func() {
		newFetcher, newPatcher, lookupEnv = origFetcher, origPatcher, origLookup
		isTerminal, runWizard = origTerminal, origWizard
	})
	newFetcher = func(fetch.Options) install.Fetcher { return env.fetcher }
	newPatcher = func(*config.Config) patcher.Runner {
		return patcher.Func(func(context.Context) error {
			env.patcherRan++
			return nil
		})
	}
	lookupEnv = func(string) (string, bool) { return "", false }
	isTerminal = func() bool { return false }
	return env
}

// writeConfig writes the base config followed by extra TOML.
func (e *cliEnv) writeConfig(t *testing.T, extra string) {
	t.Helper()
	base := fmt.Sprintf("[paths]\nconfig_root = %q\nstaging_dir = %q\nlock_dir = %q\n",
		filepath.ToSlash(e.configRoot),
		filepath.ToSlash(e.dir),
		filepath.ToSlash(filepath.Join(e.dir, "locks")),
	)
	if err := os.WriteFile(e.configPath, []byte(base+extra), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// run invokes the CLI and returns stdout, stderr, and the exit code.
func (e *cliEnv) run(args ...string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	code := 0
	full := append([]string{"spacetheme", "--config", e.configPath, "--no-color"}, args...)
	runMain(full, &stdout, &stderr, func(c int) { code = c })
	return stdout.String(), stderr.String(), code
}

func (e *cliEnv) clientRoot(kind target.Kind) string {
	return target.DefaultProfiles()[kind].ClientRoot(e.configRoot)
}

func (e *cliEnv) themePath(kind target.Kind) string {
	return target.DefaultProfiles()[kind].ThemePath(e.configRoot)
}

func (e *cliEnv) steamDest() string {
	return target.DefaultProfiles()[target.Steam].DestinationPath(e.steamRoot)
}

func steamZip(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		target.SteamArchiveRoot + "/skin.json":       `{"name":"SpaceTheme"}`,
		target.SteamArchiveRoot + "/src/library.css": "body{}",
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := io.WriteString(w, body); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	mustMkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return lines[len(lines)-1]
}
