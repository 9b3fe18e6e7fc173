package install

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/spacetheme/spacetheme/internal/fsutil"
	"github.com/spacetheme/spacetheme/internal/locate"
	"github.com/spacetheme/spacetheme/internal/patcher"
	"github.com/spacetheme/spacetheme/internal/progress"
	"github.com/spacetheme/spacetheme/internal/target"
)

// faultSystem is a test helper that allows deterministic error injection for
// fsutil.System without chmod-based permission tricks.
type faultSystem struct {
	fsutil.System
	statErrs   map[string]error
	mkdirErrs  map[string]error
	renameErrs map[string]error
	removeErr  func(path string) error
	removes    []string
}

func newFaultSystem() *faultSystem {
	return &faultSystem{
		System:     fsutil.RealSystem{},
		statErrs:   map[string]error{},
		mkdirErrs:  map[string]error{},
		renameErrs: map[string]error{},
	}
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[filepath.Clean(name)]; ok {
		return nil, err
	}
	return f.System.Stat(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[filepath.Clean(path)]; ok {
		return err
	}
	return f.System.MkdirAll(path, perm)
}

func (f *faultSystem) Rename(oldpath string, newpath string) error {
	if err, ok := f.renameErrs[filepath.Clean(newpath)]; ok {
		return err
	}
	return f.System.Rename(oldpath, newpath)
}

func (f *faultSystem) RemoveAll(path string) error {
	f.removes = append(f.removes, filepath.Clean(path))
	if f.removeErr != nil {
		if err := f.removeErr(path); err != nil {
			return err
		}
	}
	return f.System.RemoveAll(path)
}

// fakeFetcher serves canned bodies by URL and records every call.
type fakeFetcher struct {
	mu     sync.Mutex
	bodies map[string][]byte
	errs   map[string]error
	calls  []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{bodies: map[string][]byte{}, errs: map[string]error{}}
}

func (f *fakeFetcher) Fetch(_ context.Context, url string, dest io.Writer) (int64, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	body, ok := f.bodies[url]
	err := f.errs[url]
	f.mu.Unlock()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.New("unexpected url " + url)
	}
	n, err := dest.Write(body)
	return int64(n), err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// testEnv is a scratch layout with a config root, a Steam root, and a staging dir.
type testEnv struct {
	configRoot string
	steamRoot  string
	stagingDir string
	fetcher    *fakeFetcher
	sys        *faultSystem
	sink       *progress.Recorder
	patcherRan int
	patcherErr error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	base := t.TempDir()
	env := &testEnv{
		configRoot: filepath.Join(base, "config"),
		steamRoot:  filepath.Join(base, "Steam"),
		stagingDir: filepath.Join(base, "staging"),
		fetcher:    newFakeFetcher(),
		sys:        newFaultSystem(),
		sink:       &progress.Recorder{},
	}
	mustMkdir(t, env.configRoot)
	mustMkdir(t, env.steamRoot)
	mustMkdir(t, env.stagingDir)
	env.fetcher.bodies[target.DiscordThemeURL] = []byte(themeV1)
	return env
}

func (env *testEnv) options() Options {
	return Options{
		System:  env.sys,
		Fetcher: env.fetcher,
		Resolver: locate.Static{
			Path: env.steamRoot,
		},
		Patcher: patcher.Func(func(context.Context) error {
			env.patcherRan++
			return env.patcherErr
		}),
		Sink:       env.sink,
		ConfigRoot: env.configRoot,
		StagingDir: env.stagingDir,
	}
}

func (env *testEnv) orchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	o, err := New(env.options())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return o
}

func (env *testEnv) clientRoot(kind target.Kind) string {
	return target.DefaultProfiles()[kind].ClientRoot(env.configRoot)
}

func (env *testEnv) themePath(kind target.Kind) string {
	return target.DefaultProfiles()[kind].ThemePath(env.configRoot)
}

func (env *testEnv) skinsDir() string {
	return target.SkinsDir(env.steamRoot)
}

func (env *testEnv) steamDest() string {
	return target.DefaultProfiles()[target.Steam].DestinationPath(env.steamRoot)
}

const (
	themeV1 = "/* SpaceTheme v1 */\n:root { --accent: #7b5cff; }\n"
	themeV2 = "/* SpaceTheme v2 */\n:root { --accent: #ff5c8a; }\n"
)

func zipBytes(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range names {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := fw.Write([]byte(entries[name])); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func steamArchive(t *testing.T, root string) []byte {
	t.Helper()
	return zipBytes(t, map[string]string{
		root + "/skin.json":         `{"name":"SpaceTheme For Steam"}`,
		root + "/src/library.css":   ".library { background: #000; }",
		root + "/assets/README.txt": "SpaceTheme",
	})
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWrite(t *testing.T, path string, content string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func messagesOf(out Outcome) []string {
	msgs := make([]string, len(out.Lines))
	for i, line := range out.Lines {
		msgs[i] = line.Message
	}
	return msgs
}
