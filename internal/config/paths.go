package config

import (
	"os"
	"path/filepath"
)

// AppName names the per-user config and cache directories.
const AppName = "spacetheme"

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "SPACETHEME_CONFIG"

var (
	userConfigDir = os.UserConfigDir
	userCacheDir  = os.UserCacheDir
	tempDir       = os.TempDir
)

// Paths holds resolved default locations.
type Paths struct {
	ConfigRoot string
	ConfigPath string
	StagingDir string
	LockDir    string
}

// DefaultPaths returns the platform default locations. Lookup failures fall
// back to the temp directory so a missing HOME does not block uninstall.
func DefaultPaths() Paths {
	configRoot, err := userConfigDir()
	if err != nil || configRoot == "" {
		configRoot = tempDir()
	}
	cacheRoot, err := userCacheDir()
	if err != nil || cacheRoot == "" {
		cacheRoot = tempDir()
	}
	return Paths{
		ConfigRoot: configRoot,
		ConfigPath: filepath.Join(configRoot, AppName, "config.toml"),
		StagingDir: tempDir(),
		LockDir:    filepath.Join(cacheRoot, AppName, "locks"),
	}
}

// ResolvePath picks the config file: flagPath, then $SPACETHEME_CONFIG, then
// the default. explicit is false only for the default, which may be absent.
func ResolvePath(flagPath string, lookupEnv func(string) (string, bool)) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if lookupEnv != nil {
		if v, ok := lookupEnv(EnvConfigPath); ok && v != "" {
			return v, true
		}
	}
	return DefaultPaths().ConfigPath, false
}
