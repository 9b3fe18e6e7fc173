package config

import (
	"path/filepath"
	"time"

	"github.com/spacetheme/spacetheme/internal/fetch"
	"github.com/spacetheme/spacetheme/internal/target"
)

// Config is the user configuration for spacetheme.
type Config struct {
	Paths   PathsConfig   `toml:"paths"`
	Sources SourcesConfig `toml:"sources"`
	Steam   SteamConfig   `toml:"steam"`
	Patcher PatcherConfig `toml:"patcher"`
	Network NetworkConfig `toml:"network"`
}

// PathsConfig locates the directories spacetheme reads and writes.
type PathsConfig struct {
	// ConfigRoot holds the chat clients' folders. Default: the OS user config dir.
	ConfigRoot string `toml:"config_root"`
	StagingDir string `toml:"staging_dir"`
	LockDir    string `toml:"lock_dir"`
}

// SourcesConfig overrides where theme assets are downloaded from.
type SourcesConfig struct {
	DiscordThemeURL string `toml:"discord_theme_url"`
	SteamArchiveURL string `toml:"steam_archive_url"`
}

// SteamConfig describes the Steam installation and the skin layout.
type SteamConfig struct {
	InstallPath string `toml:"install_path"`
	// ArchiveRoot is the expected top-level directory of the archive. An
	// explicit empty string accepts any single top-level directory.
	ArchiveRoot    *string `toml:"archive_root"`
	DestinationDir string  `toml:"destination_dir"`
}

// PatcherConfig selects the companion patcher command.
type PatcherConfig struct {
	Command string `toml:"command"`
	Script  string `toml:"script"`
}

// NetworkConfig bounds downloads.
type NetworkConfig struct {
	TimeoutSeconds   int   `toml:"timeout_seconds"`
	MaxDownloadBytes int64 `toml:"max_download_bytes"`
}

// Default returns the built-in configuration with platform paths resolved.
func Default() *Config {
	paths := DefaultPaths()
	root := target.SteamArchiveRoot
	return &Config{
		Paths: PathsConfig{
			ConfigRoot: paths.ConfigRoot,
			StagingDir: paths.StagingDir,
			LockDir:    paths.LockDir,
		},
		Sources: SourcesConfig{
			DiscordThemeURL: target.DiscordThemeURL,
			SteamArchiveURL: target.SteamArchiveURL,
		},
		Steam: SteamConfig{
			ArchiveRoot:    &root,
			DestinationDir: target.SteamDestinationDir,
		},
		Network: NetworkConfig{
			TimeoutSeconds:   int(fetch.DefaultTimeout / time.Second),
			MaxDownloadBytes: fetch.DefaultMaxBytes,
		},
	}
}

// Profiles returns the target profiles with configured overrides applied.
func (c *Config) Profiles() target.Profiles {
	profiles := target.DefaultProfiles()
	for _, kind := range target.ChatClients {
		p := profiles[kind]
		p.SourceURL = c.Sources.DiscordThemeURL
		profiles[kind] = p
	}
	steam := profiles[target.Steam]
	steam.SourceURL = c.Sources.SteamArchiveURL
	if c.Steam.ArchiveRoot != nil {
		steam.ArchiveRoot = *c.Steam.ArchiveRoot
	}
	steam.DestinationDir = c.Steam.DestinationDir
	profiles[target.Steam] = steam
	return profiles
}

// FetchOptions returns the downloader settings.
func (c *Config) FetchOptions(userAgent string) fetch.Options {
	return fetch.Options{
		Timeout:   time.Duration(c.Network.TimeoutSeconds) * time.Second,
		MaxBytes:  c.Network.MaxDownloadBytes,
		UserAgent: userAgent,
	}
}

// clean normalizes configured paths.
func (c *Config) clean() {
	for _, p := range []*string{&c.Paths.ConfigRoot, &c.Paths.StagingDir, &c.Paths.LockDir, &c.Steam.InstallPath, &c.Patcher.Script} {
		if *p != "" {
			*p = filepath.Clean(*p)
		}
	}
}
