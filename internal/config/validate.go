package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spacetheme/spacetheme/internal/messages"
)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(path string) error {
	if err := validateURL(path, "sources.discord_theme_url", c.Sources.DiscordThemeURL); err != nil {
		return err
	}
	if err := validateURL(path, "sources.steam_archive_url", c.Sources.SteamArchiveURL); err != nil {
		return err
	}
	if c.Network.TimeoutSeconds <= 0 {
		return fmt.Errorf(messages.ConfigPositiveRequiredFmt, path, "network.timeout_seconds")
	}
	if c.Network.MaxDownloadBytes <= 0 {
		return fmt.Errorf(messages.ConfigPositiveRequiredFmt, path, "network.max_download_bytes")
	}
	if err := validateDirName(path, "steam.destination_dir", c.Steam.DestinationDir, false); err != nil {
		return err
	}
	if c.Steam.ArchiveRoot != nil {
		if err := validateDirName(path, "steam.archive_root", *c.Steam.ArchiveRoot, true); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.Paths.ConfigRoot) == "" {
		return fmt.Errorf(messages.ConfigRequiredFmt, path, "paths.config_root")
	}
	return nil
}

func validateURL(path string, field string, value string) error {
	u, err := url.Parse(value)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf(messages.ConfigHTTPSRequiredFmt, path, field, value)
	}
	return nil
}

func validateDirName(path string, field string, value string, allowEmpty bool) error {
	if value == "" {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf(messages.ConfigRequiredFmt, path, field)
	}
	if value == "." || value == ".." || strings.ContainsAny(value, `/\`) {
		return fmt.Errorf(messages.ConfigDirNameInvalidFmt, path, field, value)
	}
	return nil
}
