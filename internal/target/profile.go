package target

import "path/filepath"

const (
	// DiscordThemeURL serves the chat-client stylesheet.
	DiscordThemeURL = "https://raw.githubusercontent.com/SpaceTheme/Discord/refs/heads/main/SpaceTheme.theme.css"
	// SteamArchiveURL serves the Steam skin as a zip with one top-level directory.
	SteamArchiveURL = "https://github.com/SpaceTheme/Steam/archive/refs/heads/main.zip"

	// ThemeFileName is the stylesheet name written into chat-client theme folders.
	ThemeFileName = "SpaceTheme.theme.css"
	// SteamArchiveRoot is the top-level directory GitHub puts in the branch archive.
	SteamArchiveRoot = "Steam-main"
	// SteamDestinationDir is the canonical skin directory name under steamui/skins.
	SteamDestinationDir = "SpaceTheme For Steam"
)

// Profile is the static description of how a theme is placed for one kind.
type Profile struct {
	Kind        Kind
	DisplayName string

	// ClientDir is the chat client's directory under the user config root.
	ClientDir string
	// ThemeFile is the file written into the chat client's themes directory.
	ThemeFile string

	SourceURL string

	// Extract is set when SourceURL serves an archive rather than a single file.
	Extract bool
	// ArchiveRoot is the top-level directory expected after extraction.
	// Empty accepts any single top-level directory.
	ArchiveRoot string
	// DestinationDir is the final directory name under the skins directory.
	DestinationDir string

	// PatcherAllowed is set when a companion patcher may run before install.
	PatcherAllowed bool
}

// Profiles holds one profile per kind.
type Profiles map[Kind]Profile

// DefaultProfiles returns the built-in profiles.
func DefaultProfiles() Profiles {
	return Profiles{
		BetterDiscord: {
			Kind:        BetterDiscord,
			DisplayName: "BetterDiscord",
			ClientDir:   "BetterDiscord",
			ThemeFile:   ThemeFileName,
			SourceURL:   DiscordThemeURL,
		},
		Vencord: {
			Kind:        Vencord,
			DisplayName: "Vencord",
			ClientDir:   "Vencord",
			ThemeFile:   ThemeFileName,
			SourceURL:   DiscordThemeURL,
		},
		Steam: {
			Kind:           Steam,
			DisplayName:    "Steam",
			SourceURL:      SteamArchiveURL,
			Extract:        true,
			ArchiveRoot:    SteamArchiveRoot,
			DestinationDir: SteamDestinationDir,
			PatcherAllowed: true,
		},
	}
}

// ClientRoot returns the chat client's configuration directory.
func (p Profile) ClientRoot(configRoot string) string {
	return filepath.Join(configRoot, p.ClientDir)
}

// ThemesDir returns the chat client's themes directory.
func (p Profile) ThemesDir(configRoot string) string {
	return filepath.Join(p.ClientRoot(configRoot), "themes")
}

// ThemePath returns the installed stylesheet path for a chat client.
func (p Profile) ThemePath(configRoot string) string {
	return filepath.Join(p.ThemesDir(configRoot), p.ThemeFile)
}

// SkinsDir returns the Millennium skins directory under a Steam installation root.
func SkinsDir(steamRoot string) string {
	return filepath.Join(steamRoot, "steamui", "skins")
}

// DestinationPath returns the installed skin directory under a Steam installation root.
func (p Profile) DestinationPath(steamRoot string) string {
	return filepath.Join(SkinsDir(steamRoot), p.DestinationDir)
}
