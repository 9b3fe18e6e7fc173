package messages

// Install messages emitted while themes are placed or removed. The progress
// lines are shown verbatim to users.
const (
	// InstallFetcherRequired indicates the orchestrator was built without a fetcher.
	InstallFetcherRequired    = "install requires a fetcher"
	InstallConfigRootRequired = "install requires a config root"
	InstallProfileMissingFmt  = "no profile configured for %s"
	InstallInvalidRequestFmt  = "Invalid request: %v"

	RequestNoTargets          = "at least one target is required"
	RequestUnknownActionFmt   = "unknown action %v"
	RequestUnknownTargetFmt   = "unknown target %v"
	RequestDuplicateTargetFmt = "target %s listed more than once"
	RequestMixedTargets       = "steam cannot be combined with chat-client targets in one request"

	InstallPreparing            = "Preparing installation..."
	InstallCreatedDirFmt        = "Created directory for %s"
	InstallDownloadingFmt       = "Downloading theme for %s..."
	InstallDownloadedFmt        = "%s downloaded successfully in %s"
	InstallSucceededFmt         = "SpaceTheme installed successfully for %s"
	InstallChatErrorFmt         = "Error installing theme for %s: %v"
	InstallChatSkippedFmt       = "%s is not installed, skipping"
	InstallChatClientMissingFmt = "%s is not installed. Please install it first."
	InstallChatNoneEligible     = "Neither BetterDiscord nor Vencord is installed. Please install one of them first."

	UninstallChatSucceededFmt = "SpaceTheme uninstalled successfully from %s"
	UninstallChatErrorFmt     = "Error uninstalling theme from %s: %v"
	UninstallChatNotFound     = "Discord theme not found in any supported client"

	ResetStarting       = "Starting theme reset process..."
	ResetRemovedFmt     = "Removed existing %s theme"
	ResetRemoveErrorFmt = "Error removing existing %s theme: %v"

	MillenniumStarting  = "Starting Millennium installation..."
	MillenniumSucceeded = "Millennium installation completed successfully"
	MillenniumErrorFmt  = "Millennium installation error: %v"

	SteamRootNotFound       = "Steam installation not found. Pass --steam-path or set steam.install_path in the config file."
	SteamResolveErrorFmt    = "could not locate Steam: %w"
	SteamSkinsMissing       = "Steam skins folder not found. Please install Millennium first."
	SteamUninstallStarting  = "Starting Steam theme uninstallation..."
	SteamUninstallChecking  = "Trying to see if you have SteamTheme installed..."
	SteamUninstallDeleted   = "SteamTheme path was found and deleted!"
	SteamUninstallSucceeded = "SpaceTheme uninstalled successfully for Steam."
	SteamThemeNotFound      = "Steam theme not found"
	SteamResetStarting      = "Starting Steam theme reset..."
	SteamResetRemoved       = "Removed existing Steam theme installation"
	SteamResetProceeding    = "Starting installation..."
	SteamResetNothing       = "No existing Steam theme found, proceeding with installation..."
	SteamDownloading        = "Downloading SpaceTheme for Steam..."
	SteamDownloadedFmt      = "SpaceTheme for Steam was downloaded to %s"
	SteamExtracting         = "Extracting files..."
	SteamExtractedFmt       = "SpaceTheme for Steam was successfully extracted to %s"
	SteamExtractFailedFmt   = "Failed to extract theme files: %w"
	SteamReplacedExisting   = "Replacing existing Steam theme installation"
	SteamSucceeded          = "SpaceTheme installed successfully for Steam."
	SteamErrorFmt           = "Error during Steam theme operation: %v"
	SteamCleanupErrorFmt    = "Cleanup error: %v"

	StatusClientMissing   = "client not installed"
	PreviewUnsupportedFmt = "diff preview is only available for chat clients, not %s"
	PreviewReadFmt        = "read installed theme %s: %w"
	PreviewTruncatedFmt   = "... (truncated to %d lines; rerun with %s <n> to see more)"
)
