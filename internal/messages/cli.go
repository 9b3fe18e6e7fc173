package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse   = "spacetheme"
	RootShort = "Install the SpaceTheme theme for Discord mod loaders and Steam"
	RootLong  = "spacetheme installs, removes and resets the SpaceTheme theme for BetterDiscord, Vencord and Steam (through Millennium).\n\nRun without a command in a terminal to open the interactive form."

	RootVersionFlag = "Print version and exit"
	RootConfigFlag  = "Path to the config file (default: $SPACETHEME_CONFIG or the user config directory)"
	RootJSONFlag    = "Write progress and results as JSON lines"
	RootNoColorFlag = "Disable colored output"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
	UserAgentFmt     = "spacetheme/%s"

	TargetArgsHelp = "target is one of: discord, betterdiscord, vencord, steam"

	InstallUse   = "install <target>"
	InstallShort = "Install the theme"
	InstallLong  = "Download the theme and place it for the target.\n\n" + TargetArgsHelp + ". discord covers both BetterDiscord and Vencord."

	UninstallUse   = "uninstall <target>"
	UninstallShort = "Remove the theme"
	UninstallLong  = "Remove the installed theme for the target. Removing a theme that is not installed is not an error.\n\n" + TargetArgsHelp + "."

	ResetUse   = "reset <target>"
	ResetShort = "Remove and install the theme again"
	ResetLong  = "Remove any installed copy of the theme and install the current version.\n\n" + TargetArgsHelp + "."

	FlagSteamPath  = "Steam installation directory (skips automatic detection)"
	FlagMillennium = "Install or update Millennium before installing the Steam theme"

	StatusUse            = "status [target]"
	StatusShort          = "Show where the theme is installed"
	StatusLineFmt        = "%s %s\n"
	StatusPathFmt        = "    %s\n"
	StatusDetailFmt      = "    %s\n"
	StatusInstalledLabel = "[installed]    "
	StatusMissingLabel   = "[not installed]"
	StatusUnavailLabel   = "[unavailable]  "

	DiffUse           = "diff [target]"
	DiffShort         = "Preview changes between the installed and published stylesheet"
	DiffLong          = "Download the published Discord stylesheet and show a unified diff against each installed copy. Nothing is written.\n\nTarget defaults to discord."
	DiffLinesFlag     = "Maximum diff lines shown per target"
	DiffHeaderFmt     = "%s (%s)\n"
	DiffUpToDate      = "    up to date"
	DiffNotInstalled  = "    not installed; install would write the full stylesheet"
	DiffLinesInvalid  = "--lines must be a positive integer"
	DiffDefaultTarget = "discord"

	SteamPathUse   = "steam-path"
	SteamPathShort = "Print the detected Steam installation directory"

	CLISetupFailedFmt = "set up installer: %w"
)
