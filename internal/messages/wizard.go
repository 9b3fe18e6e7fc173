package messages

// Wizard prompts and summary text.
const (
	WizardRequiresTerminal          = "the interactive form requires an interactive terminal; pass a command such as `spacetheme install discord`"
	WizardThemeTitle                = "Which theme do you want to manage?"
	WizardThemeDiscordOption        = "Discord (BetterDiscord and Vencord)"
	WizardThemeSteamOption          = "Steam (Millennium)"
	WizardActionTitle               = "What do you want to do?"
	WizardActionInstallOption       = "Install"
	WizardActionUninstallOption     = "Uninstall"
	WizardActionResetOption         = "Reset (remove and install again)"
	WizardMillenniumTitle           = "Install or update Millennium first?"
	WizardSteamPathTitle            = "Steam installation directory"
	WizardSteamPathEmptyHint        = "Leave empty to detect automatically."
	WizardSummaryTitle              = "Apply these changes?"
	WizardSummaryThemeFmt           = "Theme: %s\n"
	WizardSummaryActionFmt          = "Action: %s\n"
	WizardSummaryMillenniumFmt      = "Millennium: %s\n"
	WizardSummarySteamPathFmt       = "Steam path: %s\n"
	WizardSummaryAutoDetect         = "(detect automatically)"
	WizardSummaryYes                = "yes"
	WizardSummaryNo                 = "no"
	WizardFirstStepEscapeExitPrompt = "Exit without making changes?"
	WizardExitWithoutChanges        = "Exited without making changes."
	WizardUnknownThemeSelectionFmt  = "unknown theme selection: %q"
	WizardUnknownActionSelectionFmt = "unknown action selection: %q"
)
