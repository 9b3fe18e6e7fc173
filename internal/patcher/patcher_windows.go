//go:build windows

package patcher

// installScriptURL is the Millennium installer used when no local script is configured.
const installScriptURL = "https://steambrew.app/install.ps1"

// DefaultCommand returns the PowerShell invocation for the patcher. A local
// script runs with -File; otherwise the published installer is fetched and run.
func DefaultCommand(script string) (string, []string) {
	if script != "" {
		return "powershell.exe", []string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-File", script}
	}
	return "powershell.exe", []string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", "iwr -useb " + installScriptURL + " | iex"}
}
