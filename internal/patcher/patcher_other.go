//go:build !windows

package patcher

// DefaultCommand runs a local script with sh. Without a script there is no
// default; Run then reports ErrNotConfigured.
func DefaultCommand(script string) (string, []string) {
	if script == "" {
		return "", nil
	}
	return "/bin/sh", []string{script}
}
