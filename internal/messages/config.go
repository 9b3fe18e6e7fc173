package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt      = "missing config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized keys: %v"
	ConfigExpandPathFmt       = "expand path %q: %w"

	ConfigRequiredFmt         = "%s: %s is required"
	ConfigPositiveRequiredFmt = "%s: %s must be greater than zero"
	ConfigHTTPSRequiredFmt    = "%s: %s must be an https URL (got %q)"
	ConfigDirNameInvalidFmt   = "%s: %s must be a single directory name (got %q)"
)
