package cli

import "errors"

// CLI-specific sentinel errors.
// These are validation/usage errors that don't belong to domain packages.

var (
	// ErrAPIKeyMissing indicates the selected provider's API key variable is not set.
	ErrAPIKeyMissing = errors.New("API key environment variable not set")

	// ErrOutputExists indicates the output file already exists.
	ErrOutputExists = errors.New("output file already exists")

	// ErrUnknownConfigKey indicates a config key outside config.Keys.
	ErrUnknownConfigKey = errors.New("unknown config key")

	// ErrInvalidAddr indicates a listen address that is not host:port.
	ErrInvalidAddr = errors.New("invalid listen address")
)
