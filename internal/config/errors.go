package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot be used to start the server.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty bind address or a non-positive timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
