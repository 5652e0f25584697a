package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, an empty address or a negative shutdown timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid gate settings
	// (for example, a non-positive verification timeout).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, a missing address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
