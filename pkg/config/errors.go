package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment cannot be parsed into
	// the target struct, e.g. a required variable is missing.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when a config type cannot be served from
	// the cache after a load attempt.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
