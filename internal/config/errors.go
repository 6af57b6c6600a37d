package config

import "errors"

// Sentinel kinds for config errors.
var (
	// ErrInvalidConfig marks a loaded value that fails validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrLoadConfig marks a failure reading or decoding a config source.
	ErrLoadConfig = errors.New("load config failed")
)
