package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the target struct.
	ErrParsingConfig = errors.New("failed to parse config from environment")

	// ErrNilTarget is returned when Load receives a nil pointer.
	ErrNilTarget = errors.New("config target must not be nil")
)
