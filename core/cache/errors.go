package cache

import "errors"

var (
	// ErrInvalidCapacity is returned when a cache is constructed with a capacity below one.
	ErrInvalidCapacity = errors.New("cache capacity must be positive")

	// ErrNilLoader is returned by GetOrLoad when no load function is given.
	ErrNilLoader = errors.New("cache load function is nil")
)
