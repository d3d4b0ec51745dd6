package errors

import "errors"

var (
	// Construction errors
	ErrInvalidCapacity   = errors.New("cache capacity must be positive")
	ErrInvalidShardCount = errors.New("shard count must be positive")
)
