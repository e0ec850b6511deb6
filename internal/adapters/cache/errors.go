package cache

import "errors"

// Sentinel kinds for cache errors.
var (
	ErrOpen = errors.New("open cache failed")
	ErrSave = errors.New("save cache entry failed")
)
