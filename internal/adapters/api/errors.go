package api

import "errors"

// Sentinel kinds for API client errors.
var (
	ErrNotFound = errors.New("resource not found")
)
