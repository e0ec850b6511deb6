package router

import "errors"

// Sentinel kinds for routing errors.
var (
	ErrNoRoute = errors.New("no such route")
)
