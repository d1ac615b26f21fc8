package engine

import "errors"

// Programming errors fail fast at the call boundary. Expected no-data
// conditions are modeled as Result strategy tags instead.
var (
	ErrInvalidCount = errors.New("count must not be negative")
	ErrUnknownMode  = errors.New("unknown recommendation mode")
	ErrMissingUser  = errors.New("user id required")
)
