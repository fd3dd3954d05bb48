package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrCountryNotFound indicates that a country name query matched nothing
	// upstream. Only single-country lookups surface this; bulk listings keep
	// their empty results.
	// API layer should map this to HTTP 404 Not Found.
	ErrCountryNotFound = errors.New("country not found")
)
