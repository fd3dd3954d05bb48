// Package upstream defines the error contract shared by the third-party HTTP
// data clients (country information, weather). Callers distinguish a provider
// being unreachable from a provider answering with a payload we cannot
// understand; both are single-attempt failures with no retry at this layer.
package upstream

import "errors"

var (
	// ErrUnavailable is returned when an upstream provider answers with a
	// non-success status or the network call itself fails.
	ErrUnavailable = errors.New("upstream service unavailable")

	// ErrMalformedResponse is returned when an upstream payload cannot be
	// decoded into the expected shape.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// IsUnavailable checks if the error indicates an unreachable upstream.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsMalformedResponse checks if the error indicates an undecodable payload.
func IsMalformedResponse(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}
