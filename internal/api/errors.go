package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/globoclima/globoclima-api/internal/platform/openweather"
	"github.com/globoclima/globoclima-api/internal/platform/upstream"
	"github.com/globoclima/globoclima-api/internal/service"
	"github.com/globoclima/globoclima-api/internal/service/auth"
	"github.com/globoclima/globoclima-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This keeps
// the mapping in one place so handlers never leak internal error types.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found
	case errors.Is(err, service.ErrCountryNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound

	// Conflict
	case errors.Is(err, store.ErrUsernameExists):
		return http.StatusConflict

	// Bad request: entity validation and upstream lookup failures surface to
	// the caller as request errors rather than server faults.
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, upstream.ErrUnavailable),
		errors.Is(err, upstream.ErrMalformedResponse):
		return http.StatusBadRequest

	// Missing weather API key is a deployment problem, not a caller problem.
	case errors.Is(err, openweather.ErrAPIKeyMissing):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the error.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, service.ErrCountryNotFound):
		return "Country not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, upstream.ErrUnavailable):
		return "Upstream service unavailable"

	case errors.Is(err, upstream.ErrMalformedResponse):
		return "Upstream service returned an unusable response"

	case errors.Is(err, openweather.ErrAPIKeyMissing):
		return "Weather service is not configured"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a go-playground/validator error into a short
// user-friendly message without echoing struct internals.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'LoginRequest.Username' Error:Field validation for
		// 'Username' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
