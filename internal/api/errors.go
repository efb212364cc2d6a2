package api

import (
	"errors"
	"net/http"

	"github.com/ntvhoang/lingo-api/internal/domain"
	"github.com/ntvhoang/lingo-api/internal/generation"
)

// Client-facing error messages. These are deliberately coarse: the detailed
// cause is logged at the boundary, never serialized.
const (
	msgInvalidRequest = "invalid request"
	msgRateLimited    = "rate limited"
	msgTimeout        = "timeout"
	msgProviderError  = "provider error"
	msgInternalError  = "internal error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error kind. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad client input, never reached the provider
	case errors.Is(err, domain.ErrInvalidTaskType),
		errors.Is(err, domain.ErrEmptyPayload):
		return http.StatusBadRequest

	// Provider throttling
	case errors.Is(err, generation.ErrRateLimited):
		return http.StatusTooManyRequests

	// Provider unresponsive
	case errors.Is(err, generation.ErrTimeout):
		return http.StatusGatewayTimeout

	// Credential/config problems and unusable provider output
	case errors.Is(err, generation.ErrInvalidConfig),
		errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error kind. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgInternalError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTaskType),
		errors.Is(err, domain.ErrEmptyPayload):
		return msgInvalidRequest

	case errors.Is(err, generation.ErrRateLimited):
		return msgRateLimited

	case errors.Is(err, generation.ErrTimeout):
		return msgTimeout

	case errors.Is(err, generation.ErrInvalidConfig),
		errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrInvalidResponse):
		return msgProviderError

	default:
		return msgInternalError
	}
}
