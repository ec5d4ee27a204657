package domain

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	// ErrInvalidInput returned when a request body or parameter is malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingToken returned when the Authorization header is absent or not a Bearer credential
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken returned when the identity provider rejects the token
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInsufficientPrivilege returned when a verified token lacks the admin claim
	ErrInsufficientPrivilege = errors.New("admin privilege required")

	// ErrInvalidSignature returned when HMAC signature validation fails
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrNotFound returned when the config document does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists returned by ConfigStore.Create when the document exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrServiceUnavailable returned when Firestore or Firebase Auth fails
	ErrServiceUnavailable = errors.New("service unavailable")
)

// HTTPStatus maps an error to the status code returned at the handler boundary
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrInvalidToken), errors.Is(err, ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInsufficientPrivilege):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
