package exceptions

import (
	"errors"
	"tutorbook-service/internal/pkg/constvars"
)

// ClientMessage extracts the user-facing message from an error, falling back
// to the generic application message for unexpected error values.
func ClientMessage(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrong
}

// StatusCode extracts the HTTP status to respond with.
func StatusCode(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

// IsUnauthenticated reports whether the error must redirect to the login
// page instead of rendering inline.
func IsUnauthenticated(err error) bool {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind == KindUnauthenticated
	}
	return false
}
