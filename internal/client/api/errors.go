package api

import "errors"

// VerificationRequiredCode is the distinguished error code the login endpoint
// returns for a valid-shaped but unverified account.
const VerificationRequiredCode = "verify.email"

// ErrUnavailable means the request could not complete at all: DNS failure,
// refused connection, timeout. Distinct from a structured API error.
var ErrUnavailable = errors.New("server unavailable")

// APIError is a structured failure body returned by the server.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "api error " + e.Code
}

// IsVerificationRequired reports whether err is the distinguished
// needs-verification login outcome.
func IsVerificationRequired(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == VerificationRequiredCode
}

// Message extracts the server-provided message from err, or returns fallback
// when err carries no structured body.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
