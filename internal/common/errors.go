// Package common contains shared sentinel errors and small utilities used
// across the SecureApp client. Callers should use errors.Is to match the
// sentinel values.
package common

import "errors"

var (
	// ErrSessionExpired means the current-user check failed and the local
	// session has been evicted. The HTTP status is deliberately not
	// distinguished: every failure of the session check is treated the same.
	ErrSessionExpired = errors.New("session expired")

	// ErrMissingIdentity means the verification step was reached without a
	// carried email; the caller must bounce back to registration.
	ErrMissingIdentity = errors.New("pending identity missing")

	// ErrEmptyToken is returned when a token save is rejected because one of
	// the values is empty. Prior state is left untouched.
	ErrEmptyToken = errors.New("empty token")

	// ErrIncompleteCode means the one-time code does not have all six digits.
	ErrIncompleteCode = errors.New("verification code incomplete")
)
