// Package api implements the client for the SecureApp authentication API.
//
// Every operation is a single round trip with no retries and no caching.
// Failures are normalized into three shapes the rest of the client can
// switch on:
//
//   - a decoded success payload,
//   - *APIError for structured 4xx/5xx bodies ({code, message}),
//   - ErrUnavailable when the request itself could not complete.
package api

import (
	"context"

	"github.com/secureapp/secureapp-cli/internal/client/models"
)

// Client defines the four remote authentication calls.
//
// All methods honor context cancellation and deadlines.
type Client interface {
	// Login exchanges credentials for a token pair. An *APIError whose code
	// is VerificationRequiredCode means the account exists but is not
	// verified yet; callers must route into the verification flow instead of
	// the generic failure path.
	Login(ctx context.Context, username, password string) (*models.TokenPair, error)

	// Register creates a new account. Success yields no tokens; the caller
	// advances to verification with the payload's email as pending identity.
	Register(ctx context.Context, payload *models.RegistrationPayload) error

	// VerifyOtp submits a six-digit code for the given email/username
	// identifier. Success means the account is verified and the caller
	// should route to login.
	VerifyOtp(ctx context.Context, identifier, code string) error

	// CurrentUser fetches the authenticated profile using the access token.
	CurrentUser(ctx context.Context, accessToken string) (*models.UserProfile, error)
}
