// Package services contains the application service layer of the SecureApp
// client: it orchestrates the API client and the session store so views only
// deal in domain outcomes.
package services

import (
	"context"
	"regexp"

	"github.com/samber/oops"

	"github.com/secureapp/secureapp-cli/internal/client/api"
	"github.com/secureapp/secureapp-cli/internal/client/models"
	"github.com/secureapp/secureapp-cli/internal/client/session"
	"github.com/secureapp/secureapp-cli/internal/common"
	"github.com/secureapp/secureapp-cli/internal/logging"
)

// LoginStatus discriminates the two non-error login outcomes.
type LoginStatus int

const (
	// LoginAuthenticated means tokens were issued and saved.
	LoginAuthenticated LoginStatus = iota

	// LoginVerificationRequired means the credentials were valid-shaped but
	// the account is unverified; no tokens were saved and the caller must
	// route into the verification flow with PendingIdentity.
	LoginVerificationRequired
)

// LoginResult is the outcome of a successful-or-routed login attempt.
type LoginResult struct {
	Status          LoginStatus
	PendingIdentity string
}

// AuthService defines the authentication operations the views drive.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, payload *models.RegistrationPayload) (string, error)
	VerifyOtp(ctx context.Context, identifier, code string) error
	CurrentUser(ctx context.Context) (*models.UserProfile, error)
	Logout() error
}

// authService is the concrete AuthService backed by the remote API client
// and the local session store.
type authService struct {
	api   api.Client
	store *session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{api: client, store: store, log: log}
}

// Login submits credentials once. On success the issued pair is saved and
// the result is LoginAuthenticated. The distinguished verify.email failure
// becomes LoginVerificationRequired carrying the submitted username; no
// tokens are touched on that path. Every other failure is returned as-is.
func (a *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	pair, err := a.api.Login(ctx, username, password)
	if err != nil {
		if api.IsVerificationRequired(err) {
			a.log.Info(ctx, "login requires verification", "username", username)
			return &LoginResult{Status: LoginVerificationRequired, PendingIdentity: username}, nil
		}
		return nil, err
	}

	if err := a.store.Save(pair.AccessToken, pair.RefreshToken); err != nil {
		return nil, oops.Code("SESSION_SAVE_FAILED").Wrap(err)
	}
	a.log.Info(ctx, "login successful", "username", username)
	return &LoginResult{Status: LoginAuthenticated}, nil
}

// Register validates the payload client-side, then creates the account. The
// returned string is the pending identity (the payload's email) for the
// verification step.
func (a *authService) Register(ctx context.Context, payload *models.RegistrationPayload) (string, error) {
	if err := payload.Validate(); err != nil {
		return "", err
	}
	if err := a.api.Register(ctx, payload); err != nil {
		return "", err
	}
	a.log.Info(ctx, "registration submitted", "email", payload.Email)
	return payload.Email, nil
}

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

// VerifyOtp submits the code for the pending identity. An incomplete or
// non-numeric code is blocked before any network call.
func (a *authService) VerifyOtp(ctx context.Context, identifier, code string) error {
	if !codePattern.MatchString(code) {
		return common.ErrIncompleteCode
	}
	return a.api.VerifyOtp(ctx, identifier, code)
}

// CurrentUser fetches the authenticated profile. Any failure (missing
// token, transport error, 4xx/5xx) evicts the session: tokens are cleared
// and common.ErrSessionExpired is returned. The caller redirects to login.
// This is the client's only automatic logout trigger.
func (a *authService) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	token := a.store.AccessToken()
	if token == "" {
		return nil, a.evict(ctx, nil)
	}

	profile, err := a.api.CurrentUser(ctx, token)
	if err != nil {
		return nil, a.evict(ctx, err)
	}
	return profile, nil
}

// Logout clears the stored pair. Navigation back to login is the caller's
// responsibility.
func (a *authService) Logout() error {
	return a.store.Clear()
}

func (a *authService) evict(ctx context.Context, cause error) error {
	if err := a.store.Clear(); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err.Error())
	}
	if cause != nil {
		a.log.Info(ctx, "session evicted", "cause", cause.Error())
		return oops.Code("SESSION_EXPIRED").With("cause", cause.Error()).Wrap(common.ErrSessionExpired)
	}
	return common.ErrSessionExpired
}
