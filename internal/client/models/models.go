// Package models defines the data types exchanged with the SecureApp
// authentication API and held by the client.
package models

// Credentials is a single login attempt. Never persisted.
type Credentials struct {
	Username string
	Password string
}

// TokenPair is the pair issued by a successful login. Both values are
// persisted together or not at all; the session store enforces that.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegistrationPayload is the body of a register request. Transient: it lives
// for one form submission. ConfirmPassword is checked against Password
// client-side before any network call.
type RegistrationPayload struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// UserProfile is the authenticated user's profile as returned by the
// current-user endpoint. Display-only; the client never mutates it.
type UserProfile struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}
