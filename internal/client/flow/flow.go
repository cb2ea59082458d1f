// Package flow drives the email-verification sequence:
// register -> receive one-time code -> verify -> login.
//
// The machine carries the pending identity (the email or username awaiting
// verification) in memory only. Nothing is persisted: restarting the client
// while a verification is pending loses the identity and forces the user
// back to registration.
package flow

import "github.com/secureapp/secureapp-cli/internal/common"

// State is a position in the verification sequence.
type State int

const (
	// StateAnonymous is the resting state: no registration or verification
	// in progress.
	StateAnonymous State = iota

	// StateRegistering means the registration form is active. A failed
	// submit stays here so the user can resubmit.
	StateRegistering

	// StatePendingVerification means an account awaits its one-time code.
	// The pending identity is set.
	StatePendingVerification

	// StateVerifying means a code submission is in flight.
	StateVerifying

	// StateVerified is terminal for this flow: the account is verified and
	// the user must log in fresh. There is no auto-login after verification.
	StateVerified
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateRegistering:
		return "registering"
	case StatePendingVerification:
		return "pending-verification"
	case StateVerifying:
		return "verifying"
	case StateVerified:
		return "verified"
	default:
		return "unknown"
	}
}

// Machine is the verification state machine. Not safe for concurrent use;
// the client is single-threaded per view.
type Machine struct {
	state State
	email string
}

// New returns a machine in StateAnonymous.
func New() *Machine { return &Machine{state: StateAnonymous} }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// PendingIdentity returns the email carried into verification, or "".
func (m *Machine) PendingIdentity() string { return m.email }

// StartRegistration opens the registration form.
func (m *Machine) StartRegistration() {
	m.state = StateRegistering
	m.email = ""
}

// RegistrationSucceeded advances to pending verification, carrying the
// registered email as the pending identity.
func (m *Machine) RegistrationSucceeded(email string) {
	m.state = StatePendingVerification
	m.email = email
}

// RegistrationFailed keeps the machine in StateRegistering; the user may
// resubmit.
func (m *Machine) RegistrationFailed() {
	m.state = StateRegistering
}

// LoginRequiresVerification is the alternate entry: a login attempt revealed
// an unverified account. The submitted username becomes the pending identity.
func (m *Machine) LoginRequiresVerification(username string) {
	m.state = StatePendingVerification
	m.email = username
}

// EnterVerification guards entry into the verification view. Reaching it
// without a carried identity bounces back to registration rather than
// accepting empty input: the machine moves to StateRegistering and
// common.ErrMissingIdentity is returned.
func (m *Machine) EnterVerification() error {
	if m.email == "" {
		m.state = StateRegistering
		return common.ErrMissingIdentity
	}
	m.state = StatePendingVerification
	return nil
}

// BeginVerify marks a code submission in flight.
func (m *Machine) BeginVerify() {
	m.state = StateVerifying
}

// VerificationFailed returns to pending verification. The identity is
// retained and entered code slots are not auto-cleared by this transition.
func (m *Machine) VerificationFailed() {
	m.state = StatePendingVerification
}

// VerificationSucceeded reaches the terminal state; the caller navigates to
// the login entry point.
func (m *Machine) VerificationSucceeded() {
	m.state = StateVerified
	m.email = ""
}
