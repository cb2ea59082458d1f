package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureapp/secureapp-cli/internal/common"
)

func TestRegistrationPath(t *testing.T) {
	m := New()
	assert.Equal(t, StateAnonymous, m.State())

	m.StartRegistration()
	assert.Equal(t, StateRegistering, m.State())

	m.RegistrationFailed()
	assert.Equal(t, StateRegistering, m.State(), "failed submit keeps the form open")

	m.RegistrationSucceeded("ada@example.org")
	assert.Equal(t, StatePendingVerification, m.State())
	assert.Equal(t, "ada@example.org", m.PendingIdentity())
}

func TestLoginRevealsUnverifiedAccount(t *testing.T) {
	m := New()
	m.LoginRequiresVerification("a@b.com")

	assert.Equal(t, StatePendingVerification, m.State())
	assert.Equal(t, "a@b.com", m.PendingIdentity())
	require.NoError(t, m.EnterVerification())
}

func TestEnterVerification_WithoutIdentityBouncesToRegistration(t *testing.T) {
	m := New()
	err := m.EnterVerification()

	require.ErrorIs(t, err, common.ErrMissingIdentity)
	assert.Equal(t, StateRegistering, m.State())
}

func TestVerifyFailureKeepsIdentity(t *testing.T) {
	m := New()
	m.RegistrationSucceeded("ada@example.org")

	m.BeginVerify()
	assert.Equal(t, StateVerifying, m.State())

	m.VerificationFailed()
	assert.Equal(t, StatePendingVerification, m.State())
	assert.Equal(t, "ada@example.org", m.PendingIdentity(), "identity survives a failed code")
}

func TestVerifySuccessIsTerminal(t *testing.T) {
	m := New()
	m.RegistrationSucceeded("ada@example.org")
	m.BeginVerify()
	m.VerificationSucceeded()

	assert.Equal(t, StateVerified, m.State())
	assert.Empty(t, m.PendingIdentity())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending-verification", StatePendingVerification.String())
	assert.Equal(t, "unknown", State(99).String())
}
