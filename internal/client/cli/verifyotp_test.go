package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/secureapp/secureapp-cli/internal/client/api"
	"github.com/secureapp/secureapp-cli/internal/client/flow"
)

func TestVerifyOtpView_MissingEmailBounces(t *testing.T) {
	app, rec, _ := newTestApp(&fakeAuth{})

	route, _ := app.verifyOtpView(context.Background(), NavContext{})

	assert.Equal(t, RouteRegister, route)
	assert.Equal(t, "Email is missing. Please register again.", rec.last().message)
	assert.Equal(t, flow.StateRegistering, app.machine.State())
}

func TestVerifyOtpView_PasteAndSubmit(t *testing.T) {
	f := &fakeAuth{}
	app, rec, _ := newTestApp(f)
	stubInputs(t, []string{"123456", ""}, nil)

	route, _ := app.verifyOtpView(context.Background(), NavContext{Email: "alice@example.com"})

	assert.Equal(t, RouteLogin, route)
	assert.Equal(t, "alice@example.com", f.verifyIdentifier)
	assert.Equal(t, "123456", f.verifyCode)
	assert.Equal(t, "Your email has been verified. You can now log in.", rec.last().message)
	assert.Equal(t, flow.StateVerified, app.machine.State())
}

func TestVerifyOtpView_TypedDigitsAndBackspace(t *testing.T) {
	f := &fakeAuth{}
	app, _, _ := newTestApp(f)
	// Type six digits, backspace the last, retype it, then submit.
	stubInputs(t, []string{"1", "2", "3", "4", "5", "9", "b", "6", ""}, nil)

	route, _ := app.verifyOtpView(context.Background(), NavContext{Email: "alice@example.com"})

	assert.Equal(t, RouteLogin, route)
	assert.Equal(t, "123456", f.verifyCode)
}

func TestVerifyOtpView_IncompleteSubmitRejectedLocally(t *testing.T) {
	f := &fakeAuth{}
	app, rec, _ := newTestApp(f)
	// Submit with only three digits filled, then cancel.
	stubInputs(t, []string{"123", "", "q"}, nil)

	route, _ := app.verifyOtpView(context.Background(), NavContext{Email: "alice@example.com"})

	assert.Equal(t, RouteLogin, route)
	assert.Equal(t, "", f.verifyCode, "incomplete code must not reach the network")
	found := false
	for _, n := range rec.notices {
		if n.message == "Please enter a valid 6-digit OTP." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestVerifyOtpView_WrongCodeKeepsSlots(t *testing.T) {
	f := &fakeAuth{verifyErr: &api.APIError{Code: "otp.invalid", Message: "Invalid or expired OTP code.", Status: 400}}
	app, rec, _ := newTestApp(f)
	// First submit fails; the slots survive, so replacing one digit is
	// enough to resubmit. Then cancel out.
	stubInputs(t, []string{"123456", "", "q"}, nil)

	route, _ := app.verifyOtpView(context.Background(), NavContext{Email: "alice@example.com"})

	assert.Equal(t, RouteLogin, route)
	assert.Equal(t, "123456", f.verifyCode)
	failed := false
	for _, n := range rec.notices {
		if n.title == "Verification failed" {
			failed = true
		}
	}
	assert.True(t, failed)
	assert.Equal(t, flow.StatePendingVerification, app.machine.State())
}

func TestVerifyOtpView_ResendStub(t *testing.T) {
	app, rec, _ := newTestApp(&fakeAuth{})
	stubInputs(t, []string{"r", "q"}, nil)

	route, _ := app.verifyOtpView(context.Background(), NavContext{Email: "alice@example.com"})

	assert.Equal(t, RouteLogin, route)
	found := false
	for _, n := range rec.notices {
		if n.message == "This feature is coming soon!" {
			found = true
		}
	}
	assert.True(t, found)
}
