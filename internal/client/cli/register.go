package cli

import (
	"context"
	"fmt"

	"github.com/secureapp/secureapp-cli/internal/client/models"
	"github.com/secureapp/secureapp-cli/internal/common"
)

// registerView collects the registration fields and submits them once.
// Success advances to the verification view carrying the email as pending
// identity; failure keeps the user here so they can resubmit.
func (a *App) registerView(ctx context.Context) (Route, NavContext) {
	fmt.Fprintln(a.out, "-- Create an account --")
	a.machine.StartRegistration()

	firstName, err := getSimpleText(a.reader, "First name ('login' to go back, 'exit' to quit)", a.out)
	if err != nil {
		return RouteExit, NavContext{}
	}
	switch firstName {
	case "login":
		return RouteLogin, NavContext{}
	case "exit", "quit":
		return RouteExit, NavContext{}
	}

	lastName, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return RouteExit, NavContext{}
	}
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return RouteExit, NavContext{}
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return RouteExit, NavContext{}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return RouteExit, NavContext{}
	}
	defer common.WipeByteArray(password)

	fmt.Fprint(a.out, "Confirm ")
	confirm, err := getPassword(a.out)
	if err != nil {
		return RouteExit, NavContext{}
	}
	defer common.WipeByteArray(confirm)

	payload := &models.RegistrationPayload{
		FirstName:       firstName,
		LastName:        lastName,
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}

	pending, err := a.auth.Register(ctx, payload)
	if err != nil {
		a.machine.RegistrationFailed()
		a.notifyFailure("Registration failed", "Something went wrong", err)
		return RouteRegister, NavContext{}
	}

	a.machine.RegistrationSucceeded(pending)
	a.notifier.Notify(KindSuccess, "Registered", "We've sent a 6-digit code to "+pending+".")
	return RouteVerifyOtp, NavContext{Email: pending}
}
