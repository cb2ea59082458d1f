package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/secureapp/secureapp-cli/internal/client/services"
	"github.com/secureapp/secureapp-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = promptLine
var getPassword = promptPassword

// loginView collects credentials and submits them once. Outcomes:
//
//   - tokens issued: notify success, go to the dashboard
//   - verify.email: carry the submitted username into the verification view
//   - any other failure: notify and stay on the login view
func (a *App) loginView(ctx context.Context) (Route, NavContext) {
	fmt.Fprintln(a.out, "-- Sign in --")

	username, err := getSimpleText(a.reader, "Username ('register' to create an account, 'exit' to quit)", a.out)
	if err != nil {
		return RouteExit, NavContext{}
	}
	switch strings.ToLower(username) {
	case "register":
		return RouteRegister, NavContext{}
	case "exit", "quit", "":
		return RouteExit, NavContext{}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return RouteExit, NavContext{}
	}
	defer common.WipeByteArray(password)

	res, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		a.notifyFailure("Login failed", "Something went wrong", err)
		return RouteLogin, NavContext{}
	}

	if res.Status == services.LoginVerificationRequired {
		a.machine.LoginRequiresVerification(res.PendingIdentity)
		a.notifier.Notify(KindInfo, "Verification required", "Please verify your email to continue.")
		return RouteVerifyOtp, NavContext{Email: res.PendingIdentity}
	}

	a.notifier.Notify(KindSuccess, "Success", "Login successful. Redirecting...")
	return RouteDashboard, NavContext{}
}
