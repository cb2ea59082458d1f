package cli

import (
	"context"
	"fmt"
)

// dashboardView fetches and shows the authenticated profile. Any failure of
// the fetch (expired token, network error, malformed response) has already
// evicted the session by the time it surfaces here, so the view only
// redirects to login. This is the client's single automatic logout trigger.
func (a *App) dashboardView(ctx context.Context) (Route, NavContext) {
	fmt.Fprintln(a.out, "Loading profile...")

	profile, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.notifier.Notify(KindError, "Session expired", "Please sign in again.")
		return RouteLogin, NavContext{}
	}

	role := ""
	if len(profile.Roles) > 0 {
		role = profile.Roles[0]
	}

	fmt.Fprintln(a.out, "-- SecureApp --")
	fmt.Fprintf(a.out, "Welcome, %s!\n", profile.FirstName)
	fmt.Fprintf(a.out, "Email:      %s\n", profile.Email)
	fmt.Fprintf(a.out, "Account ID: %s\n", profile.ID)
	fmt.Fprintf(a.out, "Role:       %s\n", role)

	for {
		cmd, err := getSimpleText(a.reader, "Commands: refresh, logout, exit", a.out)
		if err != nil {
			return RouteExit, NavContext{}
		}
		switch cmd {
		case "refresh":
			return RouteDashboard, NavContext{}
		case "logout":
			if err := a.auth.Logout(); err != nil {
				a.log.Error(ctx, "logout failed", "error", err.Error())
			}
			a.notifier.Notify(KindInfo, "Logged out", "See you soon.")
			return RouteLogin, NavContext{}
		case "exit", "quit":
			return RouteExit, NavContext{}
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
