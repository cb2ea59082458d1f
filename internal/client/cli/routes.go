package cli

// Route identifies a view. The paths mirror the web client's routing
// surface: login, register, verify-otp, dashboard, plus a root redirect.
type Route string

const (
	RouteRoot      Route = "/"
	RouteLogin     Route = "/login"
	RouteRegister  Route = "/register"
	RouteVerifyOtp Route = "/verify-otp"
	RouteDashboard Route = "/dashboard"

	// RouteExit leaves the session loop.
	RouteExit Route = "exit"
)

// NavContext is the state carried across one navigation hop. The pending
// email survives exactly one hop; a view reached without it must bounce.
type NavContext struct {
	Email string
}

// TokenReader is the slice of the session store the guard needs.
type TokenReader interface {
	AccessToken() string
}

// Resolve applies the root redirect and the protected-route guard. The
// dashboard renders only with a stored access token; otherwise the result is
// a redirect to the login entry point. The original destination is not
// remembered. Evaluation is a synchronous snapshot read at render time.
func Resolve(tokens TokenReader, r Route) Route {
	switch r {
	case RouteRoot:
		return RouteLogin
	case RouteDashboard:
		if tokens.AccessToken() == "" {
			return RouteLogin
		}
	}
	return r
}
