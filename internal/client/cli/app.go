// Package cli contains the interactive views of the SecureApp client and
// the router that moves between them. Views are single-threaded: one form
// submission is in flight at a time, and the view blocks on it.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/secureapp/secureapp-cli/internal/client/api"
	"github.com/secureapp/secureapp-cli/internal/client/config"
	"github.com/secureapp/secureapp-cli/internal/client/flow"
	"github.com/secureapp/secureapp-cli/internal/client/models"
	"github.com/secureapp/secureapp-cli/internal/client/services"
	"github.com/secureapp/secureapp-cli/internal/client/session"
	"github.com/secureapp/secureapp-cli/internal/logging"
)

// App wires the views to their collaborators. All dependencies are injected
// so tests can substitute fakes.
type App struct {
	config   *config.Config
	auth     services.AuthService
	store    *session.Store
	machine  *flow.Machine
	notifier Notifier
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp builds the production wiring: file-backed session store, HTTP API
// client, console notifier, stdin/stdout views.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	store := session.NewStore(session.NewFileStorage(cfg.TokenFile), log)
	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, log)

	return &App{
		config:   cfg,
		auth:     services.NewAuthService(apiClient, store, log),
		store:    store,
		machine:  flow.New(),
		notifier: NewConsoleNotifier(os.Stdout),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

// Run starts the interactive session at the root route.
func (a *App) Run(ctx context.Context) error {
	return a.RunFrom(ctx, RouteRoot, NavContext{})
}

// RunFrom starts the interactive session at a specific route. Each view
// returns the next route plus the context carried into it; the guard is
// re-evaluated on every hop.
func (a *App) RunFrom(ctx context.Context, route Route, nav NavContext) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		route = Resolve(a.store, route)

		switch route {
		case RouteLogin:
			route, nav = a.loginView(ctx)
		case RouteRegister:
			route, nav = a.registerView(ctx)
		case RouteVerifyOtp:
			route, nav = a.verifyOtpView(ctx, nav)
		case RouteDashboard:
			route, nav = a.dashboardView(ctx)
		case RouteExit:
			return nil
		default:
			route, nav = RouteRoot, NavContext{}
		}
	}
}

// SeedVerification primes the pending identity, used by the one-shot verify
// command where the identity arrives as a flag instead of a navigation hop.
func (a *App) SeedVerification(email string) {
	if email != "" {
		a.machine.LoginRequiresVerification(email)
	}
}

// Logout clears the stored token pair.
func (a *App) Logout() error {
	return a.auth.Logout()
}

// CurrentUser fetches the authenticated profile once, for non-interactive
// callers. Session eviction on failure applies exactly as in the dashboard.
func (a *App) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	return a.auth.CurrentUser(ctx)
}

// notifyFailure maps the failure taxonomy onto notices: transport failures
// get the generic could-not-connect text, structured API failures surface
// the server message (with fallback), anything else is shown as-is.
func (a *App) notifyFailure(title, fallback string, err error) {
	if errors.Is(err, api.ErrUnavailable) {
		a.notifier.Notify(KindError, "Network error", "Could not connect to the server.")
		return
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		a.notifier.Notify(KindError, title, api.Message(err, fallback))
		return
	}
	a.notifier.Notify(KindError, title, err.Error())
}
