package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/secureapp/secureapp-cli/internal/client/flow"
	"github.com/secureapp/secureapp-cli/internal/client/models"
	"github.com/secureapp/secureapp-cli/internal/client/services"
	"github.com/secureapp/secureapp-cli/internal/client/session"
	"github.com/secureapp/secureapp-cli/internal/logging"
)

// fakeAuth is a scriptable services.AuthService.
type fakeAuth struct {
	loginResult *services.LoginResult
	loginErr    error
	loginUser   string
	loginPass   string

	registerEmail  string
	registerErr    error
	registerCalled bool

	verifyErr        error
	verifyIdentifier string
	verifyCode       string

	profile        *models.UserProfile
	currentUserErr error

	logoutCalled bool
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (*services.LoginResult, error) {
	f.loginUser, f.loginPass = username, password
	return f.loginResult, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, payload *models.RegistrationPayload) (string, error) {
	f.registerCalled = true
	if f.registerErr != nil {
		return "", f.registerErr
	}
	if f.registerEmail != "" {
		return f.registerEmail, nil
	}
	return payload.Email, nil
}

func (f *fakeAuth) VerifyOtp(_ context.Context, identifier, code string) error {
	f.verifyIdentifier, f.verifyCode = identifier, code
	return f.verifyErr
}

func (f *fakeAuth) CurrentUser(context.Context) (*models.UserProfile, error) {
	return f.profile, f.currentUserErr
}

func (f *fakeAuth) Logout() error {
	f.logoutCalled = true
	return nil
}

// notice is one recorded notification.
type notice struct {
	kind    Kind
	title   string
	message string
}

type recordingNotifier struct {
	notices []notice
}

func (r *recordingNotifier) Notify(kind Kind, title, message string) {
	r.notices = append(r.notices, notice{kind: kind, title: title, message: message})
}

func (r *recordingNotifier) last() notice {
	if len(r.notices) == 0 {
		return notice{}
	}
	return r.notices[len(r.notices)-1]
}

// newTestApp builds an App over fakes with an in-memory session store.
func newTestApp(f *fakeAuth) (*App, *recordingNotifier, *session.Store) {
	store := session.NewStore(session.NewMemoryStorage(), logging.NewNop())
	rec := &recordingNotifier{}
	app := &App{
		auth:     f,
		store:    store,
		machine:  flow.New(),
		notifier: rec,
		log:      logging.NewNop(),
		reader:   bufio.NewReader(bytes.NewReader(nil)),
		out:      &bytes.Buffer{},
	}
	return app, rec, store
}

// stubInputs replaces the interactive input seams with scripted values.
// Each call to getSimpleText consumes the next line; getPassword consumes
// the next password. Exhausted scripts return io.EOF.
func stubInputs(t *testing.T, lines []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		next := lines[0]
		lines = lines[1:]
		return next, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		next := passwords[0]
		passwords = passwords[1:]
		return []byte(next), nil
	}

	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
