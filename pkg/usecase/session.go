package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/m-mizutani/chronocode/pkg/domain/interfaces"
	"github.com/m-mizutani/chronocode/pkg/domain/model"
	"github.com/m-mizutani/chronocode/pkg/domain/types"
	"github.com/m-mizutani/chronocode/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// EntryPath is where users land when they are not signed in.
const EntryPath = "/"

// HomePath is the landing page of signed-in users.
const HomePath = "/home"

var protectedPrefixes = []string{"/home", "/timeline"}

// Session holds the signed-in user. It starts in checking and settles in
// authenticated or unauthenticated after Check.
type Session struct {
	api       interfaces.API
	navigator interfaces.Navigator

	mu    sync.RWMutex
	state model.SessionState
	user  *model.GitHubProfile
}

func (x *UseCase) NewSession() *Session {
	return NewSession(x.clients.API(), x.clients.Navigator())
}

func NewSession(api interfaces.API, navigator interfaces.Navigator) *Session {
	return &Session{
		api:       api,
		navigator: navigator,
		state:     model.SessionChecking,
	}
}

func (x *Session) State() model.SessionState {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.state
}

// User returns the profile of the signed-in user, or nil.
func (x *Session) User() *model.GitHubProfile {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.user
}

func (x *Session) IsAuthenticated() bool {
	return x.User() != nil
}

func (x *Session) set(state model.SessionState, user *model.GitHubProfile) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.state = state
	x.user = user
}

// Check asks the backend whether the session is signed in and loads the
// profile if so. Any failure leaves the session unauthenticated.
func (x *Session) Check(ctx context.Context) model.SessionState {
	x.set(model.SessionChecking, nil)
	logger := logging.From(ctx)

	status, err := x.api.AuthStatus(ctx)
	if err != nil {
		logger.Debug("auth status check failed", slog.Any("error", err))
		x.set(model.SessionUnauthenticated, nil)
		return model.SessionUnauthenticated
	}
	if !status.IsLoggedIn {
		x.set(model.SessionUnauthenticated, nil)
		return model.SessionUnauthenticated
	}

	profile, err := x.api.GetProfile(ctx)
	if err != nil {
		logger.Debug("profile fetch failed", slog.Any("error", err))
		x.set(model.SessionUnauthenticated, nil)
		return model.SessionUnauthenticated
	}

	x.set(model.SessionAuthenticated, profile)
	return model.SessionAuthenticated
}

// Login navigates to the external login page. The session state does not
// change; the flow continues outside this process.
func (x *Session) Login(ctx context.Context) error {
	if x.navigator == nil {
		return goerr.Wrap(types.ErrInvalidOption, "navigator is not configured")
	}
	return x.navigator.Navigate(ctx, x.api.LoginURL())
}

// Logout is best effort: the server call may fail, but the local user is
// always cleared and the user is sent to the entry page.
func (x *Session) Logout(ctx context.Context) error {
	if err := x.api.Logout(ctx); err != nil {
		logging.From(ctx).Warn("server logout failed, clearing local session anyway", slog.Any("error", err))
	}

	x.set(model.SessionUnauthenticated, nil)

	if x.navigator == nil {
		return nil
	}
	return x.navigator.Navigate(ctx, EntryPath)
}

// IsProtectedPath reports whether path requires a session credential.
func IsProtectedPath(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// GateRoute decides the edge redirect for path given whether a session
// cookie is present. Only presence is checked; the backend validates the
// credential. It returns the redirect target and true when a redirect is
// required.
func GateRoute(path string, hasToken bool) (string, bool) {
	if IsProtectedPath(path) && !hasToken {
		return EntryPath, true
	}
	if path == EntryPath && hasToken {
		return HomePath, true
	}
	return "", false
}

// LoginURL is the external login page of the backend.
func (x *UseCase) LoginURL() string {
	return x.clients.API().LoginURL()
}

// Logout ends the backend session. Failures are logged and swallowed.
func (x *UseCase) Logout(ctx context.Context) {
	if err := x.clients.API().Logout(ctx); err != nil {
		logging.From(ctx).Warn("server logout failed", slog.Any("error", err))
	}
}
