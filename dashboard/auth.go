package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/hopenndrive/admin/core"
	"github.com/hopenndrive/admin/core/user"
)

var (
	errNoSession = errors.New("no active session")

	invalidEmailText = "invalid email address"
	weakPasswordText = "password does not meet the security requirements"
	pwdMismatchText  = "passwords do not match"
)

// AuthController is the application's auth boundary: it validates credentials
// client-side before touching the service, holds the current session and
// exposes the session observable.
type AuthController struct {
	svc    *user.Service
	broker *user.Broker

	mu      sync.RWMutex
	session *user.Session
}

func NewAuthController(svc *user.Service) *AuthController {
	return &AuthController{
		svc:    svc,
		broker: user.NewBroker(),
	}
}

// SessionChanges subscribes to login/logout events. The caller holds the
// subscription for its lifetime and must invoke the release func on shutdown.
func (a *AuthController) SessionChanges() (<-chan user.SessionEvent, func()) {
	return a.broker.Subscribe()
}

func (a *AuthController) CurrentSession() *user.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return nil
	}
	sess := *a.session
	return &sess
}

func (a *AuthController) IsAuthenticated() bool {
	return a.CurrentSession() != nil
}

// SignUp registers a new account. The email shape, the five-condition password
// policy and the confirmation match are all enforced here, before submission.
func (a *AuthController) SignUp(ctx context.Context, email, password, passwordConfirm string) (user.User, error) {
	email = core.CleanString(email, true /* lower */)
	if !user.IsValidEmail(email) {
		return user.User{}, core.NewValidationError(nil, core.FieldError{Field: "email", Error: invalidEmailText})
	}
	if !user.CheckPasswordStrength(password).OK() {
		return user.User{}, core.NewValidationError(nil, core.FieldError{Field: "password", Error: weakPasswordText})
	}
	if password != passwordConfirm {
		return user.User{}, core.NewValidationError(nil, core.FieldError{Field: "password_confirm", Error: pwdMismatchText})
	}

	nu := user.NewUser{Email: email, Password: password, PasswordConfirm: passwordConfirm}
	if err := nu.Validate(a.svc); err != nil {
		return user.User{}, err
	}
	return a.svc.Create(ctx, nu)
}

// SignIn authenticates and starts a session.
func (a *AuthController) SignIn(ctx context.Context, email, password string) (user.User, error) {
	usr, err := a.svc.Authenticate(ctx, email, password)
	if err != nil {
		return user.User{}, err
	}

	sess := &user.Session{User: usr, IssuedAt: time.Now().UTC()}
	a.mu.Lock()
	a.session = sess
	a.mu.Unlock()

	a.broker.Publish(user.SessionEvent{Type: user.SessionStarted, Session: sess})
	return usr, nil
}

// SignOut ends the current session. Signing out without a session is a no-op.
func (a *AuthController) SignOut() {
	a.mu.Lock()
	had := a.session != nil
	a.session = nil
	a.mu.Unlock()

	if had {
		a.broker.Publish(user.SessionEvent{Type: user.SessionEnded})
	}
}

// RequestPasswordReset asks the service to email a reset link. An unknown
// account is not revealed to the caller.
func (a *AuthController) RequestPasswordReset(ctx context.Context, email string) error {
	email = core.CleanString(email, true /* lower */)
	if !user.IsValidEmail(email) {
		return core.NewValidationError(nil, core.FieldError{Field: "email", Error: invalidEmailText})
	}
	if err := a.svc.RequestPasswordReset(ctx, email); err != nil && errors.Cause(err) != user.ErrNotFound {
		return err
	}
	return nil
}

// SetNewPassword replaces the signed-in user's password.
func (a *AuthController) SetNewPassword(ctx context.Context, newPassword string) error {
	sess := a.CurrentSession()
	if sess == nil {
		return errNoSession
	}
	if !user.CheckPasswordStrength(newPassword).OK() {
		return core.NewValidationError(nil, core.FieldError{Field: "password", Error: weakPasswordText})
	}

	usr, err := a.svc.SetNewPassword(ctx, sess.User, newPassword)
	if err != nil {
		return err
	}

	a.mu.Lock()
	if a.session != nil {
		a.session.User = usr
	}
	a.mu.Unlock()
	return nil
}
