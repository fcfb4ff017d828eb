package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/repository"
)

const passwordMinLength = 8

// SessionLifetime matches the lifetime of tokens the API issues.
const SessionLifetime = 24 * time.Hour

// Status is the authentication state of a visitor.
type Status int

const (
	StatusAnonymous Status = iota
	// StatusPending means a restored session is still being validated.
	StatusPending
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusAuthenticated:
		return "authenticated"
	}
	return "anonymous"
}

//go:generate mockery --name=AuthAPI

type AuthAPI interface {
	Register(ctx context.Context, name, email, password string) (*model.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*model.AuthResponse, error)
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registerForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// SessionState is state kept in memory per session that must go when the session does.
type SessionState interface {
	Forget(sessionID string)
	ForgetBefore(t time.Time) int
}

type checkResult struct {
	session *model.Session
	status  Status
}

type Auth struct {
	api       AuthAPI
	sessions  repository.Sessions
	validator *validator.Validate
	wait      time.Duration
	now       func() time.Time

	group singleflight.Group

	mu        sync.RWMutex
	validated map[string]time.Time
	states    []SessionState
}

// NewAuth builds the session service. wait bounds how long Check blocks on validating a
// restored session before it reports StatusPending.
func NewAuth(api AuthAPI, sessions repository.Sessions, validator *validator.Validate, wait time.Duration) *Auth {
	return &Auth{
		api:       api,
		sessions:  sessions,
		validator: validator,
		wait:      wait,
		now:       time.Now,
		validated: make(map[string]time.Time),
	}
}

// ReleaseWith registers state that is dropped together with the sessions it belongs to.
func (a *Auth) ReleaseWith(states ...SessionState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.states = append(a.states, states...)
}

func (a *Auth) Login(ctx context.Context, email, password string) (*model.Session, error) {
	form := loginForm{Email: strings.TrimSpace(email), Password: password}
	if err := a.validate(form); err != nil {
		return nil, err
	}
	resp, err := a.api.Login(ctx, form.Email, form.Password)
	if err != nil {
		return nil, err
	}
	return a.start(ctx, resp)
}

func (a *Auth) Register(ctx context.Context, name, email, password string) (*model.Session, error) {
	form := registerForm{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Password: password}
	if err := a.validate(form); err != nil {
		return nil, err
	}
	resp, err := a.api.Register(ctx, form.Name, form.Email, form.Password)
	if err != nil {
		return nil, err
	}
	return a.start(ctx, resp)
}

func (a *Auth) start(ctx context.Context, resp *model.AuthResponse) (*model.Session, error) {
	session := &model.Session{
		ID:        uuid.NewString(),
		Token:     resp.Token,
		User:      resp.User,
		CreatedAt: a.now().UTC(),
	}
	if err := a.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("service.Auth, start session error: %w", err)
	}
	a.markValidated(session)
	logrus.Debugf("user %s signed in with session %s", session.User.ID, session.ID)
	return session, nil
}

// Logout forgets the session. Unknown sessions are not an error.
func (a *Auth) Logout(ctx context.Context, sessionID string) error {
	a.mu.Lock()
	delete(a.validated, sessionID)
	a.mu.Unlock()
	if sessionID == "" {
		return nil
	}
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("service.Auth, logout error: %w", err)
	}
	return nil
}

// Check resolves a session id to its session. A session restored from the store is
// validated against the API once per process; invalid ones are discarded.
func (a *Auth) Check(ctx context.Context, sessionID string) (*model.Session, Status, error) {
	if sessionID == "" {
		return nil, StatusAnonymous, nil
	}
	session, err := a.sessions.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, StatusAnonymous, nil
	}
	if err != nil {
		return nil, StatusAnonymous, fmt.Errorf("service.Auth, check error: %w", err)
	}
	if a.isValidated(sessionID) {
		return session, StatusAuthenticated, nil
	}

	// validation outlives the request that started it so a pending visitor can poll
	validateCtx := context.WithoutCancel(ctx)
	ch := a.group.DoChan(sessionID, func() (any, error) {
		return a.revalidate(validateCtx, session), nil
	})

	timer := time.NewTimer(a.wait)
	defer timer.Stop()
	select {
	case res := <-ch:
		r := res.Val.(checkResult)
		return r.session, r.status, nil
	case <-timer.C:
		return session, StatusPending, nil
	case <-ctx.Done():
		return nil, StatusAnonymous, ctx.Err()
	}
}

func (a *Auth) revalidate(ctx context.Context, session *model.Session) checkResult {
	if tokenExpired(session.Token, a.now()) {
		logrus.Debugf("session %s holds an expired token", session.ID)
		a.discard(ctx, session.ID)
		return checkResult{status: StatusAnonymous}
	}

	user, err := a.api.CurrentUser(ctx, session.Token)
	if err != nil {
		logrus.Infof("session %s failed validation: %v", session.ID, err)
		a.discard(ctx, session.ID)
		return checkResult{status: StatusAnonymous}
	}

	refreshed := *session
	refreshed.User = *user
	if err = a.sessions.Create(ctx, &refreshed); err != nil {
		logrus.Errorf("service.Auth couldn't store refreshed session %s: %v", session.ID, err)
	}
	a.markValidated(&refreshed)
	return checkResult{session: &refreshed, status: StatusAuthenticated}
}

// ExpireSessions deletes sessions whose token can no longer be valid, along with
// everything held in memory for them.
func (a *Auth) ExpireSessions(ctx context.Context) (int, error) {
	cutoff := a.now().UTC().Add(-SessionLifetime)
	n, err := a.sessions.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("service.Auth, expire sessions error: %w", err)
	}

	a.mu.Lock()
	for id, created := range a.validated {
		if created.Before(cutoff) {
			delete(a.validated, id)
		}
	}
	states := a.states
	a.mu.Unlock()

	for _, s := range states {
		s.ForgetBefore(cutoff)
	}
	return n, nil
}

func (a *Auth) discard(ctx context.Context, sessionID string) {
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		logrus.Errorf("service.Auth couldn't delete session %s: %v", sessionID, err)
	}

	a.mu.Lock()
	delete(a.validated, sessionID)
	states := a.states
	a.mu.Unlock()

	for _, s := range states {
		s.Forget(sessionID)
	}
}

func (a *Auth) markValidated(session *model.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.validated[session.ID] = session.CreatedAt
}

func (a *Auth) isValidated(sessionID string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.validated[sessionID]
	return ok
}

func (a *Auth) validate(form any) error {
	err := a.validator.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("service.Auth, validate form error: %w", err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return &FormError{Field: fe.Field(), Message: fmt.Sprintf("%s is required", fe.Field())}
	case "email":
		return &FormError{Field: fe.Field(), Message: "Please enter a valid email address"}
	case "min":
		return &FormError{Field: fe.Field(), Message: fmt.Sprintf("Password must be at least %d characters long", passwordMinLength)}
	}
	return &FormError{Field: fe.Field(), Message: fmt.Sprintf("%s is invalid", fe.Field())}
}

// tokenExpired reads the exp claim without verifying the signature; the API stays the
// authority on validity. Tokens that are not JWTs are never considered expired here.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !claims.ExpiresAt.After(now)
}
