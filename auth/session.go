// Package auth keeps the signed-in user alongside the client's session token.
package auth

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client"
)

// API is the part of the client a Session needs. *client.Client satisfies it.
type API interface {
	IsAuthenticated() bool
	ClearToken()
	GetCurrentUser(ctx context.Context) client.Envelope[client.User]
	Login(ctx context.Context, req client.LoginRequest) client.Envelope[client.AuthPayload]
	Register(ctx context.Context, req client.RegisterRequest) client.Envelope[client.AuthPayload]
	Logout() client.Envelope[struct{}]
	UpdateProfile(ctx context.Context, req client.ProfileUpdate) client.Envelope[client.User]
}

// Error is returned when an operation did not succeed. Message is fit for
// display; Err is the classified cause when there is one.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func failure[T any](env client.Envelope[T], fallback string) error {
	msg := env.Message
	if msg == "" {
		msg = fallback
	}
	return &Error{Message: msg, Err: env.Err}
}

// Session tracks who is signed in.
type Session struct {
	api API
	log zerolog.Logger

	mu   sync.RWMutex
	user *client.User
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession returns an unauthenticated session over api. Call Restore to
// pick up a token persisted by an earlier run.
func NewSession(api API, opts ...Option) *Session {
	s := &Session{api: api, log: log.Logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore checks a rehydrated token with the backend. A token the backend
// rejects is cleared. A token that could not be checked because the backend
// was unreachable is kept for the next attempt.
func (s *Session) Restore(ctx context.Context) error {
	if !s.api.IsAuthenticated() {
		s.setUser(nil)
		return nil
	}

	env := s.api.GetCurrentUser(ctx)
	if env.OK() && env.HasData() {
		u := env.Data
		s.setUser(&u)
		return nil
	}

	s.setUser(nil)
	if client.IsTransport(env.Err) {
		s.log.Warn().Err(env.Err).Msg("auth check failed, keeping token")
		return failure(env, "Auth check failed")
	}
	s.log.Info().Str("message", env.Message).Msg("stored token rejected, clearing")
	s.api.ClearToken()
	return failure(env, "Session expired")
}

// Login signs in and caches the returned user.
func (s *Session) Login(ctx context.Context, email, password string) error {
	env := s.api.Login(ctx, client.LoginRequest{Email: email, Password: password})
	if !env.OK() || !env.HasData() {
		return failure(env, "Login failed")
	}
	u := env.Data.User
	s.setUser(&u)
	return nil
}

// Register creates an account, signs in and caches the new user.
func (s *Session) Register(ctx context.Context, req client.RegisterRequest) error {
	env := s.api.Register(ctx, req)
	if !env.OK() || !env.HasData() {
		return failure(env, "Registration failed")
	}
	u := env.Data.User
	s.setUser(&u)
	return nil
}

// Logout forgets the user and clears the token.
func (s *Session) Logout() {
	s.setUser(nil)
	s.api.Logout()
}

// UpdateProfile saves profile changes and reloads the user.
func (s *Session) UpdateProfile(ctx context.Context, req client.ProfileUpdate) error {
	env := s.api.UpdateProfile(ctx, req)
	if !env.OK() {
		return failure(env, "Profile update failed")
	}
	return s.Restore(ctx)
}

// User returns a copy of the signed-in user.
func (s *Session) User() (client.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return client.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// IsAdmin reports whether the signed-in user is an admin.
func (s *Session) IsAdmin() bool {
	u, ok := s.User()
	return ok && u.IsAdmin()
}

func (s *Session) setUser(u *client.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}
