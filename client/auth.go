package client

import (
	"context"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/api"
)

// LogoutMessage is the message of the envelope returned by Logout.
const LogoutMessage = "Logged out successfully"

// Register creates an account. On success the returned token becomes the
// session token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) Envelope[AuthPayload] {
	if err := req.Validate(); err != nil {
		return invalid[AuthPayload](err)
	}
	env := request[AuthPayload](ctx, c, api.Register(req))
	c.captureToken(env)
	return env
}

// Login authenticates with email and password. On success the returned token
// becomes the session token.
func (c *Client) Login(ctx context.Context, req LoginRequest) Envelope[AuthPayload] {
	if err := req.Validate(); err != nil {
		return invalid[AuthPayload](err)
	}
	env := request[AuthPayload](ctx, c, api.Login(req))
	c.captureToken(env)
	return env
}

func (c *Client) captureToken(env Envelope[AuthPayload]) {
	if env.OK() && env.Data.Token != "" {
		c.SetToken(env.Data.Token)
	}
}

// Logout clears the session token. It does not contact the backend.
func (c *Client) Logout() Envelope[struct{}] {
	c.ClearToken()
	return Envelope[struct{}]{Kind: KindOK, Message: LogoutMessage}
}

// GetCurrentUser returns the user the session token belongs to.
func (c *Client) GetCurrentUser(ctx context.Context) Envelope[User] {
	return request[User](ctx, c, api.CurrentUser())
}

// UpdateProfile changes the caller's profile. Nil fields are not sent.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdate) Envelope[User] {
	return request[User](ctx, c, api.UpdateProfile(req))
}
