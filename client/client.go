// Package client is the API access layer of the Helping Hands site: the
// single point of contact between a presentation layer and the backend.
//
// Every operation returns an Envelope; nothing is returned as a Go error or
// panics across the package boundary.
package client

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/tokenstore"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5000/api"

// Client owns the session token and issues requests against one backend.
type Client struct {
	baseURL   string
	real      *RealTransport
	transport Transport
	// fallback answers requests whose transport failed. Only set for
	// development clients.
	fallback Transport
	store    tokenstore.Store
	log      zerolog.Logger
	now      func() time.Time

	mu    sync.Mutex
	token string
}

// New constructs a Client for baseURL, rehydrating the token from store.
// An empty baseURL selects DefaultBaseURL; a nil store keeps the token in
// memory only.
func New(baseURL string, store tokenstore.Store, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if store == nil {
		store = tokenstore.NewMemory()
	}

	rt := NewRealTransport()
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		real:      rt,
		transport: rt,
		store:     store,
		log:       log.Logger,
		now:       time.Now,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.rehydrate()
	return c, nil
}

// NewWithDevMode constructs a Client that answers with canned responses when
// the backend cannot be reached. Use it for frontend development only.
func NewWithDevMode(baseURL string, store tokenstore.Store, opts ...Option) (*Client, error) {
	return New(baseURL, store, append([]Option{WithMockFallback(nil)}, opts...)...)
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// DevMode reports whether a mock fallback is installed.
func (c *Client) DevMode() bool { return c.fallback != nil }

func (c *Client) rehydrate() {
	tok, ok, err := c.store.Load()
	if err != nil {
		c.log.Warn().Err(err).Msg("token rehydration failed")
		return
	}
	if ok && tok != "" {
		c.mu.Lock()
		c.token = tok
		c.mu.Unlock()
		c.log.Debug().Msg("session token rehydrated")
	}
}

// SetToken replaces the session token and mirrors it to the durable store.
// An empty token clears both. Store failures are logged and otherwise
// ignored; the in-memory token is always updated.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token

	var err error
	if token != "" {
		err = c.store.Save(token)
	} else {
		err = c.store.Remove()
	}
	if err != nil {
		c.log.Warn().Err(err).Bool("clear", token == "").Msg("token store update failed")
	}
}

// ClearToken is SetToken("").
func (c *Client) ClearToken() { c.SetToken("") }

// Token returns the held token, if any.
func (c *Client) Token() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token, c.token != ""
}

// IsAuthenticated reports whether a token is held. It does not check the
// token with the backend.
func (c *Client) IsAuthenticated() bool {
	_, ok := c.Token()
	return ok
}
