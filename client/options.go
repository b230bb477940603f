package client

// Functional options for New. All knobs live here.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithTransport replaces the primary transport. Tests use it to inject
// failures; production code should not need it.
func WithTransport(t Transport) Option {
	return func(c *Client) error {
		if t == nil {
			return fmt.Errorf("transport must not be nil")
		}
		c.transport = t
		return nil
	}
}

// WithMockFallback installs a fallback that answers requests whose primary
// transport failed. A nil t selects a MockTransport stamped by the client's
// clock.
//
// Only development clients should carry a fallback.
func WithMockFallback(t Transport) Option {
	return func(c *Client) error {
		if t == nil {
			t = NewMockTransport(func() time.Time { return c.now() })
		}
		c.fallback = t
		return nil
	}
}

// WithLogger sets the logger used for request diagnostics. The default is
// the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithHTTPTimeout bounds each HTTP request made by the real transport. By
// default there is no timeout; prefer context deadlines where possible.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.real.setTimeout(d)
		return nil
	}
}

// WithDebugLogging dumps each HTTP request and response at debug level when
// enabled is true. Dumps include the Authorization header; do not enable in
// production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled && !c.real.debugging() {
			c.real.wrap(func(base http.RoundTripper) http.RoundTripper {
				return &debugTransport{base: base}
			})
		}
		return nil
	}
}

// WithClock overrides the time source used for mock tokens and timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		if now == nil {
			return fmt.Errorf("clock must not be nil")
		}
		c.now = now
		return nil
	}
}
