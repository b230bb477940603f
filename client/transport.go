package client

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/mock"
)

// Request describes one outbound call. Header is fully merged before the
// request reaches a Transport, including Authorization when a token is held.
type Request struct {
	Method string
	Path   string // path relative to the base URL, including any query
	URL    string // base URL + Path
	Header http.Header
	Body   []byte
}

// Response is the raw result of a Transport.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// Mock marks a canned development response. Its data may not match
	// the shape the operation expects.
	Mock bool
}

// Transport issues a Request. An error means no response was received.
type Transport interface {
	RoundTrip(ctx context.Context, req *Request) (*Response, error)
}

// RealTransport sends requests over HTTP.
type RealTransport struct {
	rc *resty.Client
}

// NewRealTransport returns an HTTP transport with no timeout and no retries.
func NewRealTransport() *RealTransport {
	return &RealTransport{rc: resty.New()}
}

// RoundTrip implements Transport.
func (t *RealTransport) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	r := t.rc.R().
		SetContext(ctx).
		SetHeaderMultiValues(req.Header)
	if req.Body != nil {
		r.SetBody(req.Body)
	}
	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

func (t *RealTransport) setTimeout(d time.Duration) { t.rc.SetTimeout(d) }

func (t *RealTransport) wrap(fn func(http.RoundTripper) http.RoundTripper) {
	base := t.rc.GetClient().Transport
	if base == nil {
		base = http.DefaultTransport
	}
	t.rc.SetTransport(fn(base))
}

func (t *RealTransport) debugging() bool {
	_, ok := t.rc.GetClient().Transport.(*debugTransport)
	return ok
}

// MockTransport answers every request with a canned development response.
// It never fails.
type MockTransport struct {
	now func() time.Time
}

// NewMockTransport returns a mock transport. now stamps generated tokens and
// timestamps; nil means time.Now.
func NewMockTransport(now func() time.Time) *MockTransport {
	if now == nil {
		now = time.Now
	}
	return &MockTransport{now: now}
}

// RoundTrip implements Transport.
func (m *MockTransport) RoundTrip(_ context.Context, req *Request) (*Response, error) {
	pattern, body := mock.Respond(req.Path, req.Method, m.now())
	mockResponsesTotal.WithLabelValues(pattern).Inc()
	return &Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       body,
		Mock:       true,
	}, nil
}
