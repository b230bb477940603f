package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/api"
	clienterrors "github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/errors"
)

// Metric outcome labels.
const (
	outcomeOK           = "ok"
	outcomeFailed       = "failed"
	outcomeUnstructured = "unstructured"
	outcomeMock         = "mock"
)

// newRequest builds the descriptor for call. The Authorization header is
// captured here, so a token change after dispatch does not affect the call.
func (c *Client) newRequest(call api.Call) (*Request, error) {
	req := &Request{
		Method: call.Method,
		Path:   call.Path,
		URL:    c.baseURL + call.Path,
		Header: http.Header{},
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok, ok := c.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if call.Body != nil {
		b, err := json.Marshal(call.Body)
		if err != nil {
			return nil, err
		}
		req.Body = b
	}
	return req, nil
}

// request dispatches call and normalizes every outcome into an Envelope.
func request[T any](ctx context.Context, c *Client, call api.Call) Envelope[T] {
	req, err := c.newRequest(call)
	if err != nil {
		requestsTotal.WithLabelValues(call.Method, outcomeFailed).Inc()
		return failed[T](clienterrors.NewValidationError("body", "could not be encoded: "+err.Error()), nil)
	}

	logger := c.log.With().
		Str("method", req.Method).
		Str("path", req.Path).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Logger()

	resp, err := c.transport.RoundTrip(ctx, req)
	outcomeOverride := ""
	if err != nil {
		logger.Error().Err(err).Msg("api request error")
		// A cancelled caller gets its cancellation, not canned data.
		if c.fallback == nil || ctx.Err() != nil {
			requestsTotal.WithLabelValues(req.Method, outcomeFailed).Inc()
			return failed[T](clienterrors.NewNetworkError(req.Method+" "+req.Path, err), nil)
		}
		resp, err = c.fallback.RoundTrip(ctx, req)
		if err != nil {
			requestsTotal.WithLabelValues(req.Method, outcomeFailed).Inc()
			return failed[T](clienterrors.NewNetworkError(req.Method+" "+req.Path, err), nil)
		}
		logger.Warn().Msg("backend unreachable, serving mock response")
		outcomeOverride = outcomeMock
	}

	env := decode[T](resp)
	outcome := outcomeOverride
	if outcome == "" {
		switch env.Kind {
		case KindOK:
			outcome = outcomeOK
		case KindUnstructured:
			outcome = outcomeUnstructured
		default:
			outcome = outcomeFailed
		}
	}
	requestsTotal.WithLabelValues(req.Method, outcome).Inc()

	switch env.Kind {
	case KindFailed:
		ev := logger.Error().Err(env.Err).Int("status", resp.StatusCode)
		if cat, ok := clienterrors.CategoryOf(env.Err); ok {
			ev = ev.Str("category", cat.String())
		}
		ev.Msg("api request error")
	case KindUnstructured:
		logger.Warn().Int("status", resp.StatusCode).Msg("response carried no success flag")
	}
	return env
}

// decode maps a raw response to an Envelope.
func decode[T any](resp *Response) Envelope[T] {
	body := resp.Body
	structured := len(body) > 0 && strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299

	var w wireEnvelope
	if structured {
		if err := json.Unmarshal(body, &w); err != nil {
			if !ok {
				// An error status wins over an unreadable body.
				return failed[T](clienterrors.NewHTTPError(resp.StatusCode, string(body), ""), nil)
			}
			return failed[T](clienterrors.NewDecodeError(resp.StatusCode, string(body), err), nil)
		}
	} else {
		w.Message = string(body)
	}

	if !ok {
		return failed[T](clienterrors.NewHTTPError(resp.StatusCode, string(body), w.Message), w.Errors)
	}

	var data T
	hasData := len(w.Data) > 0 && string(w.Data) != "null"
	if hasData {
		if err := json.Unmarshal(w.Data, &data); err != nil {
			// The mock placeholder carries {} for every unmatched route.
			// Keep the success and leave Data at its zero value.
			if !resp.Mock {
				return failed[T](clienterrors.NewDecodeError(resp.StatusCode, string(body), err), w.Errors)
			}
			data = *new(T)
		}
	}

	switch {
	case w.Success == nil:
		return Envelope[T]{Kind: KindUnstructured, Message: w.Message, Data: data, Errors: w.Errors, hasData: hasData}
	case !*w.Success:
		msg := w.Message
		if msg == "" {
			msg = "Request failed"
		}
		cerr := clienterrors.NewHTTPError(resp.StatusCode, string(body), msg)
		return failed[T](cerr, w.Errors)
	default:
		env := okEnvelope(w.Message, data, hasData)
		env.Errors = w.Errors
		return env
	}
}
