package client

import (
	"encoding/json"
	"errors"
	"fmt"

	clienterrors "github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/errors"
)

// Kind tags which variant an Envelope holds.
type Kind int

const (
	// KindFailed: success is false. Message is always set and Err carries the
	// classified cause.
	KindFailed Kind = iota
	// KindOK: success is true and Data holds the decoded payload.
	KindOK
	// KindUnstructured: a 2xx response that carried no success flag, either a
	// non-JSON body or a JSON object without "success". Message holds the raw
	// text or the server message. Not treated as success.
	KindUnstructured
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindFailed:
		return "failed"
	case KindOK:
		return "ok"
	case KindUnstructured:
		return "unstructured"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Envelope is the uniform result of every API operation.
type Envelope[T any] struct {
	Kind    Kind
	Message string
	Data    T
	Errors  []json.RawMessage
	// Err is the classified cause for KindFailed; nil otherwise.
	Err error

	hasData bool
}

// OK reports whether the envelope is the success variant.
func (e Envelope[T]) OK() bool { return e.Kind == KindOK }

// HasData reports whether the response carried a data payload.
func (e Envelope[T]) HasData() bool { return e.hasData }

// Unwrap returns the payload, or an error describing why there is none.
func (e Envelope[T]) Unwrap() (T, error) {
	switch e.Kind {
	case KindOK:
		return e.Data, nil
	case KindUnstructured:
		var zero T
		return zero, fmt.Errorf("unstructured response: %s", e.Message)
	default:
		var zero T
		if e.Err != nil {
			return zero, e.Err
		}
		return zero, errors.New(e.Message)
	}
}

// wireEnvelope is the backend's JSON shape.
type wireEnvelope struct {
	Success *bool             `json:"success,omitempty"`
	Message string            `json:"message,omitempty"`
	Data    json.RawMessage   `json:"data,omitempty"`
	Errors  []json.RawMessage `json:"errors,omitempty"`
}

// MarshalJSON renders the envelope in the backend's wire shape. The
// unstructured variant is rendered without a success key.
func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	w := wireEnvelope{Message: e.Message, Errors: e.Errors}
	switch e.Kind {
	case KindOK:
		ok := true
		w.Success = &ok
		if e.hasData {
			data, err := json.Marshal(e.Data)
			if err != nil {
				return nil, err
			}
			w.Data = data
		}
	case KindFailed:
		ok := false
		w.Success = &ok
	}
	return json.Marshal(w)
}

func okEnvelope[T any](msg string, data T, hasData bool) Envelope[T] {
	return Envelope[T]{Kind: KindOK, Message: msg, Data: data, hasData: hasData}
}

// failed builds the failure variant from a classified error.
func failed[T any](err *clienterrors.ClassifiedError, errs []json.RawMessage) Envelope[T] {
	return Envelope[T]{Kind: KindFailed, Message: err.Message, Err: err, Errors: errs}
}

// invalid builds the failure variant for input rejected before dispatch.
func invalid[T any](err error) Envelope[T] {
	var ce *clienterrors.ClassifiedError
	if errors.As(err, &ce) {
		return failed[T](ce, nil)
	}
	return Envelope[T]{Kind: KindFailed, Message: err.Error(), Err: err}
}
