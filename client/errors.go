package client

import (
	"errors"

	clienterrors "github.com/Ridwanullahi-super/chimbo-helping-hands/client/internal/errors"
)

// Error categories carried by a failed Envelope's Err. Compare with
// errors.Is:
//
//	if errors.Is(env.Err, client.ErrTransport) { ... }
var (
	ErrValidation = clienterrors.ErrValidation
	ErrServer     = clienterrors.ErrServer
	ErrTransport  = clienterrors.ErrTransport
	ErrDecode     = clienterrors.ErrDecode
)

// ClassifiedError is the concrete type behind a failed Envelope's Err.
type ClassifiedError = clienterrors.ClassifiedError

// NetworkErrorMessage is the message used when a transport failure has no
// description of its own.
const NetworkErrorMessage = clienterrors.NetworkErrorMessage

// StatusCode returns the HTTP status behind err, or 0 when err did not come
// from an HTTP response.
func StatusCode(err error) int {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.StatusCode
	}
	return 0
}

// IsValidation reports whether err rejected input before any request.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsServer reports whether err came from a backend failure response.
func IsServer(err error) bool { return errors.Is(err, ErrServer) }

// IsTransport reports whether err means no response was received.
func IsTransport(err error) bool { return errors.Is(err, ErrTransport) }
