// Package errors classifies failures of the API access layer so the envelope
// can carry a machine-checkable reason next to the human message.
package errors

import "fmt"

// Category identifies where in the request lifecycle a failure originated.
type Category int

const (
	// Validation errors are raised before any request is made.
	Validation Category = iota

	// Server errors are non-2xx responses from the backend.
	Server

	// Transport errors mean no response was received at all.
	Transport

	// Decode errors mean a response arrived but its payload could not be read.
	Decode
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Validation:
		return "Validation"
	case Server:
		return "Server"
	case Transport:
		return "Transport"
	case Decode:
		return "Decode"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps an error with categorization metadata.
type ClassifiedError struct {
	Category   Category
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Body       string // Response body for debugging
	Message    string // Message suitable for display
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// Is lets errors.Is match a ClassifiedError against a category sentinel.
func (e *ClassifiedError) Is(target error) bool {
	s, ok := target.(sentinel)
	return ok && Category(s) == e.Category
}

// CategoryOf returns the category of err and whether err was classified.
func CategoryOf(err error) (Category, bool) {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category, true
	}
	return 0, false
}

// sentinel is a comparable marker for errors.Is checks by category.
type sentinel Category

func (s sentinel) Error() string { return Category(s).String() + " error" }

// Sentinels matched by errors.Is against any ClassifiedError of that category.
var (
	ErrValidation error = sentinel(Validation)
	ErrServer     error = sentinel(Server)
	ErrTransport  error = sentinel(Transport)
	ErrDecode     error = sentinel(Decode)
)
