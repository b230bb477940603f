package errors

import (
	"errors"
	"fmt"
)

// NetworkErrorMessage is shown when a transport failure carries no text.
const NetworkErrorMessage = "Network error occurred"

// NewHTTPError creates a classified error for a non-2xx response. The display
// message is the server-supplied one when present, otherwise a generic status
// line.
func NewHTTPError(statusCode int, body, serverMessage string) *ClassifiedError {
	msg := serverMessage
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", statusCode)
	}
	return &ClassifiedError{
		Category:   Server,
		StatusCode: statusCode,
		Body:       body,
		Message:    msg,
		Underlying: errors.New(msg),
	}
}

// NewNetworkError creates a classified error for a failure where no response
// was received.
func NewNetworkError(operation string, err error) *ClassifiedError {
	msg := NetworkErrorMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &ClassifiedError{
		Category:   Transport,
		Message:    msg,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

// NewValidationError creates a classified error for input rejected before
// any request is made.
func NewValidationError(field, reason string) *ClassifiedError {
	msg := fmt.Sprintf("%s %s", field, reason)
	return &ClassifiedError{
		Category:   Validation,
		Message:    msg,
		Underlying: errors.New(msg),
	}
}

// NewDecodeError creates a classified error for a payload that could not be
// decoded into the expected shape.
func NewDecodeError(statusCode int, body string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Decode,
		StatusCode: statusCode,
		Body:       body,
		Message:    "Unexpected response from server",
		Underlying: fmt.Errorf("decode response: %w", err),
	}
}
