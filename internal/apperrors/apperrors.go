// Package apperrors defines the domain error taxonomy and the wire envelope
// every endpoint answers with. Handlers translate faults here exactly once;
// nothing propagates to the transport layer as an unhandled error.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a login email is not registered.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("incorrect credentials")
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrTaskNotFound covers both a missing task id and a task owned by a
	// different user; callers must not be able to tell the two apart.
	ErrTaskNotFound = errors.New("task not found")
	// ErrStatusNotFound is returned when a task references a status id that
	// does not exist.
	ErrStatusNotFound = errors.New("status not found")
)

// Envelope is the response body shape shared by every endpoint.
// MessageDetail is a string for single-cause failures and an ordered
// []string for validation failures.
type Envelope struct {
	Error         bool        `json:"error"`
	Message       string      `json:"message,omitempty"`
	MessageDetail interface{} `json:"message_detail,omitempty"`
}

// HTTPError pairs a status code with the envelope it should produce.
type HTTPError struct {
	StatusCode int
	Message    string
	Detail     interface{}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTP error with status, message and detail.
func NewHTTPError(statusCode int, message string, detail interface{}) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Detail:     detail,
	}
}

// Envelope converts the error into a wire envelope.
func (e *HTTPError) Envelope() Envelope {
	return Envelope{
		Error:         true,
		Message:       e.Message,
		MessageDetail: e.Detail,
	}
}

// MapToHTTP translates a domain error to its HTTP form. Unknown errors
// become 500s that carry the underlying diagnostic text, never a bare
// "something went wrong".
func MapToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "the given email is not registered")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "the given credentials are incorrect")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, "validation failed", []string{"the email has already been taken"})
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "the requested task could not be found")
	case errors.Is(err, ErrStatusNotFound):
		return NewHTTPError(http.StatusBadRequest, "validation failed", []string{"the selected status id is invalid"})
	default:
		return NewHTTPError(http.StatusInternalServerError, "unexpected error", err.Error())
	}
}
