package client

import (
	"errors"
	"fmt"
	"net/http"

	metav1 "github.com/dtomasi/kclient/apis/meta/v1"
)

// ErrNoPathSupport is returned when the configured server URL uses an
// opaque, non-hierarchical scheme and resource paths cannot be appended.
var ErrNoPathSupport = errors.New("URL scheme does not support paths")

// RequiredAttributeError reports an operation submitted with a required
// identity attribute missing, e.g. an update on an object with no name.
// It fails before any network I/O is performed.
type RequiredAttributeError struct {
	// Attr is the name of the missing attribute.
	Attr string
}

// Error implements the error interface.
func (e *RequiredAttributeError) Error() string {
	return fmt.Sprintf("attribute %s required but not provided", e.Attr)
}

// HTTPStatusError reports a non-2xx response whose body could not be decoded
// as a Status. Only the numeric status survives.
type HTTPStatusError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
}

// Error implements the error interface.
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP response status: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// StatusError carries the structured Status payload the server returned with
// a non-2xx response. It is the primary application-level error channel.
type StatusError struct {
	// Status is the decoded failure payload.
	Status *metav1.Status
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Status.Message != "" {
		return e.Status.Message
	}
	return fmt.Sprintf("server returned status %q (reason %q, code %d)", e.Status.Status, e.Status.Reason, e.Status.Code)
}

// Stages reported by DecodeError.
const (
	StageResponseBody = "response body"
	StageWatchLine    = "watch line"
)

// DecodeError reports a body or watch frame that could not be decoded into
// the expected type. Stage records which decode surface failed.
type DecodeError struct {
	// Stage is "response body" or "watch line".
	Stage string
	// Err is the underlying decode failure.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to parse %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error { return e.Err }
