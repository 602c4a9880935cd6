package api

import (
	"errors"
	"fmt"
)

// ServerRejected is returned when the server answers with a non-2xx status.
type ServerRejected struct {
	StatusCode int
	// Reason is the server provided `error` field, or the best available substitute.
	Reason string
}

func (e *ServerRejected) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Reason)
}

// TransportFailure is returned when the request could not complete at all.
type TransportFailure struct {
	Op  string
	Err error
}

func (e *TransportFailure) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportFailure) Unwrap() error {
	return e.Err
}

// AsServerRejected reports whether err wraps a *ServerRejected.
func AsServerRejected(err error) (*ServerRejected, bool) {
	var rejected *ServerRejected
	if errors.As(err, &rejected) {
		return rejected, true
	}
	return nil, false
}

// IsTransportFailure reports whether err wraps a *TransportFailure.
func IsTransportFailure(err error) bool {
	var failure *TransportFailure
	return errors.As(err, &failure)
}
