package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

type ConnectivityKind int

const (
	// Refused: nothing is listening at the address.
	Refused ConnectivityKind = iota
	// Timeout: the bounded client timeout elapsed.
	Timeout
	// NoResponse: any other transport failure (DNS, reset, TLS, ...).
	NoResponse
)

func (k ConnectivityKind) String() string {
	switch k {
	case Refused:
		return "refused"
	case Timeout:
		return "timeout"
	}
	return "no_response"
}

// ConnectivityError means the request never produced an HTTP response.
// It is safe to retry by hand.
type ConnectivityError struct {
	Kind ConnectivityKind
	URL  string
	Err  error
}

func (e *ConnectivityError) Error() string {
	switch e.Kind {
	case Refused:
		return fmt.Sprintf("cannot connect to server at %s: please ensure backend is running", e.URL)
	case Timeout:
		return fmt.Sprintf("cannot reach server at %s: request timed out", e.URL)
	}
	return fmt.Sprintf("network error: cannot reach server at %s", e.URL)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer. Message is the server's own text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

func classify(url string, err error) error {
	kind := NoResponse
	var ne net.Error
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		kind = Refused
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &ne) && ne.Timeout():
		kind = Timeout
	}
	return &ConnectivityError{Kind: kind, URL: url, Err: err}
}

func IsConnectivity(err error) bool {
	var ce *ConnectivityError
	return errors.As(err, &ce)
}
