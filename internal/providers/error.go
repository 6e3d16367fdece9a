package providers

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a provider failure.
type ErrorKind int

const (
	// InvalidInput means the request identity (e.g. wallet address) was
	// rejected locally, before any network call.
	InvalidInput ErrorKind = iota
	// TransportError means the HTTP call did not complete or returned a
	// non-success status.
	TransportError
	// MalformedResponse means the payload could not be parsed as the
	// expected schema.
	MalformedResponse
	// RemoteError means the payload parsed fine but its status field
	// signals a remote-side failure.
	RemoteError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case TransportError:
		return "transport error"
	case MalformedResponse:
		return "malformed response"
	case RemoteError:
		return "remote error"
	default:
		return "unknown"
	}
}

// ErrUnsupportedKey is returned by provider factories when no client is
// registered for the given pool, exchanger or coin.
var ErrUnsupportedKey = errors.New("unsupported provider key")

// Error is the failure type returned by every provider client. Detail
// carries the remote message verbatim for RemoteError and the underlying
// transport/parse message otherwise.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a provider error with a verbatim detail string.
func NewError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// WrapError builds a provider error around an underlying cause.
func WrapError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Detail: err.Error(), Err: err}
}

// KindOf reports the kind of err if it is (or wraps) a provider Error.
func KindOf(err error) (ErrorKind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
