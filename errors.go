package routeros

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned by RunCommand when called before a
// successful Connect.
var ErrNotConnected = errors.New("routeros: not connected")

// ErrConnectionClosed resolves an in-flight command when the peer ends
// the connection (a clean TCP/TLS close, not one initiated locally).
var ErrConnectionClosed = errors.New("Connection closed")

// ErrConnectionEnded resolves an in-flight command when the connection
// was ended locally, e.g. by a concurrent call to Close.
var ErrConnectionEnded = errors.New("Connection ended")

// ConnectError wraps a failure to establish the transport.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("Failed to connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// TrapError is returned when the router replies with "!trap" to a
// command — a soft, command-scoped failure such as a bad parameter.
type TrapError struct {
	Message string
}

func (e *TrapError) Error() string { return e.Message }

// FatalError is returned when the router replies with "!fatal" — an
// unrecoverable condition on the connection itself.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string { return e.Message }

// TransportError wraps a socket-level failure that occurred mid-command,
// distinct from a clean close or a local end.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// LoginError wraps any failure raised by the login orchestrator,
// whichever of the above kinds caused it.
type LoginError struct {
	Err error
}

func (e *LoginError) Error() string {
	return "Login failed: " + e.Err.Error()
}

func (e *LoginError) Unwrap() error { return e.Err }

// CloseError wraps a failure while tearing down the transport itself.
type CloseError struct {
	Err error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("failed to close connection: %v", e.Err)
}

func (e *CloseError) Unwrap() error { return e.Err }
