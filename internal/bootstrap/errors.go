// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfOrder is returned when a step is invoked from a state that does
	// not allow it, e.g. Run before ActivateServer or a second AcquireListener
	// on the same Bootstrap.
	ErrOutOfOrder = errors.New("bootstrap step invoked out of order")

	// ErrListenerTransferred is returned when a Listener whose socket was
	// already handed to a server is taken or closed again.
	ErrListenerTransferred = errors.New("listener is already transferred")

	// ErrNilTask is the cause of an ActivationError when a constructor
	// reports success but returns no task.
	ErrNilTask = errors.New("server constructor returned nil task")

	// ErrNilListener is returned when a nil Listener is passed to ActivateServer.
	ErrNilListener = errors.New("listener is nil")
)

// BindError reports that the requested address could not be reserved:
// the address is malformed, the port is out of range, already in use or
// the process lacks permission to bind it.
type BindError struct {
	Address string
	Err     error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %q: %v", e.Address, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// ActivationError reports that the server constructor rejected the listener.
type ActivationError struct {
	Err error
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("server activation failed: %v", e.Err)
}

func (e *ActivationError) Unwrap() error {
	return e.Err
}

// ServeError reports that a task stopped abnormally after it had started
// serving. Tasks return it from Serve; Run passes it through untouched.
type ServeError struct {
	Err error
}

func (e *ServeError) Error() string {
	return fmt.Sprintf("server stopped serving: %v", e.Err)
}

func (e *ServeError) Unwrap() error {
	return e.Err
}
