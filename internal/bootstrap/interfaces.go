package bootstrap

import (
	"context"
	"net"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bootstrap_mock.go -package=mock

// Task is a long-running server bound to a listener it exclusively owns.
type Task interface {
	// Serve blocks until the server stops. It returns nil after a graceful
	// Shutdown and a non-nil error (usually *ServeError) otherwise.
	Serve() error

	// Shutdown asks the server to stop accepting connections and drain the
	// in-flight ones. Serve returns once the server has stopped.
	Shutdown(ctx context.Context) error
}

// ServerConstructor builds a Task on top of an already bound listener.
//
// Implementations take ownership of ln and must not bind another socket or
// re-resolve the listener's address.
type ServerConstructor interface {
	Activate(ln net.Listener) (Task, error)
}

// ConstructorFunc adapts an ordinary function to the ServerConstructor interface.
type ConstructorFunc func(ln net.Listener) (Task, error)

// Activate calls f(ln).
func (f ConstructorFunc) Activate(ln net.Listener) (Task, error) {
	return f(ln)
}
