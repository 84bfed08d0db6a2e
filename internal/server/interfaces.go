package server

import "context"

// Server defines the lifecycle contract of one protocol server sharing the
// multiplexed listener.
type Server interface {
	// Serve accepts connections routed to this server and blocks until it
	// stops.
	Serve() error

	// Shutdown stops accepting connections and waits for in-flight ones to
	// finish, or for ctx to expire.
	Shutdown(ctx context.Context) error

	// Close stops the server immediately, dropping open connections.
	Close() error
}
