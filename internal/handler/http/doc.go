// Package http implements the HTTP transport of the newsletter server.
//
// It wires the chi router, the health check and version endpoints, and the
// middleware for panic recovery, request tracing, access logging and
// request timeouts.
package http
