// Package grpc implements the gRPC transport of the newsletter server: the
// standard health service, server reflection, and the recovery and logging
// interceptors.
package grpc
