// Package server builds the newsletter server on top of a listener that was
// bound beforehand.
//
// A Constructor multiplexes the listener with cmux: connections that speak
// HTTP/2 with a gRPC content type go to the gRPC server, everything else to
// the HTTP router. The resulting task serves both until it is shut down and
// reports abnormal stops as *bootstrap.ServeError.
package server
