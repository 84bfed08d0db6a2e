// Package bootstrap turns a bind request into a running, awaitable server.
//
// Startup is split into three ordered steps:
//  1. AcquireListener binds a TCP socket. Port 0 lets the operating system
//     pick a free port, which is readable from the returned [Listener]
//     before anything starts serving.
//  2. ActivateServer hands the bound socket to a [ServerConstructor] and
//     receives a [Task]. Ownership of the socket moves to the task.
//  3. Run blocks until the task stops serving.
//
// A [Bootstrap] is single-use and tracks its progress as a [State]. Any
// failure ends the run; nothing is retried.
package bootstrap
