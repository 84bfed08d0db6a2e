// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/logger"
)

// DefaultShutdownTimeout bounds graceful shutdown when none is configured.
const DefaultShutdownTimeout = 10 * time.Second

// Bootstrap runs the startup sequence for exactly one listener and one task.
// It is not reusable: once a step has been taken it cannot be repeated.
type Bootstrap struct {
	constructor     ServerConstructor
	shutdownTimeout time.Duration
	logger          *logger.Logger

	mu         sync.Mutex
	state      State
	listener   *Listener
	activating bool
	running    bool
}

// New creates a Bootstrap that will hand its listener to constructor.
// A non-positive shutdownTimeout falls back to DefaultShutdownTimeout.
func New(constructor ServerConstructor, shutdownTimeout time.Duration, logger *logger.Logger) *Bootstrap {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	return &Bootstrap{
		constructor:     constructor,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		state:           StateNotBound,
	}
}

// State returns the current state of the run.
func (b *Bootstrap) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Addr returns the bound address, or an empty string before
// AcquireListener succeeded.
func (b *Bootstrap) Addr() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listener == nil {
		return ""
	}
	return b.listener.String()
}

// Start binds bindAddress, activates the server on the bound listener and
// runs it until it stops or ctx is cancelled. The first failing step ends
// the run and its error is returned.
func (b *Bootstrap) Start(ctx context.Context, bindAddress string) error {
	ln, err := b.AcquireListener(bindAddress)
	if err != nil {
		return err
	}

	task, err := b.ActivateServer(ln)
	if err != nil {
		return err
	}

	return b.Run(ctx, task)
}

// AcquireListener binds bindAddress and moves the run to StateBound.
// On failure the run ends in StateFailed with a *BindError.
func (b *Bootstrap) AcquireListener(bindAddress string) (*Listener, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateNotBound {
		return nil, ErrOutOfOrder
	}

	ln, err := AcquireListener(bindAddress)
	if err != nil {
		b.transition(StateFailed)
		b.logger.Error().Err(err).Str("address", bindAddress).Msg("failed to bind listener")
		return nil, err
	}

	b.listener = ln
	b.transition(StateBound)
	b.logger.Info().
		Str("requested", bindAddress).
		Str("address", ln.String()).
		Int("port", ln.Port()).
		Msg("listener bound")

	return ln, nil
}

// ActivateServer transfers ln to the server constructor and moves the run
// to StateServing. ln must be the listener returned by AcquireListener.
//
// The constructor runs without the Bootstrap lock held, so it may call Addr
// and State. A concurrent ActivateServer gets ErrOutOfOrder.
//
// If the constructor fails the listener is closed, the run ends in
// StateFailed and an *ActivationError is returned.
func (b *Bootstrap) ActivateServer(ln *Listener) (Task, error) {
	raw, err := b.beginActivation(ln)
	if err != nil {
		return nil, err
	}

	task, err := b.constructor.Activate(raw)
	if err == nil && task == nil {
		err = ErrNilTask
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.activating = false

	if err != nil {
		// the constructor gave up ownership, so the socket is ours to release
		_ = raw.Close()
		b.transition(StateFailed)
		b.logger.Error().Err(err).Str("address", ln.String()).Msg("server activation failed")
		return nil, &ActivationError{Err: err}
	}

	b.transition(StateServing)
	b.logger.Info().Str("address", ln.String()).Msg("server activated")

	return task, nil
}

func (b *Bootstrap) beginActivation(ln *Listener) (net.Listener, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateBound || b.activating {
		return nil, ErrOutOfOrder
	}
	if ln == nil {
		return nil, ErrNilListener
	}
	if ln != b.listener {
		return nil, ErrOutOfOrder
	}

	raw, err := ln.Take()
	if err != nil {
		b.transition(StateFailed)
		return nil, &ActivationError{Err: err}
	}
	b.activating = true

	return raw, nil
}

// Run blocks until task stops serving. It returns nil on a graceful stop
// and the task's own error otherwise, without wrapping it.
//
// Cancelling ctx asks the task to shut down within the configured shutdown
// timeout; Run still waits for Serve to return. A failed Shutdown is
// reported only when Serve itself returned nil.
func (b *Bootstrap) Run(ctx context.Context, task Task) error {
	b.mu.Lock()
	if b.state != StateServing || b.running {
		b.mu.Unlock()
		return ErrOutOfOrder
	}
	b.running = true
	b.mu.Unlock()

	if task == nil {
		b.finish(StateFailed)
		return ErrNilTask
	}

	served := make(chan struct{})
	shutdownErr := make(chan error, 1)
	go func() {
		select {
		case <-ctx.Done():
			b.logger.Info().Msg("shutdown requested")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), b.shutdownTimeout)
			defer cancel()
			shutdownErr <- task.Shutdown(shutdownCtx)
		case <-served:
			shutdownErr <- nil
		}
	}()

	err := task.Serve()
	close(served)

	if sErr := <-shutdownErr; sErr != nil {
		b.logger.Error().Err(sErr).Msg("graceful shutdown failed")
		if err == nil {
			err = sErr
		}
	}

	if err != nil {
		b.finish(StateFailed)
		b.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	b.finish(StateStopped)
	b.logger.Info().Msg("server stopped gracefully")
	return nil
}

func (b *Bootstrap) finish(state State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.transition(state)
}

// transition must be called with b.mu held.
func (b *Bootstrap) transition(to State) {
	b.logger.Debug().Stringer("from", b.state).Stringer("to", to).Msg("bootstrap state changed")
	b.state = to
}
