// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/google/uuid"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDKey is the metadata key of the request trace id. gRPC lowercases
// metadata keys, so this matches the X-Trace-ID header of the HTTP side.
const traceIDKey = "x-trace-id"

// ServerOptions returns the interceptor chains every gRPC server built for
// this handler must be created with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.UnaryInterceptor(h.unaryChain()),
		grpc.StreamInterceptor(h.streamChain()),
	}
}

// Recovery runs outermost in both chains.
func (h *Handler) unaryChain() grpc.UnaryServerInterceptor {
	return grpc_middleware.ChainUnaryServer(
		grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(h.recoverPanic)),
		h.unaryLogging,
	)
}

func (h *Handler) streamChain() grpc.StreamServerInterceptor {
	return grpc_middleware.ChainStreamServer(
		grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(h.recoverPanic)),
		h.streamLogging,
	)
}

func (h *Handler) recoverPanic(ctx context.Context, p any) error {
	logger.FromContext(ctx).Error().Interface("panic", p).Msg("recovered from panic in gRPC handler")
	return status.Errorf(codes.Internal, "internal error")
}

func (h *Handler) unaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx = h.withTraceID(ctx)
	start := time.Now()

	resp, err := handler(ctx, req)

	logCall(ctx, info.FullMethod, start, err)
	return resp, err
}

func (h *Handler) streamLogging(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	wrapped := grpc_middleware.WrapServerStream(ss)
	wrapped.WrappedContext = h.withTraceID(ss.Context())
	start := time.Now()

	err := handler(srv, wrapped)

	logCall(wrapped.WrappedContext, info.FullMethod, start, err)
	return err
}

// withTraceID reuses the caller's trace id from incoming metadata or
// generates a new one, and returns ctx carrying a logger tagged with it.
func (h *Handler) withTraceID(ctx context.Context) context.Context {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	return h.logger.WithTraceID(ctx, traceID)
}

func logCall(ctx context.Context, method string, start time.Time, err error) {
	logger.FromContext(ctx).Info().
		Str("method", method).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
}
