package grpc

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var unaryInfo = &grpc.UnaryServerInfo{FullMethod: "/newsletter.Test/Call"}

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	h := NewHandler(&logger.Logger{Logger: zerolog.New(buf)})
	buf.Reset()
	return h
}

func TestUnaryLogging_TraceIDFromMetadata(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDKey, "grpc-trace"))
	resp, err := h.unaryLogging(ctx, "req", unaryInfo, func(ctx context.Context, req any) (any, error) {
		logger.FromContext(ctx).Debug().Msg("inside")
		return "resp", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "resp", resp)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "grpc-trace", entry["trace_id"])
	}
	assert.Contains(t, lines[1], `"method":"/newsletter.Test/Call"`)
	assert.Contains(t, lines[1], `"code":"OK"`)
}

func TestUnaryLogging_GeneratesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	_, err := h.unaryLogging(context.Background(), nil, unaryInfo, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.Unavailable, "down")
	})

	assert.Equal(t, codes.Unavailable, status.Code(err))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotEmpty(t, entry["trace_id"])
	assert.Equal(t, "Unavailable", entry["code"])
}

func TestUnaryChain_RecoversPanics(t *testing.T) {
	h := NewHandler(logger.Nop())

	resp, err := h.unaryChain()(context.Background(), nil, unaryInfo, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestStreamChain_RecoversPanics(t *testing.T) {
	h := NewHandler(logger.Nop())
	info := &grpc.StreamServerInfo{FullMethod: "/newsletter.Test/Stream", IsServerStream: true}

	err := h.streamChain()(nil, &fakeServerStream{ctx: context.Background()}, info, func(srv any, stream grpc.ServerStream) error {
		panic("boom")
	})

	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestStreamLogging_WrapsContext(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)
	info := &grpc.StreamServerInfo{FullMethod: "/newsletter.Test/Stream"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDKey, "stream-trace"))
	err := h.streamLogging(nil, &fakeServerStream{ctx: ctx}, info, func(srv any, stream grpc.ServerStream) error {
		logger.FromContext(stream.Context()).Debug().Msg("inside stream")
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), `"trace_id":"stream-trace"`))
}

// fakeServerStream is a grpc.ServerStream that only carries a context.
type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *fakeServerStream) Context() context.Context {
	return s.ctx
}

func TestRecoverPanic(t *testing.T) {
	h := NewHandler(logger.Nop())

	err := h.recoverPanic(context.Background(), "boom")

	assert.Equal(t, codes.Internal, status.Code(err))
}
