package alog_test

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	ctx = context.Background()

	errSomething = errors.New("some error")
)

const applicationMsg = "application message"

// recordingSpan remembers the last event and status, so tests can assert
// what the handler reports to the active span.
type recordingSpan struct {
	noop.Span

	eventName  string
	eventAttrs []attribute.KeyValue

	statusCode codes.Code
	statusMsg  string
}

var _ trace.Span = (*recordingSpan)(nil)

func (*recordingSpan) SpanContext() trace.SpanContext {
	return trace.SpanContext{}.WithTraceID([16]byte{1}).WithSpanID([8]byte{1})
}

func (s *recordingSpan) SetStatus(code codes.Code, msg string) {
	s.statusCode = code
	s.statusMsg = msg
}

func (s *recordingSpan) AddEvent(name string, opts ...trace.EventOption) {
	s.eventName = name
	cfg := trace.NewEventConfig(opts...)
	s.eventAttrs = cfg.Attributes()
}

// failingHandler fails on every record.
type failingHandler struct{}

var _ slog.Handler = (*failingHandler)(nil)

func (failingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (failingHandler) Handle(_ context.Context, _ slog.Record) error { return errSomething }

func (h failingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h failingHandler) WithGroup(_ string) slog.Handler { return h }
