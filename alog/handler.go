package alog

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LoggerOpt allows to initialise a logger with custom options.
type LoggerOpt func(logger *handler)

// WithHandler adds a slog.Handler to be logged to.
// You can set as many as you want.
func WithHandler(h slog.Handler) LoggerOpt {
	return func(l *handler) {
		l.handlers = append(l.handlers, h)
	}
}

// WithLevel initialises the logger with a starting level.
// To change the level at runtime use LevelLogger.SetLevel:
// Unwrap(logger).SetLevel(LevelInfo).
func WithLevel(level slog.Level) LoggerOpt {
	return func(l *handler) {
		*l.level = level
	}
}

// New returns a production ready logger.
//
// If no options are given it creates a default handler, logging JSON to Stderr.
// Otherwise, use WithHandler to set your own loggers.
func New(opts ...LoggerOpt) *slog.Logger {
	return slog.New(newHandler(opts...))
}

// NewDevelopment returns a logger ready for local development purposes.
// It logs human-readable text to Stderr, starting at slog.LevelDebug.
func NewDevelopment() *slog.Logger {
	return New(
		WithLevel(slog.LevelDebug),
		WithHandler(slog.NewTextHandler(os.Stderr, getDebugHandlerOptions())),
	)
}

// levelOff is above all levels, so nothing is logged.
const levelOff = slog.Level(math.MaxInt)

// NewNoop returns a logger that discards everything. Ideal as dependency in tests.
// Unwrap(logger).SetLevel turns it on, it then logs text to Stderr.
func NewNoop() *slog.Logger {
	return New(
		WithLevel(levelOff),
		WithHandler(slog.NewTextHandler(os.Stderr, getDebugHandlerOptions())),
	)
}

// newHandler implements the main logging logic and features.
// It does not output anything directly and relies on other slog.Handlers to do so.
// If no Handlers are provided via WithHandler, a default JSON handler logs to os.Stderr.
func newHandler(opts ...LoggerOpt) *handler {
	defaultLevel := slog.LevelInfo

	logger := &handler{
		handlers: []slog.Handler{},
		level:    &defaultLevel,
	}

	for _, opt := range opts {
		opt(logger)
	}

	if len(logger.handlers) == 0 {
		logger.handlers = []slog.Handler{slog.NewJSONHandler(os.Stderr, getDefaultHandlerOptions())}
	}

	return logger
}

// handler logs to multiple handlers and does all the lifting for observability:
// each record gets the trace and span ids and is added as an event to the active span.
type handler struct {
	// level reports the minimum record level that will be logged.
	// The level of individual handlers set via WithHandler is ignored.
	// It is shared by all handlers derived via WithAttrs or WithGroup.
	level *slog.Level

	// handlers is a list which all get called with the same log message.
	handlers []slog.Handler
}

var (
	_ slog.Handler = (*handler)(nil)
	_ LevelLogger  = (*handler)(nil)
)

func (l *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= *l.level
}

func (l *handler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)

	record = addTraceAndSpanIDsToLogs(span, record)

	if attrs := FromContext(ctx); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}

	addLogsToActiveSpanAsEvent(span, getAttrsFromRecord(record), record)

	var retErr error

	for _, h := range l.handlers {
		err := h.Handle(ctx, record)
		retErr = errors.Join(retErr, err)
	}

	return retErr
}

func (l *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))

	for i, h := range l.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}

	return &handler{handlers: handlers, level: l.level}
}

func (l *handler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))

	for i, h := range l.handlers {
		handlers[i] = h.WithGroup(name)
	}

	return &handler{handlers: handlers, level: l.level}
}

// SetLevel changes the level for all loggers set with WithHandler().
// Even the ones "copied" via any WithX method.
func (l *handler) SetLevel(level slog.Level) {
	*l.level = level
}

// Level returns the log level of the handler.
func (l *handler) Level() slog.Level {
	return *l.level
}

func addTraceAndSpanIDsToLogs(span trace.Span, record slog.Record) slog.Record {
	sCtx := span.SpanContext()
	attrs := make([]slog.Attr, 0, 2) //nolint:mnd // trace and span id

	if sCtx.HasTraceID() {
		attrs = append(attrs, slog.String("traceID", sCtx.TraceID().String()))
	}

	if sCtx.HasSpanID() {
		attrs = append(attrs, slog.String("spanID", sCtx.SpanID().String()))
	}

	if len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}

	return record
}

func addLogsToActiveSpanAsEvent(span trace.Span, attrs []attribute.KeyValue, record slog.Record) {
	span.AddEvent("log", trace.WithAttributes(attrs...))

	if record.Level >= slog.LevelError {
		span.SetStatus(codes.Error, record.Message)
	}
}

func getAttrsFromRecord(record slog.Record) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("log.severity", record.Level.String()),
		attribute.String("log.message", record.Message),
	}

	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, attribute.String(a.Key, a.Value.String()))

		return true
	})

	return attrs
}

// LevelLogger offers additional control over the logger at run time.
// Unwrap a logger to get access to this features.
type LevelLogger interface {
	SetLevel(level slog.Level)
	Level() slog.Level
}

// Unwrap unwraps the given logger and returns a LevelLogger.
// In case of a logger not created by this package, it returns nil.
func Unwrap(logger Logger) LevelLogger { //nolint:ireturn // interface required to return a TestLogger and handler
	if l, ok := logger.(*TestLogger); ok {
		return l
	}

	sl, ok := logger.(*slog.Logger)
	if !ok {
		return nil
	}

	if h, ok := sl.Handler().(*handler); ok {
		return h
	}

	return nil
}

func getDefaultHandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   true,
		Level:       nil, // this level is ignored, handler's level is used for all handlers.
		ReplaceAttr: MapLogLevelsToName,
	}
}

// getDebugHandlerOptions is to keep the log output more readable, by removing not essential keys.
func getDebugHandlerOptions() *slog.HandlerOptions {
	opt := getDefaultHandlerOptions()
	opt.AddSource = false

	return opt
}
