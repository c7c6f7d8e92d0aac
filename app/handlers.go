// Package app provides common decorators for use cases in the application layer.
package app

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-arrower/restapi/alog"
)

// Request can produce side effects and return data.
type Request[Req any, Res any] interface {
	H(ctx context.Context, req Req) (Res, error)
}

// Command produces side effects, e.g. mutate state.
type Command[C any] interface {
	H(ctx context.Context, cmd C) error
}

// Query does not produce side effects and returns data.
type Query[Q any, Res any] interface {
	H(ctx context.Context, query Q) (Res, error)
}

// NewInstrumentedRequest is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedRequest[Req any, Res any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	req Request[Req, Res],
) Request[Req, Res] {
	return NewTracedRequest(traceProvider, NewMeteredRequest(meterProvider, NewLoggedRequest(logger, req)))
}

// NewInstrumentedCommand is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedCommand[C any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	cmd Command[C],
) Command[C] {
	return NewTracedCommand(traceProvider, NewMeteredCommand(meterProvider, NewLoggedCommand(logger, cmd)))
}

// NewInstrumentedQuery is a convenience helper for easy dependency setup.
// The order of dependencies represents the order of calling.
func NewInstrumentedQuery[Q any, Res any](
	traceProvider trace.TracerProvider,
	meterProvider metric.MeterProvider,
	logger alog.Logger,
	query Query[Q, Res],
) Query[Q, Res] {
	return NewTracedQuery(traceProvider, NewMeteredQuery(meterProvider, NewLoggedQuery(logger, query)))
}

// instrumentationName is used for the tracer and meter of all decorators.
const instrumentationName = "restapi.application"

var typeArgPkgPath = regexp.MustCompile(`[^\[\],\s]*/`)

// commandName extracts a printable name from cmd in the format of: context.package.structName.
// Type arguments of generic structs keep their package name only:
//
//	github.com/go-arrower/restapi/contexts/resources/internal/application.ShowQuery[.../domain.User]
//	=> resources.application.ShowQuery[domain.User]
//
// The use case function can not be used, as it is a method of a generic handler.
func commandName(cmd any) string {
	name := typeArgPkgPath.ReplaceAllString(fmt.Sprintf("%T", cmd), "")

	// example: github.com/go-arrower/restapi/contexts/resources/internal/application
	// take string after /contexts/ and then take string before /internal/
	_, afterContexts, found := strings.Cut(reflect.TypeOf(cmd).PkgPath(), "/contexts/")
	if !found {
		return name
	}

	context, _, found := strings.Cut(afterContexts, "/internal/")
	if !found {
		return name
	}

	return context + "." + name
}
