package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/go-arrower/restapi/app"
)

func TestRequestTracingDecorator_H(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		recorder, traceProvider := newSpanRecorder()
		handler := app.NewTracedRequest(traceProvider, app.TestRequestHandler(func(ctx context.Context, _ request) (response, error) {
			assert.True(t, trace.SpanFromContext(ctx).SpanContext().IsValid(), "span is passed down")
			return response{}, nil
		}))

		_, err := handler.H(ctx, request{})
		assert.NoError(t, err)

		assertUseCaseSpan(t, recorder, codes.Unset)
	})

	t.Run("failed request", func(t *testing.T) {
		t.Parallel()

		recorder, traceProvider := newSpanRecorder()
		handler := app.NewTracedRequest(traceProvider, requestFailureHandler)

		_, err := handler.H(ctx, request{})
		assert.ErrorIs(t, err, errUseCaseFails)

		assertUseCaseSpan(t, recorder, codes.Error)
	})
}

func TestCommandTracingDecorator_H(t *testing.T) {
	t.Parallel()

	t.Run("successful command", func(t *testing.T) {
		t.Parallel()

		recorder, traceProvider := newSpanRecorder()
		handler := app.NewTracedCommand(traceProvider, commandSuccessHandler)

		err := handler.H(ctx, request{})
		assert.NoError(t, err)

		assertUseCaseSpan(t, recorder, codes.Unset)
	})

	t.Run("failed command", func(t *testing.T) {
		t.Parallel()

		recorder, traceProvider := newSpanRecorder()
		handler := app.NewTracedCommand(traceProvider, commandFailureHandler)

		err := handler.H(ctx, request{})
		assert.ErrorIs(t, err, errUseCaseFails)

		assertUseCaseSpan(t, recorder, codes.Error)
	})
}

func TestQueryTracingDecorator_H(t *testing.T) {
	t.Parallel()

	t.Run("successful query", func(t *testing.T) {
		t.Parallel()

		recorder, traceProvider := newSpanRecorder()
		handler := app.NewTracedQuery(traceProvider, querySuccessHandler)

		_, err := handler.H(ctx, request{})
		assert.NoError(t, err)

		assertUseCaseSpan(t, recorder, codes.Unset)
	})

	t.Run("failed query", func(t *testing.T) {
		t.Parallel()

		recorder, traceProvider := newSpanRecorder()
		handler := app.NewTracedQuery(traceProvider, queryFailureHandler)

		_, err := handler.H(ctx, request{})
		assert.ErrorIs(t, err, errUseCaseFails)

		assertUseCaseSpan(t, recorder, codes.Error)
	})
}

func newSpanRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	recorder := tracetest.NewSpanRecorder()

	return recorder, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
}

func assertUseCaseSpan(t *testing.T, recorder *tracetest.SpanRecorder, code codes.Code) {
	t.Helper()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "usecase", span.Name())
	assert.Equal(t, "restapi.application", span.InstrumentationScope().Name)
	assert.Contains(t, span.Attributes(), attribute.String("command", "app_test.request"))
	assert.Equal(t, code, span.Status().Code)
}
