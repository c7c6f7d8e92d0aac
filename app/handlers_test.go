package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/go-arrower/restapi/alog"
	"github.com/go-arrower/restapi/app"
)

func TestNewInstrumentedRequest(t *testing.T) {
	t.Parallel()

	recorder, traceProvider := newSpanRecorder()
	reader, meterProvider := newMetricReader()
	logger := alog.Test(t)

	handler := app.NewInstrumentedRequest(traceProvider, meterProvider, logger, requestSuccessHandler)

	res, err := handler.H(ctx, request{})
	assert.NoError(t, err)
	assert.Equal(t, "ok", res.Name)

	assertUseCaseSpan(t, recorder, 0)
	assertUseCaseMetrics(t, reader, "success")
	logger.Contains("traceID=", "logs are correlated with the use case span")
}

func TestNewInstrumentedCommand(t *testing.T) {
	t.Parallel()

	recorder, traceProvider := newSpanRecorder()
	logger := alog.Test(t)

	handler := app.NewInstrumentedCommand(traceProvider, metric.NewMeterProvider(), logger, commandFailureHandler)

	err := handler.H(ctx, request{})
	assert.ErrorIs(t, err, errUseCaseFails)

	require.Len(t, recorder.Ended(), 1)
	logger.Contains(`msg="failed to execute command"`)
}

func TestNewInstrumentedQuery(t *testing.T) {
	t.Parallel()

	logger := alog.Test(t)

	handler := app.NewInstrumentedQuery(sdktrace.NewTracerProvider(), metric.NewMeterProvider(), logger, querySuccessHandler)

	_, err := handler.H(ctx, request{})
	assert.NoError(t, err)

	logger.Total(2)
}

func TestTestHandlers(t *testing.T) {
	t.Parallel()

	t.Run("failure handlers", func(t *testing.T) {
		t.Parallel()

		_, err := app.TestFailureRequestHandler[request, response]().H(ctx, request{})
		assert.ErrorIs(t, err, app.ErrUseCaseFailed)

		err = app.TestFailureCommandHandler[request]().H(ctx, request{})
		assert.ErrorIs(t, err, app.ErrUseCaseFailed)

		_, err = app.TestFailureQueryHandler[request, response]().H(ctx, request{})
		assert.ErrorIs(t, err, app.ErrUseCaseFailed)
	})

	t.Run("success handler without result", func(t *testing.T) {
		t.Parallel()

		res, err := app.TestSuccessQueryHandler[request, response]().H(ctx, request{})
		assert.NoError(t, err)
		assert.Empty(t, res)
	})
}
