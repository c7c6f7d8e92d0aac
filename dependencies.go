package restapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"reflect"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	prometheusSDK "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"golang.org/x/sync/errgroup"

	"github.com/go-arrower/restapi/alog"
)

var (
	ErrMissingDependency = errors.New("missing dependency")
	ErrStartFailed       = errors.New("could not start servers")
)

// Container holds global dependencies that can be used within each Context, to make initialisation easier.
type Container struct {
	Logger        alog.Logger
	MeterProvider *metric.MeterProvider
	TraceProvider *trace.TracerProvider
	// MetricsRegistry is exposed on the status endpoint. Each Container has its own,
	// so that multiple Containers can live in one process, e.g. in tests.
	MetricsRegistry *prometheusSDK.Registry

	Config *Config

	// Validator is shared by the WebRouter and the use case validation decorators.
	Validator *validator.Validate

	WebRouter *echo.Echo
	APIRouter *echo.Group
	// StatusRouter serves /status and /metrics on the status endpoint port.
	StatusRouter *echo.Echo

	startedAt time.Time
	// counters is usable as zero value, so hand-built Containers can register counters, too.
	counters sync.Map
	// statusServing is set, if Start serves the StatusRouter.
	statusServing bool
}

func (c *Container) EnsureAllDependenciesPresent() error {
	if c.Config == nil {
		return fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	if c.Logger == nil || c.WebRouter == nil || c.APIRouter == nil || c.Validator == nil {
		return fmt.Errorf("%w: container is not initialised, use InitialiseDefaultDependencies", ErrMissingDependency)
	}

	return nil
}

// InitialiseDefaultDependencies sets up observability, validation and the web router for conf.
// Traces are only exported if conf.OTEL.Host is set.
func InitialiseDefaultDependencies(ctx context.Context, conf *Config) (*Container, error) {
	if conf == nil {
		return nil, fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	dc := &Container{
		Config:    conf,
		startedAt: time.Now(),
	}

	{ // observability
		res := resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(fmt.Sprintf("%s.%s", conf.OrganisationName, conf.ApplicationName)),
			attribute.String(conf.OrganisationName, conf.ApplicationName),
		)

		{ // traces
			traceProvider, err := newTraceProvider(ctx, conf, res)
			if err != nil {
				return nil, err
			}

			dc.TraceProvider = traceProvider
		}

		{ // metrics
			registry := prometheusSDK.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
			if err != nil {
				return nil, fmt.Errorf("could not create prometheus exporter: %w", err)
			}

			dc.MetricsRegistry = registry
			dc.MeterProvider = metric.NewMeterProvider(
				metric.WithResource(res),
				metric.WithReader(exporter),
			)
		}

		if conf.Environment != TestEnv {
			otel.SetTracerProvider(dc.TraceProvider)
			otel.SetMeterProvider(dc.MeterProvider)
		}
	}

	{ // logger
		var logger *slog.Logger

		switch conf.Environment {
		case LocalEnv:
			logger = alog.NewDevelopment()
		case TestEnv:
			logger = alog.NewNoop()
		default:
			logger = alog.New()
		}

		logger = logger.With(
			slog.String("organisation_name", conf.OrganisationName),
			slog.String("application_name", conf.ApplicationName),
			slog.String("instance_name", conf.InstanceName),
			slog.String("git_hash", gitHash()),
			slog.String("environment", string(conf.Environment)),
		)

		dc.Logger = logger

		if conf.Environment != TestEnv {
			slog.SetDefault(logger)
		}
	}

	dc.Validator = NewValidator()

	{ // web routers
		router := echo.New()
		router.HideBanner = true
		router.HidePort = true
		router.Logger.SetOutput(io.Discard)
		router.Validator = NewCustomValidator(dc.Validator)
		router.Binder = NewBinder()
		router.HTTPErrorHandler = NewHTTPErrorHandler(dc.Logger)
		router.IPExtractor = echo.ExtractIPFromXFFHeader() // see: https://echo.labstack.com/docs/ip-address

		router.Pre(middleware.RemoveTrailingSlash())

		router.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				dc.Logger.LogAttrs(c.Request().Context(), slog.LevelError, "recovered from panic",
					alog.Error(err),
					slog.String("stack", string(stack)),
				)

				return err
			},
		}))
		router.Use(otelecho.Middleware(conf.OTEL.Hostname, otelecho.WithTracerProvider(dc.TraceProvider)))
		router.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  metricSubsystem(conf.ApplicationName),
			Registerer: dc.MetricsRegistry,
		}))
		router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TargetHeader: echo.HeaderXRequestID,
			RequestIDHandler: func(c echo.Context, rid string) {
				c.SetRequest(c.Request().WithContext(alog.AddAttr(
					c.Request().Context(),
					slog.String("request_id", rid)),
				))
			},
		}))
		router.Use(middleware.RequestLoggerWithConfig(newRequestLoggerConfig(dc.Logger)))
		router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     conf.HTTP.CORSAllowOrigins,
			AllowCredentials: true,
			AllowMethods: []string{
				http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
				http.MethodPost, http.MethodDelete, http.MethodOptions,
			},
			UnsafeWildcardOriginWithAllowCredentials: true,
		}))

		if conf.Environment == LocalEnv {
			router.Debug = true
		}

		dc.WebRouter = router
		dc.APIRouter = router.Group("/api")
		dc.StatusRouter = newStatusRouter(dc)
	}

	return dc, nil
}

func newTraceProvider(ctx context.Context, conf *Config, res *resource.Resource) (*trace.TracerProvider, error) {
	if conf.OTEL.Host == "" {
		// spans are still created, so that logs and use cases can be correlated
		return trace.NewTracerProvider(trace.WithResource(res)), nil
	}

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(fmt.Sprintf("%s:%d", conf.OTEL.Host, conf.OTEL.Port)),
		otlptracegrpc.WithInsecure(),
	}

	if conf.Environment == TestEnv {
		// while unit testing no otel endpoint is running. This means some operations, e.g.
		// traceprovider shutdown will block until the shutdown ctx expires,
		// which is too long for testing.
		opts = append(opts, otlptracegrpc.WithTimeout(10*time.Millisecond)) //nolint:mnd
	}

	traceExporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to trace exporter: %w", err)
	}

	if conf.Environment == LocalEnv {
		return trace.NewTracerProvider(
			trace.WithBatcher(traceExporter, trace.WithBlocking()),
			trace.WithResource(res),
			trace.WithSampler(trace.AlwaysSample()),
		), nil
	}

	return trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
		// set the sampling rate based on the parent span to 60%
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(0.6))), //nolint:mnd
	), nil
}

func newRequestLoggerConfig(logger alog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true, // call the HTTPErrorHandler, so the logged status is the one of the response
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}

			if v.Error != nil {
				attrs = append(attrs, alog.Error(v.Error))
			}

			logger.LogAttrs(c.Request().Context(), alog.LevelInfo, "request", attrs...)

			return nil
		},
	}
}

// Start serves the WebRouter and, if enabled, the status endpoint.
// The ports are bound before Start returns, so an address already in use is returned as error.
// Use Shutdown to stop the servers.
func (c *Container) Start(ctx context.Context) error {
	if err := c.EnsureAllDependenciesPresent(); err != nil {
		return err
	}

	c.Logger.LogAttrs(ctx, alog.LevelInfo, "starting all servers",
		slog.Int("port", c.Config.HTTP.Port),
	)

	web, err := net.Listen("tcp", fmt.Sprintf(":%d", c.Config.HTTP.Port))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	if c.Config.HTTP.StatusEndpointEnabled {
		status, err := net.Listen("tcp", fmt.Sprintf(":%d", c.Config.HTTP.StatusEndpointPort))
		if err != nil {
			_ = web.Close()

			return fmt.Errorf("%w: status endpoint: %w", ErrStartFailed, err)
		}

		c.statusServing = true
		c.serveStatus(ctx, status)
	}

	c.WebRouter.Listener = web

	go func() {
		err := c.WebRouter.Start("")
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.Logger.LogAttrs(ctx, slog.LevelError, "could not serve http", alog.Error(err))
		}
	}()

	return nil
}

// Shutdown stops all servers gracefully and flushes the observability providers.
func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.LogAttrs(ctx, alog.LevelInfo, "shutting down all servers")

	servers, sctx := errgroup.WithContext(ctx)

	servers.Go(func() error {
		return c.WebRouter.Shutdown(sctx) //nolint:wrapcheck // joined below
	})

	if c.statusServing {
		servers.Go(func() error {
			return c.StatusRouter.Shutdown(sctx) //nolint:wrapcheck // joined below
		})
	}

	err := servers.Wait()

	return errors.Join(
		err,
		c.TraceProvider.Shutdown(ctx),
		c.MeterProvider.Shutdown(ctx),
	)
}

// RegisterCounter adds a number reported under resources on the status endpoint,
// e.g. the number of records of a repository.
func (c *Container) RegisterCounter(name string, count func(ctx context.Context) int) {
	c.counters.Store(name, count)
}

// NewValidator returns a validator reporting fields by their json name.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}

// NewCustomValidator returns a validator to be set as echo.Echo.Validator.
func NewCustomValidator(validate *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: validate}
}

// CustomValidator makes validator.Validate usable with echo.Context.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err //nolint:wrapcheck // return the original validate error to not break the API for the caller.
	}

	return nil
}

// metricSubsystem returns a valid prometheus name for the application name.
func metricSubsystem(name string) string {
	name = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			return r
		}

		return '_'
	}, name)

	if name == "" || name[0] >= '0' && name[0] <= '9' {
		return "echo_" + name
	}

	return name
}

func gitHash() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}
