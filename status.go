package restapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-arrower/restapi/alog"
)

const (
	metricPath = "/metrics"
	statusPath = "/status"
)

// SystemStatus is the body of the status path of the status endpoint.
type SystemStatus struct {
	Status           string         `json:"status"`
	Time             time.Time      `json:"time"`
	Uptime           string         `json:"uptime"`
	GitHash          string         `json:"gitHash"`
	OrganisationName string         `json:"organisationName"`
	ApplicationName  string         `json:"applicationName"`
	InstanceName     string         `json:"instanceName"`
	Environment      Environment    `json:"environment"`
	Web              HTTP           `json:"web"`
	Repository       Repository     `json:"repository"`
	Resources        map[string]int `json:"resources"`
}

func newStatusRouter(di *Container) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Logger.SetOutput(io.Discard)
	router.HTTPErrorHandler = NewHTTPErrorHandler(di.Logger)

	router.GET(metricPath, echo.WrapHandler(promhttp.HandlerFor(
		di.MetricsRegistry,
		promhttp.HandlerOpts{ //nolint:exhaustruct
			EnableOpenMetrics: true, // to enable Examplars in the export format
		},
	)))

	router.GET(statusPath, func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

		return c.JSON(http.StatusOK, getSystemStatus(c.Request().Context(), di))
	})

	return router
}

func (c *Container) serveStatus(ctx context.Context, listener net.Listener) {
	c.Logger.InfoContext(ctx, "serving status endpoint",
		slog.String("addr", listener.Addr().String()),
		slog.String("metric_path", metricPath),
		slog.String("status_path", statusPath),
	)

	c.StatusRouter.Listener = listener

	go func() {
		err := c.StatusRouter.Start("")
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.Logger.DebugContext(ctx, "error serving status endpoint", alog.Error(err))
		}
	}()
}

func getSystemStatus(ctx context.Context, di *Container) SystemStatus {
	resources := map[string]int{}

	di.counters.Range(func(key, value any) bool {
		name, _ := key.(string)
		if count, ok := value.(func(context.Context) int); ok {
			resources[name] = count(ctx)
		}

		return true
	})

	return SystemStatus{
		Status:           "online",
		Time:             time.Now(),
		Uptime:           time.Since(di.startedAt).Round(time.Second).String(),
		GitHash:          gitHash(),
		OrganisationName: di.Config.OrganisationName,
		ApplicationName:  di.Config.ApplicationName,
		InstanceName:     di.Config.InstanceName,
		Environment:      di.Config.Environment,
		Web:              di.Config.HTTP,
		Repository:       di.Config.Repository,
		Resources:        resources,
	}
}
