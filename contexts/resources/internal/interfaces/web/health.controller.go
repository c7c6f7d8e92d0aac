package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewHealthController() *HealthController {
	return &HealthController{}
}

type HealthController struct{}

// Health reports that the process is up and serving requests.
func (hc *HealthController) Health() func(c echo.Context) error {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "OK", Message: "API is running"})
	}
}
