package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarket/goapi/base/ctx"
	hcdomain "github.com/openmarket/goapi/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.Usecase
}

func New(e *echo.Echo, us hcdomain.Usecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/healthcheck")
	g.GET("", handler.check)
}

func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(context); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"healthy": "ok",
	})
}
