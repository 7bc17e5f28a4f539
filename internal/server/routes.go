package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vandev268/fastfood-server/internal/handler"
)

func RegisterRoutes(e *echo.Echo, jwtSecret string, orderH *handler.OrderHandler, paymentH *handler.PaymentHandler) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	orderH.RegisterRoutes(e, jwtSecret)
	paymentH.RegisterRoutes(e, jwtSecret)
}
