package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/vandev268/fastfood-server/internal/handler"
)

func New(jwtSecret string, orderH *handler.OrderHandler, paymentH *handler.PaymentHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	RegisterRoutes(e, jwtSecret, orderH, paymentH)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
