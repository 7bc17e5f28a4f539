package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vandev268/fastfood-server/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
