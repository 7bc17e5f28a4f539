package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vandev268/fastfood-server/internal/middleware"
	"github.com/vandev268/fastfood-server/internal/usecase"
)

type PaymentHandler struct {
	uc     *usecase.PaymentUsecase
	logger *slog.Logger
}

func NewPaymentHandler(uc *usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	// Callback endpoints are hit by the gateways, not by our clients, so
	// they stay outside the auth group.
	e.GET("/payment/vnpay/callback", h.vnpayCallback)
	e.POST("/payment/momo/callback", h.momoCallback)

	g := e.Group("/payment")
	g.Use(middleware.AuthJWT(jwtSecret))
	g.POST("/create-link", h.createLink)
}

func (h *PaymentHandler) vnpayCallback(c echo.Context) error {
	in := usecase.VNPayCallbackInput{
		OrderInfo:     c.QueryParam("vnp_OrderInfo"),
		ResponseCode:  c.QueryParam("vnp_ResponseCode"),
		Amount:        c.QueryParam("vnp_Amount"),
		TransactionNo: c.QueryParam("vnp_TransactionNo"),
	}

	out, err := h.uc.HandleVNPayCallback(c.Request().Context(), in)
	if err != nil {
		return h.ackError(c, "vnpay", err)
	}
	return c.JSON(http.StatusOK, out)
}

type momoCallbackRequest struct {
	OrderInfo  string `json:"orderInfo"`
	ResultCode string `json:"resultCode"`
	Amount     string `json:"amount"`
	TransID    string `json:"transId"`
}

func (h *PaymentHandler) momoCallback(c echo.Context) error {
	var req momoCallbackRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("momo callback with malformed body", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment callback data"})
	}

	out, err := h.uc.HandleMomoCallback(c.Request().Context(), usecase.MomoCallbackInput{
		OrderInfo:  req.OrderInfo,
		ResultCode: req.ResultCode,
		Amount:     req.Amount,
		TransID:    req.TransID,
	})
	if err != nil {
		return h.ackError(c, "momo", err)
	}
	return c.JSON(http.StatusOK, out)
}

// ackError answers a gateway callback that could not be applied. The
// gateway only needs an acknowledgment, so internal failures are logged
// and reported with a generic body rather than dropped connections.
func (h *PaymentHandler) ackError(c echo.Context, gateway string, err error) error {
	if he, ok := usecase.AsHTTPError(err); ok {
		h.logger.Warn("payment callback rejected", "gateway", gateway, "status", he.Status, "reason", he.Message)
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}
	h.logger.Error("payment callback failed", "gateway", gateway, "error", err)
	return c.JSON(http.StatusOK, ErrorResponse{Error: "callback could not be processed"})
}

type createLinkRequest struct {
	OrderID int64 `json:"order_id"`
}

func (h *PaymentHandler) createLink(c echo.Context) error {
	var req createLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreatePaymentLink(c.Request().Context(), usecase.CreatePaymentLinkInput{
		OrderID: req.OrderID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
