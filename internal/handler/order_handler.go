package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	"github.com/vandev268/fastfood-server/internal/middleware"
	repo "github.com/vandev268/fastfood-server/internal/repository"
	"github.com/vandev268/fastfood-server/internal/usecase"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(jwtSecret))

	g.POST("/online", h.createOnline)
	g.POST("/take-away", h.createTakeAway)
	g.POST("/delivery", h.createDelivery)
	g.POST("/dine-in", h.createDineIn)
	g.GET("", h.list)
	g.GET("/:orderId", h.detail)
	g.PUT("/:orderId/status", h.changeStatus)
}

type orderLineRequest struct {
	ProductID    *int64 `json:"product_id"`
	VariantID    *int64 `json:"variant_id"`
	ProductName  string `json:"product_name"`
	VariantValue string `json:"variant_value"`
	Thumbnail    string `json:"thumbnail"`
	Price        int64  `json:"price"`
	Quantity     int64  `json:"quantity"`
}

func (r orderLineRequest) toLineItem() usecase.LineItem {
	return usecase.LineItem{
		ProductID:    r.ProductID,
		VariantID:    r.VariantID,
		ProductName:  r.ProductName,
		VariantValue: r.VariantValue,
		Thumbnail:    r.Thumbnail,
		Price:        r.Price,
		Quantity:     r.Quantity,
	}
}

func toLineItems(lines []orderLineRequest) []usecase.LineItem {
	items := make([]usecase.LineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, l.toLineItem())
	}
	return items
}

type createOnlineOrderRequest struct {
	CustomerName      string              `json:"customer_name"`
	DeliveryAddressID int64               `json:"delivery_address_id"`
	CouponID          *int64              `json:"coupon_id"`
	PaymentMethod     model.PaymentMethod `json:"payment_method"`
	Note              string              `json:"note"`
	CartItems         []struct {
		CartItemID int64 `json:"cart_item_id"`
		orderLineRequest
	} `json:"cart_items"`
}

func (h *OrderHandler) createOnline(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req createOnlineOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.OnlineCartLine, 0, len(req.CartItems))
	for _, it := range req.CartItems {
		items = append(items, usecase.OnlineCartLine{
			CartItemID: it.CartItemID,
			LineItem:   it.toLineItem(),
		})
	}

	out, err := h.uc.CreateOnlineOrder(c.Request().Context(), usecase.CreateOnlineOrderInput{
		UserID:            userID,
		CustomerName:      req.CustomerName,
		DeliveryAddressID: req.DeliveryAddressID,
		CouponID:          req.CouponID,
		PaymentMethod:     req.PaymentMethod,
		Note:              req.Note,
		Items:             items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

type createTakeAwayOrderRequest struct {
	CouponID      *int64              `json:"coupon_id"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
	Note          string              `json:"note"`
	DraftCode     string              `json:"draft_code"`
	DraftItems    []orderLineRequest  `json:"draft_items"`
}

func (h *OrderHandler) createTakeAway(c echo.Context) error {
	handlerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req createTakeAwayOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateTakeAwayOrder(c.Request().Context(), usecase.CreateTakeAwayOrderInput{
		HandlerID:     handlerID,
		CouponID:      req.CouponID,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
		DraftCode:     req.DraftCode,
		Items:         toLineItems(req.DraftItems),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

type deliveryAddressRequest struct {
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	ProvinceID     int64  `json:"province_id"`
	DistrictID     int64  `json:"district_id"`
	WardID         int64  `json:"ward_id"`
	DetailAddress  string `json:"detail_address"`
	DeliveryNote   string `json:"delivery_note"`
}

type createDeliveryOrderRequest struct {
	CouponID        *int64                 `json:"coupon_id"`
	PaymentMethod   model.PaymentMethod    `json:"payment_method"`
	Note            string                 `json:"note"`
	DraftCode       string                 `json:"draft_code"`
	DraftItems      []orderLineRequest     `json:"draft_items"`
	DeliveryAddress deliveryAddressRequest `json:"delivery_address"`
}

func (h *OrderHandler) createDelivery(c echo.Context) error {
	handlerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req createDeliveryOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateDeliveryOrder(c.Request().Context(), usecase.CreateDeliveryOrderInput{
		HandlerID:     handlerID,
		CouponID:      req.CouponID,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
		DraftCode:     req.DraftCode,
		Items:         toLineItems(req.DraftItems),
		DeliveryAddress: usecase.DeliveryAddressInput{
			RecipientName:  req.DeliveryAddress.RecipientName,
			RecipientPhone: req.DeliveryAddress.RecipientPhone,
			ProvinceID:     req.DeliveryAddress.ProvinceID,
			DistrictID:     req.DeliveryAddress.DistrictID,
			WardID:         req.DeliveryAddress.WardID,
			DetailAddress:  req.DeliveryAddress.DetailAddress,
			DeliveryNote:   req.DeliveryAddress.DeliveryNote,
		},
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

type createDineInOrderRequest struct {
	CouponID      *int64              `json:"coupon_id"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
	Note          string              `json:"note"`
	DraftCode     string              `json:"draft_code"`
	DraftItems    []orderLineRequest  `json:"draft_items"`
	TableIDs      []int64             `json:"table_ids"`
	ReservationID *int64              `json:"reservation_id"`
}

func (h *OrderHandler) createDineIn(c echo.Context) error {
	handlerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req createDineInOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateDineInOrder(c.Request().Context(), usecase.CreateDineInOrderInput{
		HandlerID:     handlerID,
		CouponID:      req.CouponID,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
		DraftCode:     req.DraftCode,
		Items:         toLineItems(req.DraftItems),
		TableIDs:      req.TableIDs,
		ReservationID: req.ReservationID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page == 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit == 0 {
		limit = 20
	}

	out, err := h.uc.List(c.Request().Context(), repo.OrderListFilter{
		Page:    page,
		Limit:   limit,
		Channel: model.OrderChannel(c.QueryParam("channel")),
		Status:  model.OrderStatus(c.QueryParam("status")),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	out, err := h.uc.FindDetail(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type changeStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (h *OrderHandler) changeStatus(c echo.Context) error {
	handlerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.ChangeOrderStatus(c.Request().Context(), handlerID, orderID, usecase.ChangeOrderStatusInput{
		Status: req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "order status changed successfully"})
}
