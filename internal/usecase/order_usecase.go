package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	repo "github.com/vandev268/fastfood-server/internal/repository"
)

type OrderUsecase struct {
	tx        repo.TransactionManager
	scheduler Scheduler
	vnpay     PaymentGateway
	momo      PaymentGateway
	notifier  OrderNotifier
	logger    *slog.Logger

	baseUserEmail    string
	baseUserPassword string
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	vnpay PaymentGateway,
	momo PaymentGateway,
	notifier OrderNotifier,
	logger *slog.Logger,
	baseUserEmail string,
	baseUserPassword string,
) *OrderUsecase {
	return &OrderUsecase{
		tx:               tx,
		vnpay:            vnpay,
		momo:             momo,
		notifier:         notifier,
		logger:           logger,
		baseUserEmail:    baseUserEmail,
		baseUserPassword: baseUserPassword,
	}
}

// SetScheduler attaches the cancellation scheduler after construction. The
// scheduler's fire callback is this usecase's CancelUnpaidOrder, so the two
// cannot be built in one step.
func (u *OrderUsecase) SetScheduler(s Scheduler) {
	u.scheduler = s
}

// OrderInfoForPayment is the order-info string echoed back by the payment
// gateways; the order id is recovered from the "#<id>" suffix.
func OrderInfoForPayment(orderID int64) string {
	return fmt.Sprintf("Thanh toan don hang #%d", orderID)
}

type CreateOrderOutput struct {
	OrderID       int64               `json:"order_id"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	PaymentURL    string              `json:"payment_url,omitempty"`
}

type OnlineCartLine struct {
	CartItemID int64
	LineItem
}

type CreateOnlineOrderInput struct {
	UserID            int64
	CustomerName      string
	DeliveryAddressID int64
	CouponID          *int64
	PaymentMethod     model.PaymentMethod
	Note              string
	Items             []OnlineCartLine
}

type CreateTakeAwayOrderInput struct {
	HandlerID     int64
	CouponID      *int64
	PaymentMethod model.PaymentMethod
	Note          string
	DraftCode     string
	Items         []LineItem
}

type DeliveryAddressInput struct {
	RecipientName  string
	RecipientPhone string
	ProvinceID     int64
	DistrictID     int64
	WardID         int64
	DetailAddress  string
	DeliveryNote   string
}

type CreateDeliveryOrderInput struct {
	HandlerID       int64
	CouponID        *int64
	PaymentMethod   model.PaymentMethod
	Note            string
	DraftCode       string
	Items           []LineItem
	DeliveryAddress DeliveryAddressInput
}

type CreateDineInOrderInput struct {
	HandlerID     int64
	CouponID      *int64
	PaymentMethod model.PaymentMethod
	Note          string
	DraftCode     string
	Items         []LineItem
	TableIDs      []int64
	ReservationID *int64
}

// materializeParams drives the shared per-channel creation skeleton.
// prepare runs before the order row exists (validation, identity
// resolution); clearSource removes the cart/draft origin; effects runs
// after the order row exists. Everything executes inside one transaction.
type materializeParams struct {
	order       model.Order
	items       []LineItem
	couponID    *int64
	prepare     func(ctx context.Context, r repo.TxRepos, o *model.Order) error
	clearSource func(ctx context.Context, r repo.TxRepos) error
	effects     func(ctx context.Context, r repo.TxRepos, orderID int64) error
}

func (u *OrderUsecase) materialize(ctx context.Context, p materializeParams) (model.Order, error) {
	if len(p.items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "no order items")
	}
	for _, it := range p.items {
		if it.Quantity <= 0 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if it.Price < 0 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid price")
		}
	}
	switch p.order.Payment.Method {
	case model.PaymentMethodCash, model.PaymentMethodMOMO, model.PaymentMethodVNPay, model.PaymentMethodCOD:
	default:
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}

	var created model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var coupon *model.Coupon
		if p.couponID != nil {
			c, err := r.Coupons().FindActiveByID(ctx, *p.couponID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "coupon not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			coupon = &c
		}

		o := p.order
		if p.prepare != nil {
			if err := p.prepare(ctx, r, &o); err != nil {
				return err
			}
		}

		amounts := CalculateAmounts(p.items, coupon, o.Channel)
		o.CouponID = p.couponID
		o.TotalAmount = amounts.Total
		o.FeeAmount = amounts.Fee
		o.DiscountAmount = amounts.Discount
		o.FinalAmount = amounts.Final
		o.Payment.Status = model.PaymentStatusPending

		orderID, err := r.Orders().Create(ctx, o)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderItems := make([]model.OrderItem, 0, len(p.items))
		for _, it := range p.items {
			orderItems = append(orderItems, model.OrderItem{
				ProductID:    it.ProductID,
				VariantID:    it.VariantID,
				ProductName:  it.ProductName,
				VariantValue: it.VariantValue,
				Thumbnail:    it.Thumbnail,
				Quantity:     it.Quantity,
				Price:        it.Price,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if p.clearSource != nil {
			if err := p.clearSource(ctx, r); err != nil {
				return err
			}
		}

		// Decrement is conditioned on remaining stock at decrement time;
		// a short row fails the whole transaction.
		for _, it := range p.items {
			if it.VariantID == nil {
				continue
			}
			ok, err := r.Variants().DecreaseStockIfEnough(ctx, *it.VariantID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusConflict, "insufficient stock")
			}
		}

		if coupon != nil {
			if err := r.Coupons().IncrementUsage(ctx, coupon.ID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		if p.effects != nil {
			if err := p.effects(ctx, r, orderID); err != nil {
				return err
			}
		}

		o.ID = orderID
		created = o
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return created, nil
}

// finishCreate runs only after the transaction committed: scheduling the
// auto-cancel job and building the payment link must never happen for an
// order that was rolled back.
func (u *OrderUsecase) finishCreate(ctx context.Context, order model.Order) (CreateOrderOutput, error) {
	out := CreateOrderOutput{
		OrderID:       order.ID,
		PaymentStatus: order.Payment.Status,
	}

	if order.Payment.Method.IsAsync() {
		u.scheduler.Schedule(order.ID)

		gw := u.vnpay
		if order.Payment.Method == model.PaymentMethodMOMO {
			gw = u.momo
		}
		url, err := gw.GeneratePaymentURL(ctx, order.FinalAmount, OrderInfoForPayment(order.ID))
		if err != nil {
			u.logger.Error("payment link generation failed", "order_id", order.ID, "error", err)
			return out, NewHTTPError(http.StatusBadGateway, "failed to create payment link")
		}
		out.PaymentURL = url
	}

	u.publishEvent(ctx, order.ID, order.Channel, order.Status, order.Payment.Status)
	return out, nil
}

func (u *OrderUsecase) publishEvent(ctx context.Context, orderID int64, channel model.OrderChannel, status model.OrderStatus, payment model.PaymentStatus) {
	if u.notifier == nil {
		return
	}
	ev := OrderEvent{
		OrderID:       orderID,
		Channel:       channel,
		Status:        status,
		PaymentStatus: payment,
		OccurredAt:    time.Now(),
	}
	if err := u.notifier.PublishOrderEvent(ctx, ev); err != nil {
		u.logger.Error("order event publish failed", "order_id", orderID, "error", err)
	}
}

func (u *OrderUsecase) CreateOnlineOrder(ctx context.Context, in CreateOnlineOrderInput) (CreateOrderOutput, error) {
	if in.UserID <= 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.DeliveryAddressID <= 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid delivery address id")
	}

	items := make([]LineItem, 0, len(in.Items))
	cartItemIDs := make([]int64, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, it.LineItem)
		cartItemIDs = append(cartItemIDs, it.CartItemID)
	}

	userID := in.UserID
	order, err := u.materialize(ctx, materializeParams{
		order: model.Order{
			Channel:           model.OrderChannelOnline,
			UserID:            &userID,
			CustomerName:      in.CustomerName,
			DeliveryAddressID: &in.DeliveryAddressID,
			Status:            model.OrderStatusPending,
			Note:              in.Note,
			Payment:           model.Payment{Method: in.PaymentMethod},
		},
		items:    items,
		couponID: in.CouponID,
		prepare: func(ctx context.Context, r repo.TxRepos, o *model.Order) error {
			_, err := r.Addresses().FindByID(ctx, in.DeliveryAddressID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "delivery address not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			return nil
		},
		clearSource: func(ctx context.Context, r repo.TxRepos) error {
			if err := r.CartItems().DeleteByIDs(ctx, in.UserID, cartItemIDs); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			return nil
		},
	})
	if err != nil {
		return CreateOrderOutput{}, err
	}
	return u.finishCreate(ctx, order)
}

func (u *OrderUsecase) CreateTakeAwayOrder(ctx context.Context, in CreateTakeAwayOrderInput) (CreateOrderOutput, error) {
	if in.HandlerID <= 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.DraftCode) == "" {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid draft code")
	}

	handlerID := in.HandlerID
	order, err := u.materialize(ctx, materializeParams{
		order: model.Order{
			Channel:      model.OrderChannelTakeaway,
			HandlerID:    &handlerID,
			CustomerName: "Guest",
			DraftCode:    in.DraftCode,
			Status:       model.OrderStatusCompleted,
			Note:         in.Note,
			Payment:      model.Payment{Method: in.PaymentMethod},
		},
		items:       in.Items,
		couponID:    in.CouponID,
		clearSource: u.clearDraft(in.DraftCode),
	})
	if err != nil {
		return CreateOrderOutput{}, err
	}
	return u.finishCreate(ctx, order)
}

func (u *OrderUsecase) CreateDeliveryOrder(ctx context.Context, in CreateDeliveryOrderInput) (CreateOrderOutput, error) {
	if in.HandlerID <= 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.DraftCode) == "" {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid draft code")
	}
	addr := in.DeliveryAddress
	if strings.TrimSpace(addr.RecipientName) == "" ||
		strings.TrimSpace(addr.RecipientPhone) == "" ||
		strings.TrimSpace(addr.DetailAddress) == "" {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid delivery address")
	}

	handlerID := in.HandlerID
	order, err := u.materialize(ctx, materializeParams{
		order: model.Order{
			Channel:   model.OrderChannelDelivery,
			HandlerID: &handlerID,
			DraftCode: in.DraftCode,
			Status:    model.OrderStatusConfirmed,
			Note:      in.Note,
			Payment:   model.Payment{Method: in.PaymentMethod},
		},
		items:    in.Items,
		couponID: in.CouponID,
		prepare: func(ctx context.Context, r repo.TxRepos, o *model.Order) error {
			// Guest delivery addresses are attached to the base system
			// account, provisioned on first use.
			base, err := u.ensureBaseUser(ctx, r)
			if err != nil {
				return err
			}
			addrID, err := r.Addresses().Create(ctx, model.Address{
				UserID:         base.ID,
				RecipientName:  addr.RecipientName,
				RecipientPhone: addr.RecipientPhone,
				ProvinceID:     addr.ProvinceID,
				DistrictID:     addr.DistrictID,
				WardID:         addr.WardID,
				DetailAddress:  addr.DetailAddress,
				DeliveryNote:   addr.DeliveryNote,
			})
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			o.UserID = &base.ID
			o.CustomerName = base.Name
			o.DeliveryAddressID = &addrID
			return nil
		},
		clearSource: u.clearDraft(in.DraftCode),
	})
	if err != nil {
		return CreateOrderOutput{}, err
	}
	return u.finishCreate(ctx, order)
}

func (u *OrderUsecase) CreateDineInOrder(ctx context.Context, in CreateDineInOrderInput) (CreateOrderOutput, error) {
	if in.HandlerID <= 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.DraftCode) == "" {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid draft code")
	}
	if len(in.TableIDs) == 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "table ids required")
	}

	// Resolved inside prepare, consumed by effects within the same tx.
	var resolvedTableIDs []int64

	handlerID := in.HandlerID
	order, err := u.materialize(ctx, materializeParams{
		order: model.Order{
			Channel:       model.OrderChannelDineIn,
			HandlerID:     &handlerID,
			CustomerName:  "Guest",
			ReservationID: in.ReservationID,
			DraftCode:     in.DraftCode,
			Status:        model.OrderStatusCompleted,
			Note:          in.Note,
			Payment:       model.Payment{Method: in.PaymentMethod},
		},
		items:    in.Items,
		couponID: in.CouponID,
		prepare: func(ctx context.Context, r repo.TxRepos, o *model.Order) error {
			for _, tableID := range in.TableIDs {
				if _, err := r.Tables().FindByID(ctx, tableID); err != nil {
					if errors.Is(err, repo.ErrNotFound) {
						return NewHTTPError(http.StatusNotFound, fmt.Sprintf("table %d not found", tableID))
					}
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}

			drafts, err := r.DraftItems().ListByCode(ctx, in.DraftCode)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if len(drafts) == 0 {
				return NewHTTPError(http.StatusNotFound, "no draft items found for this order")
			}

			// Tables already attached to the draft win over the caller's.
			resolvedTableIDs = in.TableIDs
			if len(drafts[0].Tables) > 0 {
				resolvedTableIDs = make([]int64, 0, len(drafts[0].Tables))
				for _, t := range drafts[0].Tables {
					resolvedTableIDs = append(resolvedTableIDs, t.ID)
				}
			}

			if in.ReservationID != nil {
				res, err := r.Reservations().FindByID(ctx, *in.ReservationID)
				if errors.Is(err, repo.ErrNotFound) {
					return NewHTTPError(http.StatusNotFound, "reservation not found")
				}
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				o.UserID = res.UserID
				o.CustomerName = res.GuestName
			}
			return nil
		},
		clearSource: u.clearDraft(in.DraftCode),
		effects: func(ctx context.Context, r repo.TxRepos, orderID int64) error {
			if err := r.Orders().ConnectTables(ctx, orderID, resolvedTableIDs); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := r.Tables().UpdateStatusBulk(ctx, resolvedTableIDs, model.TableStatusCleaning); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if in.ReservationID != nil {
				if err := r.Reservations().UpdateStatus(ctx, *in.ReservationID, model.ReservationStatusCompleted); err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}
			return nil
		},
	})
	if err != nil {
		return CreateOrderOutput{}, err
	}
	return u.finishCreate(ctx, order)
}

func (u *OrderUsecase) clearDraft(draftCode string) func(ctx context.Context, r repo.TxRepos) error {
	return func(ctx context.Context, r repo.TxRepos) error {
		if _, err := r.DraftItems().DeleteByCode(ctx, draftCode); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	}
}

func (u *OrderUsecase) ensureBaseUser(ctx context.Context, r repo.TxRepos) (model.User, error) {
	base, err := r.Users().FindByEmail(ctx, u.baseUserEmail)
	if err == nil {
		return base, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.baseUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	base = model.User{
		Email:        u.baseUserEmail,
		Name:         "Client",
		PasswordHash: string(hash),
	}
	id, err := r.Users().Create(ctx, base)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	base.ID = id
	return base, nil
}

type ChangeOrderStatusInput struct {
	Status model.OrderStatus
}

// ChangeOrderStatus is the staff-facing status machine. The only guard is
// the terminal one: Completed and Cancelled orders never change again.
func (u *OrderUsecase) ChangeOrderStatus(ctx context.Context, handlerID int64, orderID int64, in ChangeOrderStatusInput) error {
	if handlerID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	switch in.Status {
	case model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusPreparing,
		model.OrderStatusReady, model.OrderStatusServed, model.OrderStatusCompleted,
		model.OrderStatusCancelled:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var (
		channel       model.OrderChannel
		paymentStatus model.PaymentStatus
	)

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if o.Status.IsTerminal() {
			return NewHTTPError(http.StatusConflict, "order has already been completed or cancelled")
		}
		if o.Status == in.Status {
			return nil
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, in.Status, handlerID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		before, _ := json.Marshal(map[string]string{"status": string(o.Status)})
		after, _ := json.Marshal(map[string]string{"status": string(in.Status)})
		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  handlerID,
			Action:       model.AuditActionUpdateOrderStatus,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   string(before),
			AfterJSON:    string(after),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		channel = o.Channel
		paymentStatus = o.Payment.Status
		return nil
	})
	if err != nil {
		return err
	}

	u.publishEvent(ctx, orderID, channel, in.Status, paymentStatus)
	return nil
}

// CancelUnpaidOrder is the compensating transaction: cancel the order,
// mark the payment failed and restock every item, all atomically. The
// scheduler fires it when an asynchronous-gateway order stays unpaid.
//
// A job can fire after the order finished (payment succeeded, or staff
// completed it at creation). That fire must not overwrite anything, so the
// current state is re-checked inside the transaction and the call becomes
// a no-op.
func (u *OrderUsecase) CancelUnpaidOrder(ctx context.Context, orderID int64) error {
	var (
		cancelled bool
		channel   model.OrderChannel
	)

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if o.Status.IsTerminal() || o.Payment.Status == model.PaymentStatusSucceeded {
			return nil
		}

		payment := model.Payment{
			Method:        o.Payment.Method,
			Status:        model.PaymentStatusFailed,
			TransactionID: "",
			PaidAt:        nil,
		}
		if err := r.Orders().UpdatePayment(ctx, orderID, model.OrderStatusCancelled, payment); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		for _, it := range items {
			if it.VariantID == nil {
				continue
			}
			if err := r.Variants().IncreaseStock(ctx, *it.VariantID, it.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		cancelled = true
		channel = o.Channel
		return nil
	})
	if err != nil {
		return err
	}

	if cancelled {
		u.publishEvent(ctx, orderID, channel, model.OrderStatusCancelled, model.PaymentStatusFailed)
	}
	return nil
}

type OrderDetailOutput struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

type OrderListOutput struct {
	Data       []OrderDetailOutput `json:"data"`
	TotalItems int64               `json:"total_items"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}

func (u *OrderUsecase) List(ctx context.Context, f repo.OrderListFilter) (OrderListOutput, error) {
	if f.Page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var out OrderListOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().List(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out.Data = make([]OrderDetailOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out.Data = append(out.Data, OrderDetailOutput{Order: o, Items: items})
		}
		out.TotalItems = total
		out.Page = f.Page
		out.Limit = f.Limit
		return nil
	})
	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) FindDetail(ctx context.Context, orderID int64) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var out OrderDetailOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = OrderDetailOutput{Order: o, Items: items}
		return nil
	})
	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}
