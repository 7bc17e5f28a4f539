package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	repo "github.com/vandev268/fastfood-server/internal/repository"
)

// vnpaySuccessCodes per the gateway docs: 00 = success, 07 = success but
// flagged as suspicious.
var vnpaySuccessCodes = map[string]bool{"00": true, "07": true}

const momoSuccessCode = "0"

type PaymentUsecase struct {
	tx        repo.TransactionManager
	scheduler Scheduler
	vnpay     PaymentGateway
	momo      PaymentGateway
	notifier  OrderNotifier
	logger    *slog.Logger
}

func NewPaymentUsecase(
	tx repo.TransactionManager,
	scheduler Scheduler,
	vnpay PaymentGateway,
	momo PaymentGateway,
	notifier OrderNotifier,
	logger *slog.Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		tx:        tx,
		scheduler: scheduler,
		vnpay:     vnpay,
		momo:      momo,
		notifier:  notifier,
		logger:    logger,
	}
}

// OrderIDFromPaymentInfo recovers the order id from the gateway's echoed
// order-info string, free text containing "#<orderId>".
func OrderIDFromPaymentInfo(orderInfo string) (int64, error) {
	_, raw, found := strings.Cut(orderInfo, "#")
	if !found {
		return 0, errors.New("no order id in payment info")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid order id in payment info")
	}
	return id, nil
}

type VNPayCallbackInput struct {
	OrderInfo     string
	ResponseCode  string
	Amount        string
	TransactionNo string
}

type MomoCallbackInput struct {
	OrderInfo  string
	ResultCode string
	Amount     string
	TransID    string
}

type CallbackOutput struct {
	OrderID int64               `json:"order_id"`
	Status  model.PaymentStatus `json:"status"`
}

func (u *PaymentUsecase) HandleVNPayCallback(ctx context.Context, in VNPayCallbackInput) (CallbackOutput, error) {
	if in.OrderInfo == "" || in.ResponseCode == "" || in.Amount == "" || in.TransactionNo == "" {
		return CallbackOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment callback data")
	}

	rawAmount, err := strconv.ParseInt(in.Amount, 10, 64)
	if err != nil {
		return CallbackOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment callback data")
	}
	// VNPay amounts are sent multiplied by 100.
	amount := rawAmount / 100

	return u.applyCallback(ctx, applyCallbackParams{
		orderInfo:     in.OrderInfo,
		method:        model.PaymentMethodVNPay,
		amount:        amount,
		transactionID: in.TransactionNo,
		succeeded:     vnpaySuccessCodes[in.ResponseCode],
	})
}

func (u *PaymentUsecase) HandleMomoCallback(ctx context.Context, in MomoCallbackInput) (CallbackOutput, error) {
	if in.OrderInfo == "" || in.ResultCode == "" || in.Amount == "" || in.TransID == "" {
		return CallbackOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment callback data")
	}

	amount, err := strconv.ParseInt(in.Amount, 10, 64)
	if err != nil {
		return CallbackOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment callback data")
	}

	return u.applyCallback(ctx, applyCallbackParams{
		orderInfo:     in.OrderInfo,
		method:        model.PaymentMethodMOMO,
		amount:        amount,
		transactionID: in.TransID,
		succeeded:     in.ResultCode == momoSuccessCode,
	})
}

type applyCallbackParams struct {
	orderInfo     string
	method        model.PaymentMethod
	amount        int64
	transactionID string
	succeeded     bool
}

// applyCallback reconciles one gateway callback. Validation happens before
// any mutation: an incomplete payload, an unknown order, an amount
// mismatch or a double payment all leave the order untouched. A failed
// payment result is a normal recorded outcome, not an error; the order
// stays Pending so a fresh link can be requested.
func (u *PaymentUsecase) applyCallback(ctx context.Context, p applyCallbackParams) (CallbackOutput, error) {
	orderID, err := OrderIDFromPaymentInfo(p.orderInfo)
	if err != nil {
		return CallbackOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment callback data")
	}

	var status model.PaymentStatus

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if o.Payment.Status == model.PaymentStatusSucceeded {
			return NewHTTPError(http.StatusConflict, "order has already been paid")
		}
		if o.FinalAmount != p.amount {
			return NewHTTPError(http.StatusConflict, "payment amount does not match order amount")
		}

		if p.succeeded {
			now := time.Now()
			status = model.PaymentStatusSucceeded
			return u.updatePayment(ctx, r, orderID, model.OrderStatusConfirmed, model.Payment{
				Method:        p.method,
				Status:        status,
				TransactionID: p.transactionID,
				PaidAt:        &now,
			})
		}

		// Transaction id is kept for audit; order status stays untouched.
		status = model.PaymentStatusFailed
		return u.updatePayment(ctx, r, orderID, "", model.Payment{
			Method:        p.method,
			Status:        status,
			TransactionID: p.transactionID,
			PaidAt:        nil,
		})
	})
	if err != nil {
		return CallbackOutput{}, err
	}

	if status == model.PaymentStatusSucceeded {
		// After the commit, so a job firing in between is caught by the
		// compensating routine's own state guard.
		u.scheduler.Cancel(orderID)
		u.publishEvent(ctx, orderID, model.OrderStatusConfirmed, status)
	}

	return CallbackOutput{OrderID: orderID, Status: status}, nil
}

func (u *PaymentUsecase) updatePayment(ctx context.Context, r repo.TxRepos, orderID int64, orderStatus model.OrderStatus, payment model.Payment) error {
	if err := r.Orders().UpdatePayment(ctx, orderID, orderStatus, payment); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *PaymentUsecase) publishEvent(ctx context.Context, orderID int64, status model.OrderStatus, payment model.PaymentStatus) {
	if u.notifier == nil {
		return
	}
	ev := OrderEvent{
		OrderID:       orderID,
		Status:        status,
		PaymentStatus: payment,
		OccurredAt:    time.Now(),
	}
	if err := u.notifier.PublishOrderEvent(ctx, ev); err != nil {
		u.logger.Error("order event publish failed", "order_id", orderID, "error", err)
	}
}

type CreatePaymentLinkInput struct {
	OrderID int64
}

type CreatePaymentLinkOutput struct {
	URL string `json:"url"`
}

// CreatePaymentLink builds a fresh redirect URL for a still-pending order,
// e.g. after a failed attempt.
func (u *PaymentUsecase) CreatePaymentLink(ctx context.Context, in CreatePaymentLinkInput) (CreatePaymentLinkOutput, error) {
	if in.OrderID <= 0 {
		return CreatePaymentLinkOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var order model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, in.OrderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		order = o
		return nil
	})
	if err != nil {
		return CreatePaymentLinkOutput{}, err
	}

	if order.Payment.PaidAt != nil || order.Payment.Status != model.PaymentStatusPending {
		return CreatePaymentLinkOutput{}, NewHTTPError(http.StatusConflict, "order has already been paid")
	}

	var gw PaymentGateway
	switch order.Payment.Method {
	case model.PaymentMethodVNPay:
		gw = u.vnpay
	case model.PaymentMethodMOMO:
		gw = u.momo
	default:
		return CreatePaymentLinkOutput{}, NewHTTPError(http.StatusBadRequest, "unsupported payment method")
	}

	url, err := gw.GeneratePaymentURL(ctx, order.FinalAmount, OrderInfoForPayment(order.ID))
	if err != nil {
		u.logger.Error("payment link generation failed", "order_id", order.ID, "error", err)
		return CreatePaymentLinkOutput{}, NewHTTPError(http.StatusBadGateway, "failed to create payment link")
	}
	return CreatePaymentLinkOutput{URL: url}, nil
}
