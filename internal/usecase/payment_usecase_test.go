package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	"github.com/vandev268/fastfood-server/internal/usecase"
)

type paymentFixture struct {
	repos     *txReposStub
	scheduler *schedulerStub
	vnpay     *gatewayStub
	momo      *gatewayStub
	notifier  *notifierStub
	uc        *usecase.PaymentUsecase
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{
		repos:     newTxReposStub(),
		scheduler: &schedulerStub{},
		vnpay:     &gatewayStub{url: "https://vnpay.example/pay"},
		momo:      &gatewayStub{url: "https://momo.example/pay"},
		notifier:  &notifierStub{},
	}
	f.uc = usecase.NewPaymentUsecase(
		&txManagerStub{repos: f.repos},
		f.scheduler, f.vnpay, f.momo, f.notifier, testLogger(),
	)
	return f
}

func (f *paymentFixture) seedPendingOrder(method model.PaymentMethod, finalAmount int64) {
	f.repos.orders.orders[42] = model.Order{
		ID: 42, Channel: model.OrderChannelOnline, Status: model.OrderStatusPending,
		FinalAmount: finalAmount,
		Payment:     model.Payment{Method: method, Status: model.PaymentStatusPending},
	}
}

func TestOrderIDFromPaymentInfo(t *testing.T) {
	id, err := usecase.OrderIDFromPaymentInfo("Thanh toan don hang #42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = usecase.OrderIDFromPaymentInfo("no marker here")
	assert.Error(t, err)

	_, err = usecase.OrderIDFromPaymentInfo("order #abc")
	assert.Error(t, err)

	_, err = usecase.OrderIDFromPaymentInfo("order #-3")
	assert.Error(t, err)
}

func TestHandleVNPayCallback_Success(t *testing.T) {
	f := newPaymentFixture()
	f.seedPendingOrder(model.PaymentMethodVNPay, 136500)

	out, err := f.uc.HandleVNPayCallback(context.Background(), usecase.VNPayCallbackInput{
		OrderInfo:     "Thanh toan don hang #42",
		ResponseCode:  "00",
		Amount:        "13650000", // VNPay multiplies by 100
		TransactionNo: "VNP123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.OrderID)
	assert.Equal(t, model.PaymentStatusSucceeded, out.Status)

	order := f.repos.orders.orders[42]
	assert.Equal(t, model.OrderStatusConfirmed, order.Status)
	assert.Equal(t, model.PaymentStatusSucceeded, order.Payment.Status)
	assert.Equal(t, "VNP123", order.Payment.TransactionID)
	assert.NotNil(t, order.Payment.PaidAt)

	assert.Equal(t, []int64{42}, f.scheduler.cancelled)
	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, model.OrderStatusConfirmed, f.notifier.events[0].Status)
}

func TestHandleVNPayCallback_SuspiciousCodeStillSucceeds(t *testing.T) {
	f := newPaymentFixture()
	f.seedPendingOrder(model.PaymentMethodVNPay, 136500)

	out, err := f.uc.HandleVNPayCallback(context.Background(), usecase.VNPayCallbackInput{
		OrderInfo:     "Thanh toan don hang #42",
		ResponseCode:  "07",
		Amount:        "13650000",
		TransactionNo: "VNP124",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusSucceeded, out.Status)
}

func TestHandleVNPayCallback_FailureCode(t *testing.T) {
	f := newPaymentFixture()
	f.seedPendingOrder(model.PaymentMethodVNPay, 136500)

	out, err := f.uc.HandleVNPayCallback(context.Background(), usecase.VNPayCallbackInput{
		OrderInfo:     "Thanh toan don hang #42",
		ResponseCode:  "24",
		Amount:        "13650000",
		TransactionNo: "VNP125",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusFailed, out.Status)

	// Order stays Pending so a fresh link can be requested; the cancel job
	// keeps running.
	order := f.repos.orders.orders[42]
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.PaymentStatusFailed, order.Payment.Status)
	assert.Equal(t, "VNP125", order.Payment.TransactionID)
	assert.Empty(t, f.scheduler.cancelled)
	assert.Empty(t, f.notifier.events)
}

func TestHandleVNPayCallback_AmountMismatch(t *testing.T) {
	f := newPaymentFixture()
	f.seedPendingOrder(model.PaymentMethodVNPay, 136500)

	_, err := f.uc.HandleVNPayCallback(context.Background(), usecase.VNPayCallbackInput{
		OrderInfo:     "Thanh toan don hang #42",
		ResponseCode:  "00",
		Amount:        "99900", // 999 after the /100, not 136500
		TransactionNo: "VNP126",
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, "payment amount does not match order amount", he.Message)

	// Untouched on rejection.
	order := f.repos.orders.orders[42]
	assert.Equal(t, model.PaymentStatusPending, order.Payment.Status)
	assert.Empty(t, order.Payment.TransactionID)
	assert.Empty(t, f.scheduler.cancelled)
}

func TestHandleVNPayCallback_DoublePayment(t *testing.T) {
	f := newPaymentFixture()
	f.repos.orders.orders[42] = model.Order{
		ID: 42, Status: model.OrderStatusConfirmed, FinalAmount: 136500,
		Payment: model.Payment{Method: model.PaymentMethodVNPay, Status: model.PaymentStatusSucceeded, TransactionID: "VNP123"},
	}

	_, err := f.uc.HandleVNPayCallback(context.Background(), usecase.VNPayCallbackInput{
		OrderInfo:     "Thanh toan don hang #42",
		ResponseCode:  "00",
		Amount:        "13650000",
		TransactionNo: "VNP127",
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, "order has already been paid", he.Message)

	// First transaction id survives.
	assert.Equal(t, "VNP123", f.repos.orders.orders[42].Payment.TransactionID)
}

func TestHandleVNPayCallback_MalformedPayload(t *testing.T) {
	f := newPaymentFixture()

	cases := []usecase.VNPayCallbackInput{
		{},
		{OrderInfo: "Thanh toan don hang #42", ResponseCode: "00", Amount: "100"},
		{OrderInfo: "Thanh toan don hang #42", ResponseCode: "00", Amount: "not-a-number", TransactionNo: "x"},
		{OrderInfo: "no marker", ResponseCode: "00", Amount: "100", TransactionNo: "x"},
	}
	for _, in := range cases {
		_, err := f.uc.HandleVNPayCallback(context.Background(), in)
		he, ok := usecase.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Status)
	}
}

func TestHandleVNPayCallback_OrderNotFound(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.uc.HandleVNPayCallback(context.Background(), usecase.VNPayCallbackInput{
		OrderInfo:     "Thanh toan don hang #77",
		ResponseCode:  "00",
		Amount:        "100",
		TransactionNo: "x",
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestHandleMomoCallback_Success(t *testing.T) {
	f := newPaymentFixture()
	f.seedPendingOrder(model.PaymentMethodMOMO, 117650)

	out, err := f.uc.HandleMomoCallback(context.Background(), usecase.MomoCallbackInput{
		OrderInfo:  "Thanh toan don hang #42",
		ResultCode: "0",
		Amount:     "117650", // MoMo sends the plain amount
		TransID:    "MOMO555",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusSucceeded, out.Status)

	order := f.repos.orders.orders[42]
	assert.Equal(t, model.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "MOMO555", order.Payment.TransactionID)
	assert.Equal(t, []int64{42}, f.scheduler.cancelled)
}

func TestHandleMomoCallback_FailureCode(t *testing.T) {
	f := newPaymentFixture()
	f.seedPendingOrder(model.PaymentMethodMOMO, 117650)

	out, err := f.uc.HandleMomoCallback(context.Background(), usecase.MomoCallbackInput{
		OrderInfo:  "Thanh toan don hang #42",
		ResultCode: "1006",
		Amount:     "117650",
		TransID:    "MOMO556",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusFailed, out.Status)
	assert.Equal(t, model.OrderStatusPending, f.repos.orders.orders[42].Status)
}

func TestCreatePaymentLink_VNPay(t *testing.T) {
	f := newPaymentFixture()
	f.seedPendingOrder(model.PaymentMethodVNPay, 136500)

	out, err := f.uc.CreatePaymentLink(context.Background(), usecase.CreatePaymentLinkInput{OrderID: 42})
	require.NoError(t, err)
	assert.Equal(t, "https://vnpay.example/pay", out.URL)
	require.Len(t, f.vnpay.amounts, 1)
	assert.Equal(t, int64(136500), f.vnpay.amounts[0])
	assert.Equal(t, "Thanh toan don hang #42", f.vnpay.orderInfos[0])
}

func TestCreatePaymentLink_AlreadyPaid(t *testing.T) {
	f := newPaymentFixture()
	f.repos.orders.orders[42] = model.Order{
		ID: 42, Status: model.OrderStatusConfirmed, FinalAmount: 136500,
		Payment: model.Payment{Method: model.PaymentMethodVNPay, Status: model.PaymentStatusSucceeded},
	}

	_, err := f.uc.CreatePaymentLink(context.Background(), usecase.CreatePaymentLinkInput{OrderID: 42})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
}

func TestCreatePaymentLink_UnsupportedMethod(t *testing.T) {
	f := newPaymentFixture()
	f.seedPendingOrder(model.PaymentMethodCash, 136500)

	_, err := f.uc.CreatePaymentLink(context.Background(), usecase.CreatePaymentLinkInput{OrderID: 42})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "unsupported payment method", he.Message)
}

func TestCreatePaymentLink_GatewayFailure(t *testing.T) {
	f := newPaymentFixture()
	f.seedPendingOrder(model.PaymentMethodMOMO, 117650)
	f.momo.err = errors.New("gateway down")

	_, err := f.uc.CreatePaymentLink(context.Background(), usecase.CreatePaymentLinkInput{OrderID: 42})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, he.Status)
}
