package usecase

import (
	"context"
	"time"

	"github.com/vandev268/fastfood-server/internal/domain/model"
)

// Scheduler is the deferred auto-cancellation job queue. Both operations
// are keyed by order id; Cancel is a no-op when no job is pending.
type Scheduler interface {
	Schedule(orderID int64)
	Cancel(orderID int64)
}

// PaymentGateway builds the redirect URL a customer pays through. The
// construction itself is opaque to this core.
type PaymentGateway interface {
	GeneratePaymentURL(ctx context.Context, amount int64, orderInfo string) (string, error)
}

// OrderEvent is broadcast fire-and-forget whenever an order changes state.
type OrderEvent struct {
	OrderID       int64               `json:"order_id"`
	Channel       model.OrderChannel  `json:"channel"`
	Status        model.OrderStatus   `json:"status"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	OccurredAt    time.Time           `json:"occurred_at"`
}

type OrderNotifier interface {
	PublishOrderEvent(ctx context.Context, ev OrderEvent) error
}
