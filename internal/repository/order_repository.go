package repository

import (
	"context"

	"github.com/vandev268/fastfood-server/internal/domain/model"
)

type OrderListFilter struct {
	Page    int
	Limit   int
	Channel model.OrderChannel
	Status  model.OrderStatus
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)

	// UpdateStatus also records the staff member performing the change.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, handlerID int64) error

	// UpdatePayment overwrites the embedded payment; status is changed too
	// when non-empty.
	UpdatePayment(ctx context.Context, orderID int64, status model.OrderStatus, payment model.Payment) error

	// ConnectTables links the order to its dine-in tables.
	ConnectTables(ctx context.Context, orderID int64, tableIDs []int64) error
}
