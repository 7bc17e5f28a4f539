package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when the row does not exist.
var ErrNotFound = errors.New("not found")

// TxRepos is the set of repositories bound to one open transaction.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Variants() VariantRepository
	Coupons() CouponRepository
	CartItems() CartItemRepository
	DraftItems() DraftItemRepository
	Tables() TableRepository
	Reservations() ReservationRepository
	Addresses() AddressRepository
	Users() UserRepository
	AuditLogs() AuditLogRepository
}

// TransactionManager hides tx begin/commit/rollback from the usecases.
// Everything done inside fn commits or rolls back as one unit.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
