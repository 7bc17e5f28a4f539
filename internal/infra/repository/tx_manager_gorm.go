package repository

import (
	"context"

	repo "github.com/vandev268/fastfood-server/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders       repo.OrderRepository
	orderItems   repo.OrderItemRepository
	variants     repo.VariantRepository
	coupons      repo.CouponRepository
	cartItems    repo.CartItemRepository
	draftItems   repo.DraftItemRepository
	tables       repo.TableRepository
	reservations repo.ReservationRepository
	addresses    repo.AddressRepository
	users        repo.UserRepository
	auditLogs    repo.AuditLogRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository     { return r.orderItems }
func (r *txReposGorm) Variants() repo.VariantRepository         { return r.variants }
func (r *txReposGorm) Coupons() repo.CouponRepository           { return r.coupons }
func (r *txReposGorm) CartItems() repo.CartItemRepository       { return r.cartItems }
func (r *txReposGorm) DraftItems() repo.DraftItemRepository     { return r.draftItems }
func (r *txReposGorm) Tables() repo.TableRepository             { return r.tables }
func (r *txReposGorm) Reservations() repo.ReservationRepository { return r.reservations }
func (r *txReposGorm) Addresses() repo.AddressRepository        { return r.addresses }
func (r *txReposGorm) Users() repo.UserRepository               { return r.users }
func (r *txReposGorm) AuditLogs() repo.AuditLogRepository       { return r.auditLogs }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repos are rebuilt on the tx handle
		r := &txReposGorm{
			orders:       NewOrderGormRepository(tx),
			orderItems:   NewOrderItemGormRepository(tx),
			variants:     NewVariantGormRepository(tx),
			coupons:      NewCouponGormRepository(tx),
			cartItems:    NewCartItemGormRepository(tx),
			draftItems:   NewDraftItemGormRepository(tx),
			tables:       NewTableGormRepository(tx),
			reservations: NewReservationGormRepository(tx),
			addresses:    NewAddressGormRepository(tx),
			users:        NewUserGormRepository(tx),
			auditLogs:    NewAuditLogGormRepository(tx),
		}
		return fn(r)
	})
}
