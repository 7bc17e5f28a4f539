package repository

import (
	"context"

	"github.com/vandev268/fastfood-server/internal/domain/model"
)

type CouponRepository interface {
	// FindActiveByID returns ErrNotFound for missing, inactive or expired
	// coupons.
	FindActiveByID(ctx context.Context, couponID int64) (model.Coupon, error)

	IncrementUsage(ctx context.Context, couponID int64) error
}
