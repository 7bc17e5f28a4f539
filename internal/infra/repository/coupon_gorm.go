package repository

import (
	"context"
	"errors"
	"time"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	repo "github.com/vandev268/fastfood-server/internal/repository"

	"gorm.io/gorm"
)

type CouponGormRepository struct {
	db *gorm.DB
}

func NewCouponGormRepository(db *gorm.DB) *CouponGormRepository {
	return &CouponGormRepository{db: db}
}

func (r *CouponGormRepository) FindActiveByID(ctx context.Context, couponID int64) (model.Coupon, error) {
	var c model.Coupon
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", couponID, true).
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Coupon{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Coupon{}, err
	}
	return c, nil
}

func (r *CouponGormRepository) IncrementUsage(ctx context.Context, couponID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Coupon{}).
		Where("id = ?", couponID).
		Update("usage_count", gorm.Expr("usage_count + 1"))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
