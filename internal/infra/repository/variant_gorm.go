package repository

import (
	"context"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	repo "github.com/vandev268/fastfood-server/internal/repository"

	"gorm.io/gorm"
)

type VariantGormRepository struct {
	db *gorm.DB
}

func NewVariantGormRepository(db *gorm.DB) *VariantGormRepository {
	return &VariantGormRepository{db: db}
}

// Decrement is conditioned on remaining stock at decrement time, not on an
// earlier read. Zero affected rows means insufficient stock.
func (r *VariantGormRepository) DecreaseStockIfEnough(ctx context.Context, variantID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Variant{}).
		Where("id = ? AND stock >= ?", variantID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

func (r *VariantGormRepository) IncreaseStock(ctx context.Context, variantID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Variant{}).
		Where("id = ?", variantID).
		Update("stock", gorm.Expr("stock + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
