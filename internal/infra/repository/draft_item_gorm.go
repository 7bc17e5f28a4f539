package repository

import (
	"context"

	"github.com/vandev268/fastfood-server/internal/domain/model"

	"gorm.io/gorm"
)

type DraftItemGormRepository struct {
	db *gorm.DB
}

func NewDraftItemGormRepository(db *gorm.DB) *DraftItemGormRepository {
	return &DraftItemGormRepository{db: db}
}

func (r *DraftItemGormRepository) ListByCode(ctx context.Context, draftCode string) ([]model.DraftItem, error) {
	var items []model.DraftItem
	err := r.db.WithContext(ctx).
		Preload("Tables").
		Where("draft_code = ?", draftCode).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *DraftItemGormRepository) DeleteByCode(ctx context.Context, draftCode string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("draft_code = ?", draftCode).
		Delete(&model.DraftItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
