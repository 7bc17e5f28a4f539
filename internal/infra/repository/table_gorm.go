package repository

import (
	"context"
	"errors"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	repo "github.com/vandev268/fastfood-server/internal/repository"

	"gorm.io/gorm"
)

type TableGormRepository struct {
	db *gorm.DB
}

func NewTableGormRepository(db *gorm.DB) *TableGormRepository {
	return &TableGormRepository{db: db}
}

func (r *TableGormRepository) FindByID(ctx context.Context, tableID int64) (model.Table, error) {
	var t model.Table
	err := r.db.WithContext(ctx).First(&t, "id = ?", tableID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Table{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Table{}, err
	}
	return t, nil
}

func (r *TableGormRepository) UpdateStatusBulk(ctx context.Context, tableIDs []int64, status model.TableStatus) error {
	if len(tableIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Table{}).
		Where("id IN ?", tableIDs).
		Update("status", status).Error
}
