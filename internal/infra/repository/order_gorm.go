package repository

import (
	"context"
	"errors"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	repo "github.com/vandev268/fastfood-server/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Omit("Tables").Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Tables").
		First(&o, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{})
	if f.Channel != "" {
		q = q.Where("channel = ?", f.Channel)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	offset := (f.Page - 1) * f.Limit
	err := q.Preload("Tables").
		Order("created_at DESC").
		Offset(offset).
		Limit(f.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, handlerID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"handler_id": handlerID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) UpdatePayment(ctx context.Context, orderID int64, status model.OrderStatus, payment model.Payment) error {
	fields := map[string]interface{}{
		"payment_method":         payment.Method,
		"payment_status":         payment.Status,
		"payment_transaction_id": payment.TransactionID,
		"payment_paid_at":        payment.PaidAt,
	}
	if status != "" {
		fields["status"] = status
	}

	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) ConnectTables(ctx context.Context, orderID int64, tableIDs []int64) error {
	if len(tableIDs) == 0 {
		return nil
	}
	tables := make([]model.Table, 0, len(tableIDs))
	for _, id := range tableIDs {
		tables = append(tables, model.Table{ID: id})
	}
	return r.db.WithContext(ctx).
		Model(&model.Order{ID: orderID}).
		Association("Tables").
		Append(&tables)
}
