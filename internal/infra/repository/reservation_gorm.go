package repository

import (
	"context"
	"errors"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	repo "github.com/vandev268/fastfood-server/internal/repository"

	"gorm.io/gorm"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) FindByID(ctx context.Context, reservationID int64) (model.Reservation, error) {
	var res model.Reservation
	err := r.db.WithContext(ctx).First(&res, "id = ?", reservationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Reservation{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *ReservationGormRepository) UpdateStatus(ctx context.Context, reservationID int64, status model.ReservationStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("id = ?", reservationID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
