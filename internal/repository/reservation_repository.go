package repository

import (
	"context"

	"github.com/vandev268/fastfood-server/internal/domain/model"
)

type ReservationRepository interface {
	FindByID(ctx context.Context, reservationID int64) (model.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID int64, status model.ReservationStatus) error
}
