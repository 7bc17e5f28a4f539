package repository

import (
	"context"

	"github.com/vandev268/fastfood-server/internal/domain/model"
)

type AddressRepository interface {
	FindByID(ctx context.Context, addressID int64) (model.Address, error)
	Create(ctx context.Context, address model.Address) (int64, error)
}
