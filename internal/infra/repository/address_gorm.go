package repository

import (
	"context"
	"errors"

	"github.com/vandev268/fastfood-server/internal/domain/model"
	repo "github.com/vandev268/fastfood-server/internal/repository"

	"gorm.io/gorm"
)

type AddressGormRepository struct {
	db *gorm.DB
}

func NewAddressGormRepository(db *gorm.DB) *AddressGormRepository {
	return &AddressGormRepository{db: db}
}

func (r *AddressGormRepository) FindByID(ctx context.Context, addressID int64) (model.Address, error) {
	var a model.Address
	err := r.db.WithContext(ctx).First(&a, "id = ?", addressID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Address{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Address{}, err
	}
	return a, nil
}

func (r *AddressGormRepository) Create(ctx context.Context, address model.Address) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&address).Error; err != nil {
		return 0, err
	}
	return address.ID, nil
}
