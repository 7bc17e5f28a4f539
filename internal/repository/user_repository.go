package repository

import (
	"context"

	"github.com/vandev268/fastfood-server/internal/domain/model"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, user model.User) (int64, error)
}
