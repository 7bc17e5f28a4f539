package repository

import (
	"context"

	"github.com/vandev268/fastfood-server/internal/domain/model"
)

type TableRepository interface {
	FindByID(ctx context.Context, tableID int64) (model.Table, error)
	UpdateStatusBulk(ctx context.Context, tableIDs []int64, status model.TableStatus) error
}
