package repository

import (
	"context"

	"github.com/vandev268/fastfood-server/internal/domain/model"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log model.AuditLog) error
}
