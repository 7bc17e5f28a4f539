package repository

import (
	"context"

	"github.com/vandev268/fastfood-server/internal/domain/model"
)

type DraftItemRepository interface {
	// ListByCode returns the staged items of one draft session with their
	// table links preloaded.
	ListByCode(ctx context.Context, draftCode string) ([]model.DraftItem, error)

	// DeleteByCode bulk-clears the session. Returns the rows removed.
	DeleteByCode(ctx context.Context, draftCode string) (int64, error)
}
