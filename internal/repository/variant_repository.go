package repository

import "context"

type VariantRepository interface {
	// DecreaseStockIfEnough decrements stock only when at least qty
	// remains at decrement time. Returns false when stock is short.
	DecreaseStockIfEnough(ctx context.Context, variantID int64, qty int64) (bool, error)

	// IncreaseStock restocks on cancellation.
	IncreaseStock(ctx context.Context, variantID int64, qty int64) error
}
