package repository

import "context"

type CartItemRepository interface {
	// DeleteByIDs removes the consumed cart rows of one user.
	DeleteByIDs(ctx context.Context, userID int64, ids []int64) error
}
