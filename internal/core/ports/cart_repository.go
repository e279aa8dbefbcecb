package ports

import (
	"context"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
)

// CartRepository defines persistence operations for carts. Carts are keyed by
// their owner: every user has at most one.
type CartRepository interface {
	// Create stores a new empty cart for the given user and assigns its id.
	Create(ctx context.Context, userID int64) (*domain.Cart, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Cart, error)
	// ReplaceItems swaps the cart's item set and reports how many carts matched.
	ReplaceItems(ctx context.Context, userID int64, items []domain.CartItem) (int64, error)
}
