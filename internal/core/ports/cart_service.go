package ports

import (
	"context"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
)

// CartItemInput is one product/quantity pair supplied by the client.
type CartItemInput struct {
	ProductID int64
	Quantity  int
}

// CartService defines the cart use cases.
type CartService interface {
	// Get returns the cart lines of the given user, joined with product data.
	Get(ctx context.Context, userID int64) ([]domain.CartLine, error)
	// Update replaces the cart's item set after validating product existence
	// and stock, returning the resulting lines.
	Update(ctx context.Context, userID int64, items []CartItemInput) ([]domain.CartLine, error)
}
