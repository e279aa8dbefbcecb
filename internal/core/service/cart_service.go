package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
	"github.com/mi-ecommerce/marketplace-api/internal/core/ports"
)

// CartService implements cart reads and item replacement.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// Get returns the user's cart lines joined with product title and price.
func (s *CartService) Get(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toLines(ctx, cart.Items)
}

// Update replaces the cart's item set. Every referenced product must exist
// and hold enough stock for the requested quantity.
func (s *CartService) Update(ctx context.Context, userID int64, items []ports.CartItemInput) ([]domain.CartLine, error) {
	replacement := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInsufficientStock)
		}
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < item.Quantity {
			return nil, fmt.Errorf("%w %d", domain.ErrInsufficientStock, item.ProductID)
		}
		replacement = append(replacement, domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	matched, err := s.carts.ReplaceItems(ctx, userID, replacement)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrCartNotFound
	}

	s.logger.Info().Int64("user_id", userID).Int("items", len(replacement)).Msg("cart updated")

	return s.toLines(ctx, replacement)
}

func (s *CartService) toLines(ctx context.Context, items []domain.CartItem) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			// A product removed from the catalog drops silently out of the cart.
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		lines = append(lines, domain.CartLine{
			ProductID: item.ProductID,
			Title:     product.Title,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}
	return lines, nil
}
