package ports

import (
	"context"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
)

// ProductUpdate carries a partial product field replacement.
type ProductUpdate struct {
	Title       *string
	Price       *float64
	Stock       *int
	MostWanted  *bool
	Description *string
	CategoryID  *int64
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindMostWanted(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateByID(ctx context.Context, id int64, fields ProductUpdate) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	Insert(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateByID(ctx context.Context, id int64, name string) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

// PictureRepository defines persistence operations for product pictures.
type PictureRepository interface {
	FindByProduct(ctx context.Context, productID int64) ([]domain.Picture, error)
	FindByID(ctx context.Context, id int64) (*domain.Picture, error)
	Insert(ctx context.Context, p *domain.Picture) (*domain.Picture, error)
	UpdateByID(ctx context.Context, id int64, url string) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByProduct(ctx context.Context, productID int64) error
}
