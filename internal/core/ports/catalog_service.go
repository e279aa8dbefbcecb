package ports

import (
	"context"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
)

// CreateProductInput carries all data needed to add a catalog entry.
type CreateProductInput struct {
	Title       string
	Price       float64
	Stock       int
	MostWanted  bool
	Description string
	CategoryID  int64
}

// UpdateProductInput is the partial counterpart of CreateProductInput.
type UpdateProductInput struct {
	Title       *string
	Price       *float64
	Stock       *int
	MostWanted  *bool
	Description *string
	CategoryID  *int64
}

// CatalogService defines the product, category, and picture use cases.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListMostWanted(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) (*domain.Product, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) (*domain.Category, error)

	ListPictures(ctx context.Context, productID int64) ([]domain.Picture, error)
	GetPicture(ctx context.Context, id int64) (*domain.Picture, error)
	CreatePicture(ctx context.Context, productID int64, url string) (*domain.Picture, error)
	UpdatePicture(ctx context.Context, id int64, url string) (*domain.Picture, error)
	DeletePicture(ctx context.Context, id int64) (*domain.Picture, error)
}
