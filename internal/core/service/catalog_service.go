package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
	"github.com/mi-ecommerce/marketplace-api/internal/core/ports"
)

// CatalogService implements product, category, and picture management.
type CatalogService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	pictures   ports.PictureRepository
	logger     zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, categories ports.CategoryRepository, pictures ports.PictureRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		pictures:   pictures,
		logger:     logger,
	}
}

// --- Products ---

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *CatalogService) ListMostWanted(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindMostWanted(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// CreateProduct adds a catalog entry. The referenced category must exist.
func (s *CatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	created, err := s.products.Insert(ctx, &domain.Product{
		Title:       input.Title,
		Price:       input.Price,
		Stock:       input.Stock,
		MostWanted:  input.MostWanted,
		Description: input.Description,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", created.ProductID).Str("title", created.Title).Msg("product created")
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, input ports.UpdateProductInput) (*domain.Product, error) {
	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	matched, err := s.products.UpdateByID(ctx, id, ports.ProductUpdate{
		Title:       input.Title,
		Price:       input.Price,
		Stock:       input.Stock,
		MostWanted:  input.MostWanted,
		Description: input.Description,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrProductNotFound
	}

	return s.products.FindByID(ctx, id)
}

// DeleteProduct removes a product and its attached pictures.
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.products.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.pictures.DeleteByProduct(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("product_id", id).Msg("failed to delete product pictures")
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return product, nil
}

// --- Categories ---

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	created, err := s.categories.Insert(ctx, &domain.Category{Name: name})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("category_id", created.CategoryID).Str("name", name).Msg("category created")
	return created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error) {
	matched, err := s.categories.UpdateByID(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return s.categories.FindByID(ctx, id)
}

// DeleteCategory removes a category unless products still reference it.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, domain.ErrCategoryInUse
	}

	if err := s.categories.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("category_id", id).Msg("category deleted")
	return category, nil
}

// --- Pictures ---

func (s *CatalogService) ListPictures(ctx context.Context, productID int64) ([]domain.Picture, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.pictures.FindByProduct(ctx, productID)
}

func (s *CatalogService) GetPicture(ctx context.Context, id int64) (*domain.Picture, error) {
	return s.pictures.FindByID(ctx, id)
}

func (s *CatalogService) CreatePicture(ctx context.Context, productID int64, url string) (*domain.Picture, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.pictures.Insert(ctx, &domain.Picture{URL: url, ProductID: productID})
}

func (s *CatalogService) UpdatePicture(ctx context.Context, id int64, url string) (*domain.Picture, error) {
	matched, err := s.pictures.UpdateByID(ctx, id, url)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrPictureNotFound
	}
	return s.pictures.FindByID(ctx, id)
}

func (s *CatalogService) DeletePicture(ctx context.Context, id int64) (*domain.Picture, error) {
	picture, err := s.pictures.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.pictures.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	return picture, nil
}
