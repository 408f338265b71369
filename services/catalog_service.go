package services

import (
	"context"

	"catalog-service/models"
	"catalog-service/repository"
)

// CatalogService is the business-logic interface consumed by the HTTP
// layer. Persistence errors pass through unchanged.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsSortedBy(ctx context.Context, field, direction string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (int64, error)
	UpdateProduct(ctx context.Context, product *models.Product, id int64) error
	DeleteProduct(ctx context.Context, id int64) error
	CountProducts(ctx context.Context) (int64, error)
}

type catalogServiceImpl struct {
	repo repository.ProductRepository
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{repo: repo}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *catalogServiceImpl) ListProductsSortedBy(ctx context.Context, field, direction string) ([]models.Product, error) {
	return s.repo.FindAllSortedBy(ctx, field, direction)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *catalogServiceImpl) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	return s.repo.FindByTitleContainingIgnoreCase(ctx, query)
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, product *models.Product) (int64, error) {
	return s.repo.Save(ctx, product)
}

// UpdateProduct rejects unknown ids so the HTTP layer can answer 404;
// the repository update itself is a zero-row no-op on absent rows.
func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, product *models.Product, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return repository.ErrProductNotFound
	}
	return s.repo.Update(ctx, product, id)
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *catalogServiceImpl) CountProducts(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
