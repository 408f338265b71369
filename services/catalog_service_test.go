package services

import (
	"context"
	"errors"
	"testing"

	"catalog-service/models"
	"catalog-service/repository"

	"github.com/stretchr/testify/assert"
)

// fakeProductRepository records calls and returns canned results.
type fakeProductRepository struct {
	products []models.Product
	exists   bool
	count    int64

	countErr error
	saveErr  error

	savedProducts []*models.Product
	updateCalled  int
	updatedID     int64
	deletedID     int64
	lastSort      [2]string
	lastQuery     string
	nextID        int64
}

func (f *fakeProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepository) FindAllSortedBy(ctx context.Context, field, direction string) ([]models.Product, error) {
	f.lastSort = [2]string{field, direction}
	return f.products, nil
}

func (f *fakeProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (f *fakeProductRepository) FindByTitleContainingIgnoreCase(ctx context.Context, substring string) ([]models.Product, error) {
	f.lastQuery = substring
	return f.products, nil
}

func (f *fakeProductRepository) Save(ctx context.Context, product *models.Product) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.nextID++
	product.ID = f.nextID
	f.savedProducts = append(f.savedProducts, product)
	return product.ID, nil
}

func (f *fakeProductRepository) Update(ctx context.Context, product *models.Product, id int64) error {
	f.updateCalled++
	f.updatedID = id
	return nil
}

func (f *fakeProductRepository) DeleteByID(ctx context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func (f *fakeProductRepository) Count(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

func (f *fakeProductRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return f.exists, nil
}

func TestUpdateProduct_UnknownIDIsNotFound(t *testing.T) {
	repo := &fakeProductRepository{exists: false}
	svc := NewCatalogService(repo)

	err := svc.UpdateProduct(context.Background(), &models.Product{Title: "X"}, 404)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.Zero(t, repo.updateCalled)
}

func TestUpdateProduct_ForwardsWhenProductExists(t *testing.T) {
	repo := &fakeProductRepository{exists: true}
	svc := NewCatalogService(repo)

	err := svc.UpdateProduct(context.Background(), &models.Product{Title: "X"}, 42)
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalled)
	assert.Equal(t, int64(42), repo.updatedID)
}

func TestGetProduct_PropagatesNotFoundUnchanged(t *testing.T) {
	svc := NewCatalogService(&fakeProductRepository{})

	_, err := svc.GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestSearchProducts_ForwardsQuery(t *testing.T) {
	repo := &fakeProductRepository{}
	svc := NewCatalogService(repo)

	_, err := svc.SearchProducts(context.Background(), "sneak")
	assert.NoError(t, err)
	assert.Equal(t, "sneak", repo.lastQuery)
}

func TestListProductsSortedBy_ForwardsSortInput(t *testing.T) {
	repo := &fakeProductRepository{}
	svc := NewCatalogService(repo)

	_, err := svc.ListProductsSortedBy(context.Background(), "title", "asc")
	assert.NoError(t, err)
	assert.Equal(t, [2]string{"title", "asc"}, repo.lastSort)
}

func TestCreateProduct_ReturnsAssignedID(t *testing.T) {
	repo := &fakeProductRepository{}
	svc := NewCatalogService(repo)

	id, err := svc.CreateProduct(context.Background(), &models.Product{Title: "X"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestDeleteProduct_ForwardsID(t *testing.T) {
	repo := &fakeProductRepository{}
	svc := NewCatalogService(repo)

	err := svc.DeleteProduct(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), repo.deletedID)
}

func TestCreateProduct_PropagatesRepositoryError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewCatalogService(&fakeProductRepository{saveErr: boom})

	_, err := svc.CreateProduct(context.Background(), &models.Product{Title: "X"})
	assert.ErrorIs(t, err, boom)
}
