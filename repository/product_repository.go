package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catalog-service/models"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned by FindByID when no product row matches.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the sole access path to product/variant storage.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindAllSortedBy(ctx context.Context, field, direction string) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindByTitleContainingIgnoreCase(ctx context.Context, substring string) ([]models.Product, error)
	Save(ctx context.Context, product *models.Product) (int64, error)
	Update(ctx context.Context, product *models.Product, id int64) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// GormProductRepository implements ProductRepository on Postgres via GORM.
// Reads use the finder API; writes run raw parameterized SQL inside a
// single transaction per operation.
type GormProductRepository struct {
	db   *gorm.DB
	ids  IDGenerator
	sort SortConfig
}

// NewGormProductRepository creates a repository with the given id
// generation strategy and sort allow-list.
func NewGormProductRepository(db *gorm.DB, ids IDGenerator, sort SortConfig) ProductRepository {
	return &GormProductRepository{db: db, ids: ids, sort: sort}
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.findAllOrdered(ctx, "updated_at DESC")
}

func (r *GormProductRepository) FindAllSortedBy(ctx context.Context, field, direction string) ([]models.Product, error) {
	f, d := r.sort.Normalize(field, direction)
	return r.findAllOrdered(ctx, fmt.Sprintf("%s %s", f, d))
}

func (r *GormProductRepository) findAllOrdered(ctx context.Context, order string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("variants.id ASC")
		}).
		Order(order).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("variants.id ASC")
		}).
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) FindByTitleContainingIgnoreCase(ctx context.Context, substring string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(substring) + "%"
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("variants.id ASC")
		}).
		Where("LOWER(title) LIKE ?", pattern).
		Order("updated_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Save inserts the product and all of its variants as new rows. Variant
// ids carried on the input are ignored; every variant goes through the
// new-variant path. Returns the assigned product id.
func (r *GormProductRepository) Save(ctx context.Context, product *models.Product) (int64, error) {
	now := time.Now().UTC()
	if product.ID <= 0 {
		product.ID = r.ids.NextID()
	}
	product.CreatedAt = now
	product.UpdatedAt = now

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`INSERT INTO products (id, title, vendor, type, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			product.ID, product.Title, product.Vendor, product.Type, now, now,
		).Error; err != nil {
			return err
		}
		return r.insertVariants(tx, product.ID, product.Variants, now)
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// Update rewrites the product row's mutable fields and reconciles the
// stored variant set against product.Variants, all in one transaction.
func (r *GormProductRepository) Update(ctx context.Context, product *models.Product, id int64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`UPDATE products SET title = ?, vendor = ?, type = ?, updated_at = ? WHERE id = ?`,
			product.Title, product.Vendor, product.Type, now, id,
		).Error; err != nil {
			return err
		}
		return r.reconcileVariants(tx, id, product.Variants, now)
	})
}

// DeleteByID removes the product and all of its variants. The variant
// delete is issued explicitly rather than relying on the store's cascade.
// Deleting an absent id is a no-op.
func (r *GormProductRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM variants WHERE product_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM products WHERE id = ?`, id).Error
	})
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormProductRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM products WHERE id = ?)`, id).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}
