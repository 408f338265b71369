package repository

import (
	"time"

	"catalog-service/models"

	"gorm.io/gorm"
)

// reconcileVariants converges the stored variant set for a product onto
// the incoming one: variants carrying a positive id are updated in place,
// stored rows missing from the incoming set are deleted, and id-less
// variants are inserted with freshly generated ids. The statement order
// (updates, deletions, insertions) is fixed; the three sets are disjoint
// by construction. Must run inside the caller's transaction.
func (r *GormProductRepository) reconcileVariants(tx *gorm.DB, productID int64, incoming []models.Variant, now time.Time) error {
	var storedIDs []int64
	if err := tx.Model(&models.Variant{}).
		Where("product_id = ?", productID).
		Pluck("id", &storedIDs).Error; err != nil {
		return err
	}

	var existing, added []models.Variant
	for _, v := range incoming {
		if v.ID > 0 {
			existing = append(existing, v)
		} else {
			added = append(added, v)
		}
	}

	keep := make(map[int64]bool, len(existing))
	for _, v := range existing {
		keep[v.ID] = true
		if err := tx.Exec(
			`UPDATE variants SET title = ?, sku = ?, price = ?, option1 = ?, option2 = ?, available = ?, updated_at = ? WHERE id = ? AND product_id = ?`,
			v.Title, v.SKU, v.Price, v.Option1, v.Option2, v.Available, now, v.ID, productID,
		).Error; err != nil {
			return err
		}
	}

	var idsToDelete []int64
	for _, id := range storedIDs {
		if !keep[id] {
			idsToDelete = append(idsToDelete, id)
		}
	}
	if len(idsToDelete) > 0 {
		if err := tx.Exec(
			`DELETE FROM variants WHERE product_id = ? AND id IN ?`,
			productID, idsToDelete,
		).Error; err != nil {
			return err
		}
	}

	return r.insertVariants(tx, productID, added, now)
}

// insertVariants writes each variant as a brand-new row with a generated
// id and created_at = updated_at = now. The slice elements are mutated so
// callers observe the assigned ids.
func (r *GormProductRepository) insertVariants(tx *gorm.DB, productID int64, variants []models.Variant, now time.Time) error {
	for i := range variants {
		v := &variants[i]
		v.ID = r.ids.NextID()
		v.ProductID = productID
		v.CreatedAt = now
		v.UpdatedAt = now
		if err := tx.Exec(
			`INSERT INTO variants (id, product_id, title, sku, price, available, option1, option2, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			v.ID, v.ProductID, v.Title, v.SKU, v.Price, v.Available, v.Option1, v.Option2, now, now,
		).Error; err != nil {
			return err
		}
	}
	return nil
}
