package models

import (
	"time"
)

// Product is a catalog item with one or more purchasable variants,
// persisted in the products table.
type Product struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Vendor    string    `gorm:"type:varchar(255)" json:"vendor"`
	Type      string    `gorm:"column:type;type:varchar(255)" json:"type"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
	Variants  []Variant `gorm:"foreignKey:ProductID" json:"variants"`
}

func (Product) TableName() string { return "products" }

// Variant is a purchasable configuration of a product (size, color, ...)
// with its own price and availability. ID == 0 means not yet persisted.
type Variant struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ProductID int64     `gorm:"index" json:"product_id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	SKU       string    `gorm:"column:sku;type:varchar(255)" json:"sku"`
	Price     float64   `gorm:"type:double precision" json:"price"`
	Available bool      `json:"available"`
	Option1   string    `gorm:"type:varchar(255)" json:"option1"`
	Option2   string    `gorm:"type:varchar(255)" json:"option2"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

func (Variant) TableName() string { return "variants" }

// VariantRequest is the variant payload accepted on create/update.
// A positive ID targets an existing row; zero or negative means new.
type VariantRequest struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	SKU       string  `json:"sku"`
	Price     float64 `json:"price" binding:"gte=0"`
	Available bool    `json:"available"`
	Option1   string  `json:"option1"`
	Option2   string  `json:"option2"`
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Title    string           `json:"title" binding:"required,max=255"`
	Vendor   string           `json:"vendor" binding:"max=255"`
	Type     string           `json:"type" binding:"max=255"`
	Variants []VariantRequest `json:"variants" binding:"required,min=1,dive"`
}

// ToProduct maps the request into the persisted entity shape. Timestamps
// and identifiers are assigned by the repository, not here.
func (r *ProductRequest) ToProduct() *Product {
	p := &Product{
		Title:  r.Title,
		Vendor: r.Vendor,
		Type:   r.Type,
	}
	for _, v := range r.Variants {
		p.Variants = append(p.Variants, Variant{
			ID:        v.ID,
			Title:     v.Title,
			SKU:       v.SKU,
			Price:     v.Price,
			Available: v.Available,
			Option1:   v.Option1,
			Option2:   v.Option2,
		})
	}
	return p
}
