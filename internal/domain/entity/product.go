package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a billable item type with a unit price. Orders snapshot the
// price into their own total at write time, so later price changes never
// retroactively alter stored order costs.
type Product struct {
	ID           uuid.UUID
	Name         string
	PricePerUnit decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProduct creates a new Product entity.
func NewProduct(name string, pricePerUnit decimal.Decimal) *Product {
	now := time.Now().UTC()

	return &Product{
		ID:           uuid.New(),
		Name:         name,
		PricePerUnit: pricePerUnit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ProductListResult represents the result of listing products.
type ProductListResult struct {
	Products   []*Product
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}
