// Package product contains product-related use cases.
package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// ProductOutput represents a single product in the output.
type ProductOutput struct {
	ID           uuid.UUID
	Name         string
	PricePerUnit decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func newProductOutput(product *entity.Product) *ProductOutput {
	return &ProductOutput{
		ID:           product.ID,
		Name:         product.Name,
		PricePerUnit: product.PricePerUnit,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}
