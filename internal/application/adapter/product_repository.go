// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// ProductFilter defines filter options for listing products.
type ProductFilter struct {
	Search    string // case-insensitive name match
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string // whitelisted column, defaults to created_at
	SortDesc  bool
}

// ProductPagination defines pagination options.
type ProductPagination struct {
	Page     int
	PageSize int
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create inserts a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter.
	List(ctx context.Context, filter ProductFilter, pagination ProductPagination) (*entity.ProductListResult, error)

	// Update persists changed product fields. Price changes never touch
	// existing orders' stored totals.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error
}
