// Package product contains product-related use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/adapter"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// UpdateProductInput represents the input for product updates. Nil pointers
// leave the corresponding field unchanged.
type UpdateProductInput struct {
	ProductID    uuid.UUID
	Name         *string
	PricePerUnit *decimal.Decimal
}

// UpdateProductOutput represents the output of product updates.
type UpdateProductOutput struct {
	Product *ProductOutput
}

// UpdateProductUseCase handles product update logic. Price changes apply to
// future orders only; existing orders keep their stored totals.
type UpdateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product update.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"product not found",
				domainerror.ErrProductNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNameRequired,
				"name is required",
				domainerror.ErrProductNameRequired,
			)
		}
		product.Name = name
	}
	if input.PricePerUnit != nil {
		if input.PricePerUnit.IsNegative() {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeInvalidUnitPrice,
				"pricePerUnit must not be negative",
				domainerror.ErrInvalidUnitPrice,
			)
		}
		product.PricePerUnit = *input.PricePerUnit
	}
	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &UpdateProductOutput{Product: newProductOutput(product)}, nil
}
