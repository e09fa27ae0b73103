// Package product contains product-related use cases.
package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	Name         string
	PricePerUnit decimal.Decimal
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *ProductOutput
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNameRequired,
			"name is required",
			domainerror.ErrProductNameRequired,
		)
	}

	if input.PricePerUnit.IsNegative() {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeInvalidUnitPrice,
			"pricePerUnit must not be negative",
			domainerror.ErrInvalidUnitPrice,
		)
	}

	product := entity.NewProduct(name, input.PricePerUnit)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{Product: newProductOutput(product)}, nil
}
