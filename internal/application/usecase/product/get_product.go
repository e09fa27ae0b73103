package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/adapter"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// GetProductInput represents the input for fetching a single product.
type GetProductInput struct {
	ProductID uuid.UUID
}

// GetProductOutput represents the output of fetching a single product.
type GetProductOutput struct {
	Product *ProductOutput
}

// GetProductUseCase handles fetching a single product.
type GetProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewGetProductUseCase creates a new GetProductUseCase instance.
func NewGetProductUseCase(productRepo adapter.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product fetch.
func (uc *GetProductUseCase) Execute(ctx context.Context, input GetProductInput) (*GetProductOutput, error) {
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

	return &GetProductOutput{Product: newProductOutput(product)}, nil
}
