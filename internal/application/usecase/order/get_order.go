// Package order contains order-related use cases.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/adapter"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// GetOrderInput represents the input for fetching a single order.
type GetOrderInput struct {
	OrderID uuid.UUID
}

// GetOrderOutput represents the output of fetching a single order.
type GetOrderOutput struct {
	Order *OrderOutput
}

// GetOrderUseCase handles fetching a single order with its references.
type GetOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewGetOrderUseCase creates a new GetOrderUseCase instance.
func NewGetOrderUseCase(orderRepo adapter.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the order fetch.
func (uc *GetOrderUseCase) Execute(ctx context.Context, input GetOrderInput) (*GetOrderOutput, error) {
	refs, err := uc.orderRepo.FindByIDWithRefs(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOrderNotFound) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return &GetOrderOutput{Order: newOrderOutput(refs)}, nil
}
