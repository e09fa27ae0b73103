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

// DeleteOrderInput represents the input for order deletion.
type DeleteOrderInput struct {
	OrderID uuid.UUID
}

// DeleteOrderOutput represents the output of order deletion.
type DeleteOrderOutput struct {
	Success bool
}

// DeleteOrderUseCase handles order deletion logic.
type DeleteOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewDeleteOrderUseCase creates a new DeleteOrderUseCase instance.
func NewDeleteOrderUseCase(orderRepo adapter.OrderRepository) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the order deletion.
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, input DeleteOrderInput) (*DeleteOrderOutput, error) {
	if _, err := uc.orderRepo.FindByID(ctx, input.OrderID); err != nil {
		if errors.Is(err, domainerror.ErrOrderNotFound) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if err := uc.orderRepo.Delete(ctx, input.OrderID); err != nil {
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}

	return &DeleteOrderOutput{Success: true}, nil
}
