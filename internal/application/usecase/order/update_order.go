// Package order contains order-related use cases.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// UpdateOrderInput represents the input for order updates. Nil pointers
// leave the corresponding field unchanged.
type UpdateOrderInput struct {
	OrderID       uuid.UUID
	ClientID      *uuid.UUID
	ProductID     *uuid.UUID
	ClassID       *uuid.UUID
	GenreID       *uuid.UUID
	Description   *string
	Week          *string
	PagesOrSlides *int
	OrderDate     *string
}

// UpdateOrderOutput represents the output of order updates.
type UpdateOrderOutput struct {
	Order *OrderOutput
}

// UpdateOrderUseCase handles order update logic. Changing the quantity or
// the product recomputes the stored total from the product's current unit
// price within the same write.
type UpdateOrderUseCase struct {
	orderRepo   adapter.OrderRepository
	clientRepo  adapter.ClientRepository
	productRepo adapter.ProductRepository
	zone        *businesstime.Zone
}

// NewUpdateOrderUseCase creates a new UpdateOrderUseCase instance.
func NewUpdateOrderUseCase(
	orderRepo adapter.OrderRepository,
	clientRepo adapter.ClientRepository,
	productRepo adapter.ProductRepository,
	zone *businesstime.Zone,
) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		zone:        zone,
	}
}

// Execute performs the order update.
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, input UpdateOrderInput) (*UpdateOrderOutput, error) {
	order, err := uc.orderRepo.FindByID(ctx, input.OrderID)
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

	if input.ClientID != nil {
		if _, err := uc.clientRepo.FindByID(ctx, *input.ClientID); err != nil {
			if errors.Is(err, domainerror.ErrClientNotFound) {
				return nil, domainerror.NewClientError(
					domainerror.ErrCodeClientNotFound,
					"client not found",
					domainerror.ErrClientNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find client: %w", err)
		}
		order.ClientID = *input.ClientID
	}

	repriceNeeded := false

	if input.ProductID != nil && *input.ProductID != order.ProductID {
		order.ProductID = *input.ProductID
		repriceNeeded = true
	}

	if input.PagesOrSlides != nil {
		if *input.PagesOrSlides <= 0 {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeInvalidQuantity,
				"pagesOrSlides must be a positive integer",
				domainerror.ErrInvalidQuantity,
			)
		}
		order.PagesOrSlides = *input.PagesOrSlides
		repriceNeeded = true
	}

	if input.ClassID != nil {
		order.ClassID = input.ClassID
	}
	if input.GenreID != nil {
		order.GenreID = input.GenreID
	}
	if input.Description != nil {
		order.Description = *input.Description
	}
	if input.Week != nil {
		order.Week = *input.Week
	}
	if input.OrderDate != nil {
		parsed, err := uc.zone.ParseLocal(*input.OrderDate)
		if err != nil {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeInvalidOrderDate,
				fmt.Sprintf("invalid orderDate %q", *input.OrderDate),
				domainerror.ErrInvalidOrderDate,
			)
		}
		order.CreatedAt = parsed.UTC()
	}

	if repriceNeeded {
		product, err := uc.productRepo.FindByID(ctx, order.ProductID)
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
		order.Reprice(product.PricePerUnit)
	}

	order.UpdatedAt = time.Now().UTC()

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	refs, err := uc.orderRepo.FindByIDWithRefs(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated order: %w", err)
	}

	return &UpdateOrderOutput{Order: newOrderOutput(refs)}, nil
}
