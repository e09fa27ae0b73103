// Package order contains order-related use cases.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// CreateOrderInput represents the input for order creation. OrderDate is an
// optional business-local date string; when empty the order is stamped with
// the current instant.
type CreateOrderInput struct {
	ClientID      uuid.UUID
	ProductID     uuid.UUID
	ClassID       *uuid.UUID
	GenreID       *uuid.UUID
	Description   string
	Week          string
	PagesOrSlides int
	OrderDate     string
}

// CreateOrderOutput represents the output of order creation.
type CreateOrderOutput struct {
	Order *OrderOutput
}

// CreateOrderUseCase handles order creation logic. The order's total is
// derived from the product's unit price at creation time and stored; later
// price changes do not touch it.
type CreateOrderUseCase struct {
	orderRepo   adapter.OrderRepository
	clientRepo  adapter.ClientRepository
	productRepo adapter.ProductRepository
	clock       adapter.Clock
	zone        *businesstime.Zone
}

// NewCreateOrderUseCase creates a new CreateOrderUseCase instance.
func NewCreateOrderUseCase(
	orderRepo adapter.OrderRepository,
	clientRepo adapter.ClientRepository,
	productRepo adapter.ProductRepository,
	clock adapter.Clock,
	zone *businesstime.Zone,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		clock:       clock,
		zone:        zone,
	}
}

// Execute performs the order creation.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	if input.PagesOrSlides <= 0 {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeInvalidQuantity,
			"pagesOrSlides must be a positive integer",
			domainerror.ErrInvalidQuantity,
		)
	}

	if _, err := uc.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

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

	createdAt := uc.clock.Now().UTC()
	if input.OrderDate != "" {
		parsed, err := uc.zone.ParseLocal(input.OrderDate)
		if err != nil {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeInvalidOrderDate,
				fmt.Sprintf("invalid orderDate %q", input.OrderDate),
				domainerror.ErrInvalidOrderDate,
			)
		}
		createdAt = parsed.UTC()
	}

	order := entity.NewOrder(
		input.ClientID,
		input.ProductID,
		input.ClassID,
		input.GenreID,
		input.Description,
		input.Week,
		input.PagesOrSlides,
		product.PricePerUnit,
		createdAt,
	)

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	refs, err := uc.orderRepo.FindByIDWithRefs(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created order: %w", err)
	}

	return &CreateOrderOutput{Order: newOrderOutput(refs)}, nil
}
