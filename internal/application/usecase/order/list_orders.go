// Package order contains order-related use cases.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// Sortable order columns. Anything else falls back to created_at.
var orderSortColumns = map[string]bool{
	"created_at":      true,
	"total_cost":      true,
	"pages_or_slides": true,
	"week":            true,
}

// ListOrdersInput represents the input for listing orders. Date bounds are
// business-local date strings.
type ListOrdersInput struct {
	Search    string
	ClientID  *uuid.UUID
	ProductID *uuid.UUID
	StartDate string
	EndDate   string
	SortBy    string
	SortDesc  bool
	Page      int
	PageSize  int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// ListOrdersOutput represents the output of listing orders.
type ListOrdersOutput struct {
	Orders     []*OrderOutput
	Pagination PaginationOutput
}

// ListOrdersUseCase handles listing orders logic.
type ListOrdersUseCase struct {
	orderRepo adapter.OrderRepository
	zone      *businesstime.Zone
}

// NewListOrdersUseCase creates a new ListOrdersUseCase instance.
func NewListOrdersUseCase(orderRepo adapter.OrderRepository, zone *businesstime.Zone) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		zone:      zone,
	}
}

// Execute performs the order listing.
func (uc *ListOrdersUseCase) Execute(ctx context.Context, input ListOrdersInput) (*ListOrdersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	sortBy := input.SortBy
	if !orderSortColumns[sortBy] {
		sortBy = "created_at"
	}

	var startUTC, endUTC *time.Time
	if input.StartDate != "" {
		parsed, err := uc.zone.ParseLocal(input.StartDate)
		if err != nil {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeInvalidOrderDate,
				fmt.Sprintf("invalid startDate %q", input.StartDate),
				domainerror.ErrInvalidOrderDate,
			)
		}
		utc := parsed.UTC()
		startUTC = &utc
	}
	if input.EndDate != "" {
		parsed, err := uc.zone.ParseLocal(input.EndDate)
		if err != nil {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeInvalidOrderDate,
				fmt.Sprintf("invalid endDate %q", input.EndDate),
				domainerror.ErrInvalidOrderDate,
			)
		}
		utc := parsed.UTC()
		endUTC = &utc
	}

	filter := adapter.OrderFilter{
		Search:    input.Search,
		ClientID:  input.ClientID,
		ProductID: input.ProductID,
		StartDate: startUTC,
		EndDate:   endUTC,
		SortBy:    sortBy,
		SortDesc:  input.SortDesc,
	}

	result, err := uc.orderRepo.List(ctx, filter, adapter.OrderPagination{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*OrderOutput, len(result.Orders))
	for i, refs := range result.Orders {
		orders[i] = newOrderOutput(refs)
	}

	return &ListOrdersOutput{
		Orders: orders,
		Pagination: PaginationOutput{
			Page:       result.Page,
			PageSize:   result.PageSize,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}, nil
}
