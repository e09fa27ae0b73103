// Package product contains product-related use cases.
package product

import (
	"context"
	"fmt"
	"time"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// Sortable product columns. Anything else falls back to created_at.
var productSortColumns = map[string]bool{
	"created_at":     true,
	"name":           true,
	"price_per_unit": true,
}

// ListProductsInput represents the input for listing products.
type ListProductsInput struct {
	Search    string
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

// ListProductsOutput represents the output of listing products.
type ListProductsOutput struct {
	Products   []*ProductOutput
	Pagination PaginationOutput
}

// ListProductsUseCase handles listing products logic.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
	zone        *businesstime.Zone
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository, zone *businesstime.Zone) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		zone:        zone,
	}
}

// Execute performs the product listing.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
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
	if !productSortColumns[sortBy] {
		sortBy = "created_at"
	}

	var startUTC, endUTC *time.Time
	if input.StartDate != "" {
		parsed, err := uc.zone.ParseLocal(input.StartDate)
		if err != nil {
			return nil, domainerror.NewAnalyticsError(
				domainerror.ErrCodeInvalidDateInput,
				fmt.Sprintf("invalid startDate %q", input.StartDate),
				domainerror.ErrInvalidRange,
			)
		}
		utc := parsed.UTC()
		startUTC = &utc
	}
	if input.EndDate != "" {
		parsed, err := uc.zone.ParseLocal(input.EndDate)
		if err != nil {
			return nil, domainerror.NewAnalyticsError(
				domainerror.ErrCodeInvalidDateInput,
				fmt.Sprintf("invalid endDate %q", input.EndDate),
				domainerror.ErrInvalidRange,
			)
		}
		utc := parsed.UTC()
		endUTC = &utc
	}

	result, err := uc.productRepo.List(ctx, adapter.ProductFilter{
		Search:    input.Search,
		StartDate: startUTC,
		EndDate:   endUTC,
		SortBy:    sortBy,
		SortDesc:  input.SortDesc,
	}, adapter.ProductPagination{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*ProductOutput, len(result.Products))
	for i, p := range result.Products {
		products[i] = newProductOutput(p)
	}

	return &ListProductsOutput{
		Products: products,
		Pagination: PaginationOutput{
			Page:       result.Page,
			PageSize:   result.PageSize,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}, nil
}
