// Package client contains client-related use cases.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// ListClientsInput represents the input for listing clients. Date bounds
// are business-local date strings filtering by registration date.
type ListClientsInput struct {
	Search    string
	StartDate string
	EndDate   string
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

// ListClientsOutput represents the output of listing clients.
type ListClientsOutput struct {
	Clients    []*ClientOutput
	Pagination PaginationOutput
}

// ListClientsUseCase handles listing clients logic.
type ListClientsUseCase struct {
	clientRepo adapter.ClientRepository
	zone       *businesstime.Zone
}

// NewListClientsUseCase creates a new ListClientsUseCase instance.
func NewListClientsUseCase(clientRepo adapter.ClientRepository, zone *businesstime.Zone) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		zone:       zone,
	}
}

// Execute performs the client listing.
func (uc *ListClientsUseCase) Execute(ctx context.Context, input ListClientsInput) (*ListClientsOutput, error) {
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

	result, err := uc.clientRepo.List(ctx, adapter.ClientFilter{
		Search:    input.Search,
		StartDate: startUTC,
		EndDate:   endUTC,
	}, adapter.ClientPagination{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*ClientOutput, len(result.Clients))
	for i, c := range result.Clients {
		clients[i] = newClientOutput(c)
	}

	return &ListClientsOutput{
		Clients: clients,
		Pagination: PaginationOutput{
			Page:       result.Page,
			PageSize:   result.PageSize,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}, nil
}
