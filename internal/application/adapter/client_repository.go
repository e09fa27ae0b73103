// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// ClientFilter defines filter options for listing clients.
type ClientFilter struct {
	Search    string // case-insensitive name match
	StartDate *time.Time
	EndDate   *time.Time
}

// ClientPagination defines pagination options.
type ClientPagination struct {
	Page     int
	PageSize int
}

// ClientRepository defines the interface for client persistence operations.
type ClientRepository interface {
	// Create inserts a new client.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// List retrieves clients matching the filter.
	List(ctx context.Context, filter ClientFilter, pagination ClientPagination) (*entity.ClientListResult, error)

	// Update persists changed client fields.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client.
	Delete(ctx context.Context, id uuid.UUID) error
}
