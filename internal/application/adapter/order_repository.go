// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// OrderFilter defines filter options for listing orders. Date bounds are
// UTC instants; callers convert user-supplied local dates first.
type OrderFilter struct {
	Search    string // case-insensitive match over client/product/class/genre names
	ClientID  *uuid.UUID
	ProductID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string // whitelisted column, defaults to created_at
	SortDesc  bool
}

// OrderPagination defines pagination options.
type OrderPagination struct {
	Page     int
	PageSize int
}

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// Create inserts a new order into the ledger.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDWithRefs retrieves an order with its joined references.
	FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.OrderWithRefs, error)

	// List retrieves orders matching the filter, with joined references.
	List(ctx context.Context, filter OrderFilter, pagination OrderPagination) (*entity.OrderListResult, error)

	// FindByClientInRange retrieves a client's orders whose creation instant
	// falls within [startUTC, endUTC] (end inclusive), with joined
	// references, ordered by creation instant ascending.
	FindByClientInRange(ctx context.Context, clientID uuid.UUID, startUTC, endUTC time.Time) ([]*entity.OrderWithRefs, error)

	// Totals returns ledger-wide order count and revenue.
	Totals(ctx context.Context) (*entity.OrderTotals, error)

	// Update persists changed order fields. The caller must have repriced
	// the order if its quantity or product changed; the write is a single
	// transaction so no reader observes a stale derived total.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order from the ledger.
	Delete(ctx context.Context, id uuid.UUID) error
}
