package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents one billable unit of work: a quantity of pages or slides
// of a given product, owed by a client.
//
// TotalCost is a denormalized derived field: it must always equal the
// product's unit price times PagesOrSlides as of the last recompute. It is
// only ever written through NewOrder and Reprice; any mutation of the
// quantity or product reference must be followed by Reprice within the same
// write.
type Order struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	ProductID     uuid.UUID
	ClassID       *uuid.UUID
	GenreID       *uuid.UUID
	Description   string
	Week          string
	PagesOrSlides int
	TotalCost     decimal.Decimal
	CreatedAt     time.Time // order instant, stored UTC
	UpdatedAt     time.Time
}

// NewOrder creates a new Order entity with its total derived from the
// product's unit price. createdAt is the UTC order instant; callers resolve
// a user-supplied local order date before this point.
func NewOrder(
	clientID, productID uuid.UUID,
	classID, genreID *uuid.UUID,
	description, week string,
	pagesOrSlides int,
	unitPrice decimal.Decimal,
	createdAt time.Time,
) *Order {
	order := &Order{
		ID:            uuid.New(),
		ClientID:      clientID,
		ProductID:     productID,
		ClassID:       classID,
		GenreID:       genreID,
		Description:   description,
		Week:          week,
		PagesOrSlides: pagesOrSlides,
		CreatedAt:     createdAt.UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	order.Reprice(unitPrice)
	return order
}

// Reprice recomputes TotalCost from the given unit price and the current
// quantity. This is the only write path for TotalCost.
func (o *Order) Reprice(unitPrice decimal.Decimal) {
	o.TotalCost = unitPrice.Mul(decimal.NewFromInt(int64(o.PagesOrSlides)))
}

// OrderWithRefs is an order joined with its client, product, and optional
// classifications, as read back from the ledger.
type OrderWithRefs struct {
	Order   *Order
	Client  *Client
	Product *Product
	Class   *Class
	Genre   *Genre
}

// OrderListResult represents the result of listing orders.
type OrderListResult struct {
	Orders     []*OrderWithRefs
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// OrderTotals represents ledger-wide order totals.
type OrderTotals struct {
	TotalOrders  int64
	TotalRevenue decimal.Decimal
}
