// Package order contains order-related use cases.
package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/domain/entity"
)

// OrderOutput represents a single order with its joined references.
type OrderOutput struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	ClientName    string
	Institution   string
	ProductID     uuid.UUID
	ProductName   string
	PricePerUnit  decimal.Decimal
	ClassID       *uuid.UUID
	ClassName     string
	GenreID       *uuid.UUID
	GenreName     string
	Description   string
	Week          string
	PagesOrSlides int
	TotalCost     decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func newOrderOutput(refs *entity.OrderWithRefs) *OrderOutput {
	out := &OrderOutput{
		ID:            refs.Order.ID,
		ClientID:      refs.Order.ClientID,
		ProductID:     refs.Order.ProductID,
		ClassID:       refs.Order.ClassID,
		GenreID:       refs.Order.GenreID,
		Description:   refs.Order.Description,
		Week:          refs.Order.Week,
		PagesOrSlides: refs.Order.PagesOrSlides,
		TotalCost:     refs.Order.TotalCost,
		CreatedAt:     refs.Order.CreatedAt,
		UpdatedAt:     refs.Order.UpdatedAt,
	}
	if refs.Client != nil {
		out.ClientName = refs.Client.Name
		out.Institution = refs.Client.Institution
	}
	if refs.Product != nil {
		out.ProductName = refs.Product.Name
		out.PricePerUnit = refs.Product.PricePerUnit
	}
	if refs.Class != nil {
		out.ClassName = refs.Class.Name
	}
	if refs.Genre != nil {
		out.GenreName = refs.Genre.Name
	}
	return out
}
