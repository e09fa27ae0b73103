package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a derived aggregate built fresh per request and never stored:
// a client, that client's orders within a window ordered by creation instant
// ascending, and the computed total. It is the sole input handed to the
// document renderers.
type Invoice struct {
	Client      *Client
	Orders      []*OrderWithRefs
	TotalAmount decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// NewInvoice assembles an invoice, deriving the total from the orders.
func NewInvoice(client *Client, orders []*OrderWithRefs, periodStart, periodEnd time.Time) *Invoice {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Order.TotalCost)
	}

	return &Invoice{
		Client:      client,
		Orders:      orders,
		TotalAmount: total,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}
}
