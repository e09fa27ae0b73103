// Package analytics contains the time-windowed analytics use cases.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerRepository defines the aggregate queries the analytics core issues
// against the order ledger. Every shape is computed in a single server-side
// pass per window; ledgers may be large, so no method loads raw order rows.
type LedgerRepository interface {
	// SumAndCount returns total revenue (zero if no rows) and order count
	// for the half-open UTC window [start, end).
	SumAndCount(ctx context.Context, startUTC, endUTC time.Time) (*PeriodTotals, error)

	// DailyBuckets returns per-day revenue and counts for the half-open UTC
	// window [start, end), bucketed by the business-local calendar day of
	// each order, ordered by day ascending. Days without rows are absent.
	DailyBuckets(ctx context.Context, startUTC, endUTC time.Time) ([]DailyBucket, error)

	// RankedClients groups the window's orders by client, optionally
	// filtered to one client, ordered by revenue descending and truncated
	// to limit.
	RankedClients(ctx context.Context, startUTC, endUTC time.Time, clientID *uuid.UUID, limit int) ([]ClientRevenue, error)
}

// PeriodTotals is the scalar aggregate for one window.
type PeriodTotals struct {
	Revenue decimal.Decimal
	Orders  int
}

// DailyBucket is one business-local calendar day of aggregated orders.
// Day is the local date in YYYY-MM-DD form.
type DailyBucket struct {
	Day     string
	Revenue decimal.Decimal
	Orders  int
}

// ClientRevenue is one client's aggregated revenue within a window.
type ClientRevenue struct {
	ClientID    uuid.UUID
	ClientName  string
	Institution string
	Revenue     decimal.Decimal
	Orders      int
}
