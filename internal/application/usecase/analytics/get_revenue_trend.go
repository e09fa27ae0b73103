package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/valueobject"
)

// GetRevenueTrendInput represents the input for a revenue trend query.
type GetRevenueTrendInput struct {
	Period    string
	StartDate string
	EndDate   string
}

// RevenuePoint is one business-local day's revenue within the window.
type RevenuePoint struct {
	Date    string
	Revenue decimal.Decimal
	Orders  int
}

// GetRevenueTrendOutput represents the output of a revenue trend query.
type GetRevenueTrendOutput struct {
	Window        valueobject.DualWindow
	Period        string
	Data          []RevenuePoint
	Total         decimal.Decimal
	AveragePerDay decimal.Decimal
}

// GetRevenueTrendUseCase buckets a window's revenue by local calendar day.
type GetRevenueTrendUseCase struct {
	ledger LedgerRepository
	clock  adapter.Clock
	zone   *businesstime.Zone
}

// NewGetRevenueTrendUseCase creates a new GetRevenueTrendUseCase instance.
func NewGetRevenueTrendUseCase(ledger LedgerRepository, clock adapter.Clock, zone *businesstime.Zone) *GetRevenueTrendUseCase {
	return &GetRevenueTrendUseCase{
		ledger: ledger,
		clock:  clock,
		zone:   zone,
	}
}

// Execute resolves the trend window and aggregates it in one bucketing pass.
// Only days with at least one order appear in the data.
func (uc *GetRevenueTrendUseCase) Execute(ctx context.Context, input GetRevenueTrendInput) (*GetRevenueTrendOutput, error) {
	window, err := ResolveTrendWindow(uc.zone, uc.clock.Now(), input.Period, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	buckets, err := uc.ledger.DailyBuckets(ctx, window.UTCStart, window.UTCEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue trend: %w", err)
	}

	data := make([]RevenuePoint, 0, len(buckets))
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.Revenue)
		data = append(data, RevenuePoint{
			Date:    b.Day,
			Revenue: b.Revenue,
			Orders:  b.Orders,
		})
	}

	return &GetRevenueTrendOutput{
		Window:        window,
		Period:        input.Period,
		Data:          data,
		Total:         total.Round(2),
		AveragePerDay: AveragePerDay(total, window.LocalDays()),
	}, nil
}
