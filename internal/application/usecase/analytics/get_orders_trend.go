package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/valueobject"
)

// GetOrdersTrendInput represents the input for an order-count trend query.
type GetOrdersTrendInput struct {
	Period    string
	StartDate string
	EndDate   string
}

// OrdersPoint is one business-local day's order count within the window.
type OrdersPoint struct {
	Date  string
	Count int
}

// GetOrdersTrendOutput represents the output of an order-count trend query.
type GetOrdersTrendOutput struct {
	Window        valueobject.DualWindow
	Period        string
	Data          []OrdersPoint
	Total         int
	AveragePerDay decimal.Decimal
}

// GetOrdersTrendUseCase buckets a window's order counts by local calendar day.
type GetOrdersTrendUseCase struct {
	ledger LedgerRepository
	clock  adapter.Clock
	zone   *businesstime.Zone
}

// NewGetOrdersTrendUseCase creates a new GetOrdersTrendUseCase instance.
func NewGetOrdersTrendUseCase(ledger LedgerRepository, clock adapter.Clock, zone *businesstime.Zone) *GetOrdersTrendUseCase {
	return &GetOrdersTrendUseCase{
		ledger: ledger,
		clock:  clock,
		zone:   zone,
	}
}

// Execute resolves the trend window and aggregates it in one bucketing pass.
func (uc *GetOrdersTrendUseCase) Execute(ctx context.Context, input GetOrdersTrendInput) (*GetOrdersTrendOutput, error) {
	window, err := ResolveTrendWindow(uc.zone, uc.clock.Now(), input.Period, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	buckets, err := uc.ledger.DailyBuckets(ctx, window.UTCStart, window.UTCEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders trend: %w", err)
	}

	data := make([]OrdersPoint, 0, len(buckets))
	total := 0
	for _, b := range buckets {
		total += b.Orders
		data = append(data, OrdersPoint{
			Date:  b.Day,
			Count: b.Orders,
		})
	}

	return &GetOrdersTrendOutput{
		Window:        window,
		Period:        input.Period,
		Data:          data,
		Total:         total,
		AveragePerDay: AveragePerDay(decimal.NewFromInt(int64(total)), window.LocalDays()),
	}, nil
}
