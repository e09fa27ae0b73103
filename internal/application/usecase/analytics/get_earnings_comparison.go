package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/valueobject"
)

// GetEarningsComparisonInput represents the input for a period comparison.
type GetEarningsComparisonInput struct {
	Period string
}

// PeriodSummary is one window's aggregate alongside its window metadata.
type PeriodSummary struct {
	Window  valueobject.DualWindow
	Revenue decimal.Decimal
	Orders  int
}

// GetEarningsComparisonOutput represents the output of a period comparison.
type GetEarningsComparisonOutput struct {
	Current                PeriodSummary
	Previous               PeriodSummary
	PercentageChange       decimal.Decimal
	OrdersPercentageChange decimal.Decimal
}

// GetEarningsComparisonUseCase compares revenue and order counts between the
// current symbolic period and the one before it.
type GetEarningsComparisonUseCase struct {
	ledger LedgerRepository
	clock  adapter.Clock
	zone   *businesstime.Zone
}

// NewGetEarningsComparisonUseCase creates a new GetEarningsComparisonUseCase instance.
func NewGetEarningsComparisonUseCase(ledger LedgerRepository, clock adapter.Clock, zone *businesstime.Zone) *GetEarningsComparisonUseCase {
	return &GetEarningsComparisonUseCase{
		ledger: ledger,
		clock:  clock,
		zone:   zone,
	}
}

// Execute resolves both windows, then aggregates each with a single query.
// Period validation happens before any query runs.
func (uc *GetEarningsComparisonUseCase) Execute(ctx context.Context, input GetEarningsComparisonInput) (*GetEarningsComparisonOutput, error) {
	comparison, err := ResolvePeriodComparison(uc.zone, uc.clock.Now(), input.Period)
	if err != nil {
		return nil, err
	}

	current, err := uc.ledger.SumAndCount(ctx, comparison.Current.UTCStart, comparison.Current.UTCEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate current period: %w", err)
	}

	previous, err := uc.ledger.SumAndCount(ctx, comparison.Previous.UTCStart, comparison.Previous.UTCEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate previous period: %w", err)
	}

	return &GetEarningsComparisonOutput{
		Current: PeriodSummary{
			Window:  comparison.Current,
			Revenue: current.Revenue,
			Orders:  current.Orders,
		},
		Previous: PeriodSummary{
			Window:  comparison.Previous,
			Revenue: previous.Revenue,
			Orders:  previous.Orders,
		},
		PercentageChange: PercentageChange(current.Revenue, previous.Revenue),
		OrdersPercentageChange: PercentageChange(
			decimal.NewFromInt(int64(current.Orders)),
			decimal.NewFromInt(int64(previous.Orders)),
		),
	}, nil
}
