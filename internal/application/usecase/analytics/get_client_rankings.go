package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/valueobject"
)

// DefaultRankingLimit caps rankings when the caller does not supply a limit.
const DefaultRankingLimit = 10

// GetClientRankingsInput represents the input for a client ranking query.
type GetClientRankingsInput struct {
	Period    string
	StartDate string
	EndDate   string
	ClientID  *uuid.UUID
	Limit     int
}

// ClientRanking is one client's revenue standing within the window.
type ClientRanking struct {
	ClientID          uuid.UUID
	ClientName        string
	Institution       string
	TotalRevenue      decimal.Decimal
	OrderCount        int
	AverageOrderValue decimal.Decimal
}

// GetClientRankingsOutput represents the output of a client ranking query.
type GetClientRankingsOutput struct {
	Window valueobject.DualWindow
	Data   []ClientRanking
}

// GetClientRankingsUseCase ranks clients by revenue within a trend window.
type GetClientRankingsUseCase struct {
	ledger LedgerRepository
	clock  adapter.Clock
	zone   *businesstime.Zone
}

// NewGetClientRankingsUseCase creates a new GetClientRankingsUseCase instance.
func NewGetClientRankingsUseCase(ledger LedgerRepository, clock adapter.Clock, zone *businesstime.Zone) *GetClientRankingsUseCase {
	return &GetClientRankingsUseCase{
		ledger: ledger,
		clock:  clock,
		zone:   zone,
	}
}

// Execute resolves the window, ranks clients in a single grouped query, and
// derives each group's average order value.
func (uc *GetClientRankingsUseCase) Execute(ctx context.Context, input GetClientRankingsInput) (*GetClientRankingsOutput, error) {
	window, err := ResolveTrendWindow(uc.zone, uc.clock.Now(), input.Period, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	rows, err := uc.ledger.RankedClients(ctx, window.UTCStart, window.UTCEnd, input.ClientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank clients: %w", err)
	}

	data := make([]ClientRanking, 0, len(rows))
	for _, row := range rows {
		average := decimal.Zero
		if row.Orders > 0 {
			average = row.Revenue.Div(decimal.NewFromInt(int64(row.Orders))).Round(2)
		}
		data = append(data, ClientRanking{
			ClientID:          row.ClientID,
			ClientName:        row.ClientName,
			Institution:       row.Institution,
			TotalRevenue:      row.Revenue,
			OrderCount:        row.Orders,
			AverageOrderValue: average,
		})
	}

	return &GetClientRankingsOutput{
		Window: window,
		Data:   data,
	}, nil
}
