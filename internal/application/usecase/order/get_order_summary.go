// Package order contains order-related use cases.
package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/adapter"
)

// GetOrderSummaryOutput represents ledger-wide order totals.
type GetOrderSummaryOutput struct {
	TotalOrders  int64
	TotalRevenue decimal.Decimal
}

// GetOrderSummaryUseCase handles the ledger-wide order summary.
type GetOrderSummaryUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewGetOrderSummaryUseCase creates a new GetOrderSummaryUseCase instance.
func NewGetOrderSummaryUseCase(orderRepo adapter.OrderRepository) *GetOrderSummaryUseCase {
	return &GetOrderSummaryUseCase{
		orderRepo: orderRepo,
	}
}

// Execute computes the summary in a single aggregate query.
func (uc *GetOrderSummaryUseCase) Execute(ctx context.Context) (*GetOrderSummaryOutput, error) {
	totals, err := uc.orderRepo.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	return &GetOrderSummaryOutput{
		TotalOrders:  totals.TotalOrders,
		TotalRevenue: totals.TotalRevenue.Round(2),
	}, nil
}
