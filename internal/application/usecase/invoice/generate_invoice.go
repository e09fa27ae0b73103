// Package invoice contains invoice assembly and rendering use cases.
package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

// GenerateInvoiceInput represents the input for invoice assembly. StartDate
// and EndDate are business-local date strings; the range is end-inclusive,
// with EndDate extended to the end of its local day.
type GenerateInvoiceInput struct {
	ClientID  uuid.UUID
	StartDate string
	EndDate   string
}

// GenerateInvoiceOutput represents the output of invoice assembly.
type GenerateInvoiceOutput struct {
	Invoice     *entity.Invoice
	TotalAmount decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// GenerateInvoiceUseCase assembles an invoice fresh per request: the
// client, that client's orders within the window ordered by creation
// instant ascending, and the computed total. Nothing is stored.
type GenerateInvoiceUseCase struct {
	orderRepo  adapter.OrderRepository
	clientRepo adapter.ClientRepository
	zone       *businesstime.Zone
}

// NewGenerateInvoiceUseCase creates a new GenerateInvoiceUseCase instance.
func NewGenerateInvoiceUseCase(
	orderRepo adapter.OrderRepository,
	clientRepo adapter.ClientRepository,
	zone *businesstime.Zone,
) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		zone:       zone,
	}
}

// Execute performs the invoice assembly. The client is checked before any
// order query; an unknown client fails even for ranges that would match
// nothing. A window with no orders yields a valid empty invoice.
func (uc *GenerateInvoiceUseCase) Execute(ctx context.Context, input GenerateInvoiceInput) (*GenerateInvoiceOutput, error) {
	if input.StartDate == "" || input.EndDate == "" {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceMissingBound,
			"startDate and endDate are required",
			domainerror.ErrInvalidRange,
		)
	}

	start, err := uc.zone.ParseLocal(input.StartDate)
	if err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceInvalidRange,
			fmt.Sprintf("invalid startDate %q", input.StartDate),
			domainerror.ErrInvalidRange,
		)
	}

	end, err := uc.zone.ParseLocal(input.EndDate)
	if err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceInvalidRange,
			fmt.Sprintf("invalid endDate %q", input.EndDate),
			domainerror.ErrInvalidRange,
		)
	}

	// The whole end day belongs to the invoice.
	end = uc.zone.EndOfDay(end)

	if end.Before(start) {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceInvalidRange,
			"endDate must not be before startDate",
			domainerror.ErrInvalidRange,
		)
	}

	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	orders, err := uc.orderRepo.FindByClientInRange(ctx, input.ClientID, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice orders: %w", err)
	}

	inv := entity.NewInvoice(client, orders, start.UTC(), end.UTC())

	return &GenerateInvoiceOutput{
		Invoice:     inv,
		TotalAmount: inv.TotalAmount.Round(2),
		PeriodStart: inv.PeriodStart,
		PeriodEnd:   inv.PeriodEnd,
	}, nil
}
