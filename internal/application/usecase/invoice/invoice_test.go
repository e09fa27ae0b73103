package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/application/adapter"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func (f *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	return client, nil
}

func (f *fakeClientRepo) List(_ context.Context, _ adapter.ClientFilter, _ adapter.ClientPagination) (*entity.ClientListResult, error) {
	return &entity.ClientListResult{}, nil
}

func (f *fakeClientRepo) Update(_ context.Context, client *entity.Client) error {
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.clients, id)
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.OrderWithRefs

	rangeStart time.Time
	rangeEnd   time.Time
	queried    bool
}

func (f *fakeOrderRepo) Create(_ context.Context, _ *entity.Order) error { return nil }

func (f *fakeOrderRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Order, error) {
	return nil, domainerror.ErrOrderNotFound
}

func (f *fakeOrderRepo) FindByIDWithRefs(_ context.Context, _ uuid.UUID) (*entity.OrderWithRefs, error) {
	return nil, domainerror.ErrOrderNotFound
}

func (f *fakeOrderRepo) List(_ context.Context, _ adapter.OrderFilter, _ adapter.OrderPagination) (*entity.OrderListResult, error) {
	return &entity.OrderListResult{}, nil
}

func (f *fakeOrderRepo) FindByClientInRange(_ context.Context, _ uuid.UUID, startUTC, endUTC time.Time) ([]*entity.OrderWithRefs, error) {
	f.queried = true
	f.rangeStart = startUTC
	f.rangeEnd = endUTC
	return f.orders, nil
}

func (f *fakeOrderRepo) Totals(_ context.Context) (*entity.OrderTotals, error) {
	return &entity.OrderTotals{TotalRevenue: decimal.Zero}, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, _ *entity.Order) error { return nil }

func (f *fakeOrderRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func invoiceFixture() (*fakeOrderRepo, *fakeClientRepo, *entity.Client, *businesstime.Zone) {
	client := entity.NewClient("Prof. Otieno", "Ridge University", "+254700000001", "otieno@example.com")
	clients := &fakeClientRepo{clients: map[uuid.UUID]*entity.Client{client.ID: client}}
	return &fakeOrderRepo{}, clients, client, businesstime.NewZone("EAT", 3)
}

func refsWithTotal(clientID uuid.UUID, total int64) *entity.OrderWithRefs {
	order := entity.NewOrder(
		clientID, uuid.New(), nil, nil,
		"", "", 1,
		decimal.NewFromInt(total),
		time.Now().UTC(),
	)
	return &entity.OrderWithRefs{Order: order}
}

func TestGenerateInvoiceSumsOrders(t *testing.T) {
	orders, clients, client, zone := invoiceFixture()
	orders.orders = []*entity.OrderWithRefs{
		refsWithTotal(client.ID, 120),
		refsWithTotal(client.ID, 80),
	}

	uc := NewGenerateInvoiceUseCase(orders, clients, zone)
	output, err := uc.Execute(context.Background(), GenerateInvoiceInput{
		ClientID:  client.ID,
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalAmount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("totalAmount = %s, want 200", output.TotalAmount)
	}

	// Start is local midnight, end is the end of the last local day.
	if got := orders.rangeStart.Format(time.RFC3339); got != "2024-02-29T21:00:00Z" {
		t.Errorf("range start = %s", got)
	}
	if got := orders.rangeEnd.Format(time.RFC3339); got != "2024-03-31T20:59:59Z" {
		t.Errorf("range end = %s", got)
	}
}

func TestGenerateInvoiceEmptyWindow(t *testing.T) {
	orders, clients, client, zone := invoiceFixture()

	uc := NewGenerateInvoiceUseCase(orders, clients, zone)
	output, err := uc.Execute(context.Background(), GenerateInvoiceInput{
		ClientID:  client.ID,
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})
	if err != nil {
		t.Fatalf("empty window must not error: %v", err)
	}

	if !output.TotalAmount.IsZero() {
		t.Errorf("totalAmount = %s, want 0", output.TotalAmount)
	}
	if len(output.Invoice.Orders) != 0 {
		t.Errorf("orders = %d, want 0", len(output.Invoice.Orders))
	}
}

func TestGenerateInvoiceUnknownClientFailsFast(t *testing.T) {
	orders, clients, _, zone := invoiceFixture()

	uc := NewGenerateInvoiceUseCase(orders, clients, zone)
	_, err := uc.Execute(context.Background(), GenerateInvoiceInput{
		ClientID:  uuid.New(),
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	})
	if !errors.Is(err, domainerror.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	if orders.queried {
		t.Error("order query ran for unknown client")
	}
}

func TestGenerateInvoiceRangeValidation(t *testing.T) {
	orders, clients, client, zone := invoiceFixture()
	uc := NewGenerateInvoiceUseCase(orders, clients, zone)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"missing start", "", "2024-03-31"},
		{"missing end", "2024-03-01", ""},
		{"garbage start", "03/01/2024", "2024-03-31"},
		{"end before start", "2024-03-31", "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), GenerateInvoiceInput{
				ClientID:  client.ID,
				StartDate: tt.start,
				EndDate:   tt.end,
			})
			if !errors.Is(err, domainerror.ErrInvalidRange) {
				t.Errorf("err = %v, want ErrInvalidRange", err)
			}
		})
	}

	// A single-day range is legal: the end day is extended to its last second.
	if _, err := uc.Execute(context.Background(), GenerateInvoiceInput{
		ClientID:  client.ID,
		StartDate: "2024-03-15",
		EndDate:   "2024-03-15",
	}); err != nil {
		t.Fatalf("single-day range rejected: %v", err)
	}
}

type stubRenderer struct {
	content []byte
}

func (s stubRenderer) Render(_ context.Context, _ *entity.Invoice) ([]byte, error) {
	return s.content, nil
}

func (s stubRenderer) ContentType() string { return "application/test" }

func (s stubRenderer) FileExtension() string { return "bin" }

func TestExportInvoice(t *testing.T) {
	orders, clients, client, zone := invoiceFixture()
	generate := NewGenerateInvoiceUseCase(orders, clients, zone)
	uc := NewExportInvoiceUseCase(generate, map[string]adapter.InvoiceRenderer{
		"excel": stubRenderer{content: []byte("doc")},
	})

	output, err := uc.Execute(context.Background(), ExportInvoiceInput{
		GenerateInvoiceInput: GenerateInvoiceInput{
			ClientID:  client.ID,
			StartDate: "2024-03-01",
			EndDate:   "2024-03-31",
		},
		Format: "excel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(output.Content) != "doc" {
		t.Errorf("content = %q", output.Content)
	}
	if output.Filename != "invoice_prof._otieno_20240229.bin" {
		t.Errorf("filename = %q", output.Filename)
	}

	_, err = uc.Execute(context.Background(), ExportInvoiceInput{Format: "csv"})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
