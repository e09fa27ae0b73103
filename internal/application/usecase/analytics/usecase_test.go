package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scribe-ops/backend/internal/domain/businesstime"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeLedger serves canned aggregates keyed by window start, recording the
// windows it was queried with.
type fakeLedger struct {
	totals  map[string]*PeriodTotals
	buckets []DailyBucket
	ranked  []ClientRevenue
	err     error

	queriedWindows [][2]time.Time
	rankedLimit    int
	rankedClientID *uuid.UUID
}

func (f *fakeLedger) SumAndCount(_ context.Context, startUTC, endUTC time.Time) (*PeriodTotals, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.queriedWindows = append(f.queriedWindows, [2]time.Time{startUTC, endUTC})
	if totals, ok := f.totals[startUTC.Format(time.RFC3339)]; ok {
		return totals, nil
	}
	return &PeriodTotals{Revenue: decimal.Zero}, nil
}

func (f *fakeLedger) DailyBuckets(_ context.Context, startUTC, endUTC time.Time) ([]DailyBucket, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.queriedWindows = append(f.queriedWindows, [2]time.Time{startUTC, endUTC})
	return f.buckets, nil
}

func (f *fakeLedger) RankedClients(_ context.Context, startUTC, endUTC time.Time, clientID *uuid.UUID, limit int) ([]ClientRevenue, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.queriedWindows = append(f.queriedWindows, [2]time.Time{startUTC, endUTC})
	f.rankedClientID = clientID
	f.rankedLimit = limit
	return f.ranked, nil
}

func testZone() *businesstime.Zone {
	return businesstime.NewZone("EAT", 3)
}

func TestGetEarningsComparisonExecute(t *testing.T) {
	zone := testZone()
	now := mustParse(t, "2024-03-15T10:00:00+03:00")

	// Current month starts 2024-03-01 local = 2024-02-29T21:00Z,
	// previous 2024-02-01 local = 2024-01-31T21:00Z.
	ledger := &fakeLedger{totals: map[string]*PeriodTotals{
		"2024-02-29T21:00:00Z": {Revenue: decimal.NewFromInt(300), Orders: 12},
		"2024-01-31T21:00:00Z": {Revenue: decimal.NewFromInt(100), Orders: 8},
	}}

	uc := NewGetEarningsComparisonUseCase(ledger, fixedClock{now}, zone)
	output, err := uc.Execute(context.Background(), GetEarningsComparisonInput{Period: "month"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Current.Revenue.Equal(decimal.NewFromInt(300)) {
		t.Errorf("current revenue = %s", output.Current.Revenue)
	}
	if !output.Previous.Revenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("previous revenue = %s", output.Previous.Revenue)
	}
	if !output.PercentageChange.Equal(decimal.NewFromInt(200)) {
		t.Errorf("percentage change = %s, want 200", output.PercentageChange)
	}
	if !output.OrdersPercentageChange.Equal(decimal.NewFromInt(50)) {
		t.Errorf("orders percentage change = %s, want 50", output.OrdersPercentageChange)
	}
	if output.Current.Window.Label != "This Month" {
		t.Errorf("current label = %q", output.Current.Window.Label)
	}
	if len(ledger.queriedWindows) != 2 {
		t.Fatalf("expected 2 aggregate queries, got %d", len(ledger.queriedWindows))
	}
}

func TestGetEarningsComparisonInvalidPeriodSkipsQueries(t *testing.T) {
	ledger := &fakeLedger{}
	uc := NewGetEarningsComparisonUseCase(ledger, fixedClock{time.Now()}, testZone())

	_, err := uc.Execute(context.Background(), GetEarningsComparisonInput{Period: "decade"})
	if !errors.Is(err, domainerror.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
	if len(ledger.queriedWindows) != 0 {
		t.Errorf("ledger queried %d times on invalid input", len(ledger.queriedWindows))
	}
}

func TestGetRevenueTrendExecute(t *testing.T) {
	now := mustParse(t, "2024-06-10T12:00:00+03:00")
	ledger := &fakeLedger{buckets: []DailyBucket{
		{Day: "2024-06-04", Revenue: decimal.NewFromInt(150), Orders: 3},
		{Day: "2024-06-07", Revenue: decimal.NewFromFloat(62.5), Orders: 1},
	}}

	uc := NewGetRevenueTrendUseCase(ledger, fixedClock{now}, testZone())
	output, err := uc.Execute(context.Background(), GetRevenueTrendInput{Period: "1week"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Data) != 2 {
		t.Fatalf("expected 2 points, got %d", len(output.Data))
	}
	if output.Data[0].Date != "2024-06-04" || output.Data[1].Date != "2024-06-07" {
		t.Errorf("dates = %s, %s", output.Data[0].Date, output.Data[1].Date)
	}
	if !output.Total.Equal(decimal.NewFromFloat(212.5)) {
		t.Errorf("total = %s, want 212.5", output.Total)
	}
	// 212.5 over 7 days.
	if !output.AveragePerDay.Equal(decimal.NewFromFloat(30.36)) {
		t.Errorf("averagePerDay = %s, want 30.36", output.AveragePerDay)
	}
	if output.Window.Label != "Last 7 Days" {
		t.Errorf("label = %q", output.Window.Label)
	}
}

func TestGetRevenueTrendEmptyWindow(t *testing.T) {
	ledger := &fakeLedger{}
	uc := NewGetRevenueTrendUseCase(ledger, fixedClock{time.Now()}, testZone())

	output, err := uc.Execute(context.Background(), GetRevenueTrendInput{Period: "1week"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Data == nil || len(output.Data) != 0 {
		t.Errorf("expected empty non-nil data, got %#v", output.Data)
	}
	if !output.Total.IsZero() {
		t.Errorf("total = %s, want 0", output.Total)
	}
	if !output.AveragePerDay.IsZero() {
		t.Errorf("averagePerDay = %s, want 0", output.AveragePerDay)
	}
}

func TestGetOrdersTrendExecute(t *testing.T) {
	now := mustParse(t, "2024-06-10T12:00:00+03:00")
	ledger := &fakeLedger{buckets: []DailyBucket{
		{Day: "2024-05-20", Revenue: decimal.NewFromInt(90), Orders: 4},
		{Day: "2024-06-01", Revenue: decimal.NewFromInt(40), Orders: 2},
	}}

	uc := NewGetOrdersTrendUseCase(ledger, fixedClock{now}, testZone())
	output, err := uc.Execute(context.Background(), GetOrdersTrendInput{Period: "1month"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Total != 6 {
		t.Errorf("total = %d, want 6", output.Total)
	}
	// 6 orders over 30 days.
	if !output.AveragePerDay.Equal(decimal.NewFromFloat(0.2)) {
		t.Errorf("averagePerDay = %s, want 0.2", output.AveragePerDay)
	}
	if output.Data[1].Count != 2 {
		t.Errorf("second point count = %d", output.Data[1].Count)
	}
}

func TestGetOrdersTrendCustomRangeRejected(t *testing.T) {
	ledger := &fakeLedger{}
	uc := NewGetOrdersTrendUseCase(ledger, fixedClock{time.Now()}, testZone())

	_, err := uc.Execute(context.Background(), GetOrdersTrendInput{
		Period:    "custom",
		StartDate: "2024-01-05",
		EndDate:   "2024-01-05",
	})
	if !errors.Is(err, domainerror.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if len(ledger.queriedWindows) != 0 {
		t.Errorf("ledger queried on invalid range")
	}
}

func TestGetClientRankingsExecute(t *testing.T) {
	now := mustParse(t, "2024-06-10T12:00:00+03:00")
	first := uuid.New()
	second := uuid.New()
	ledger := &fakeLedger{ranked: []ClientRevenue{
		{ClientID: first, ClientName: "Prof. Otieno", Institution: "Ridge University", Revenue: decimal.NewFromInt(500), Orders: 4},
		{ClientID: second, ClientName: "Dr. Wanjiru", Institution: "Lakeside College", Revenue: decimal.Zero, Orders: 0},
	}}

	uc := NewGetClientRankingsUseCase(ledger, fixedClock{now}, testZone())
	output, err := uc.Execute(context.Background(), GetClientRankingsInput{Period: "3months"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Data) != 2 {
		t.Fatalf("expected 2 rankings, got %d", len(output.Data))
	}
	if !output.Data[0].AverageOrderValue.Equal(decimal.NewFromInt(125)) {
		t.Errorf("average order value = %s, want 125", output.Data[0].AverageOrderValue)
	}
	if !output.Data[1].AverageOrderValue.IsZero() {
		t.Errorf("zero-order client average = %s, want 0", output.Data[1].AverageOrderValue)
	}
	if ledger.rankedLimit != DefaultRankingLimit {
		t.Errorf("limit = %d, want default %d", ledger.rankedLimit, DefaultRankingLimit)
	}
}

func TestGetClientRankingsFilterAndLimit(t *testing.T) {
	clientID := uuid.New()
	ledger := &fakeLedger{}

	uc := NewGetClientRankingsUseCase(ledger, fixedClock{time.Now()}, testZone())
	_, err := uc.Execute(context.Background(), GetClientRankingsInput{
		Period:   "1month",
		ClientID: &clientID,
		Limit:    3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ledger.rankedLimit != 3 {
		t.Errorf("limit = %d, want 3", ledger.rankedLimit)
	}
	if ledger.rankedClientID == nil || *ledger.rankedClientID != clientID {
		t.Errorf("clientID not forwarded")
	}
}
