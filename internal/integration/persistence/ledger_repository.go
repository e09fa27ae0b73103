// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/scribe-ops/backend/internal/application/usecase/analytics"
	"github.com/scribe-ops/backend/internal/domain/businesstime"
)

// ledgerRepository implements the analytics.LedgerRepository interface.
// Orders are stored with UTC instants; bucketing by business-local calendar
// day happens inside SQL by shifting each instant before taking its date,
// so every aggregate is a single server-side pass.
type ledgerRepository struct {
	db   *gorm.DB
	zone *businesstime.Zone
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB, zone *businesstime.Zone) analytics.LedgerRepository {
	return &ledgerRepository{
		db:   db,
		zone: zone,
	}
}

// SumAndCount returns total revenue and order count for [start, end).
func (r *ledgerRepository) SumAndCount(ctx context.Context, startUTC, endUTC time.Time) (*analytics.PeriodTotals, error) {
	var result struct {
		Revenue decimal.Decimal `gorm:"column:revenue"`
		Orders  int             `gorm:"column:orders"`
	}

	err := r.db.WithContext(ctx).
		Table("orders").
		Select("COALESCE(SUM(total_cost), 0) as revenue, COUNT(*) as orders").
		Where("created_at >= ? AND created_at < ?", startUTC, endUTC).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate window: %w", err)
	}

	return &analytics.PeriodTotals{
		Revenue: result.Revenue,
		Orders:  result.Orders,
	}, nil
}

// DailyBuckets returns per-local-day revenue and counts for [start, end),
// ordered by day ascending. Days with no orders are absent.
func (r *ledgerRepository) DailyBuckets(ctx context.Context, startUTC, endUTC time.Time) ([]analytics.DailyBucket, error) {
	var results []struct {
		Day     string          `gorm:"column:day"`
		Revenue decimal.Decimal `gorm:"column:revenue"`
		Orders  int             `gorm:"column:orders"`
	}

	dayExpr, dayArg := r.localDayExpr()
	query := fmt.Sprintf(`
		SELECT
			%s as day,
			COALESCE(SUM(total_cost), 0) as revenue,
			COUNT(*) as orders
		FROM orders
		WHERE created_at >= ?
			AND created_at < ?
		GROUP BY day
		ORDER BY day
	`, dayExpr)

	err := r.db.WithContext(ctx).
		Raw(query, dayArg, startUTC, endUTC).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily buckets: %w", err)
	}

	buckets := make([]analytics.DailyBucket, len(results))
	for i, res := range results {
		buckets[i] = analytics.DailyBucket{
			Day:     res.Day,
			Revenue: res.Revenue,
			Orders:  res.Orders,
		}
	}
	return buckets, nil
}

// RankedClients groups the window's orders by client, ordered by revenue
// descending, optionally filtered to one client and truncated to limit.
func (r *ledgerRepository) RankedClients(ctx context.Context, startUTC, endUTC time.Time, clientID *uuid.UUID, limit int) ([]analytics.ClientRevenue, error) {
	var results []struct {
		ClientID    uuid.UUID       `gorm:"column:client_id"`
		ClientName  string          `gorm:"column:client_name"`
		Institution string          `gorm:"column:institution"`
		Revenue     decimal.Decimal `gorm:"column:revenue"`
		Orders      int             `gorm:"column:orders"`
	}

	query := r.db.WithContext(ctx).
		Table("orders").
		Select(`clients.id as client_id,
			clients.name as client_name,
			clients.institution as institution,
			COALESCE(SUM(orders.total_cost), 0) as revenue,
			COUNT(orders.id) as orders`).
		Joins("JOIN clients ON clients.id = orders.client_id").
		Where("orders.created_at >= ? AND orders.created_at < ?", startUTC, endUTC).
		Group("clients.id, clients.name, clients.institution").
		Order("revenue DESC").
		Limit(limit)

	if clientID != nil {
		query = query.Where("orders.client_id = ?", *clientID)
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to rank clients: %w", err)
	}

	ranked := make([]analytics.ClientRevenue, len(results))
	for i, res := range results {
		ranked[i] = analytics.ClientRevenue{
			ClientID:    res.ClientID,
			ClientName:  res.ClientName,
			Institution: res.Institution,
			Revenue:     res.Revenue,
			Orders:      res.Orders,
		}
	}
	return ranked, nil
}

// localDayExpr returns the SQL expression and bind argument that map a UTC
// created_at to its business-local calendar day as YYYY-MM-DD text. The
// expression depends on the dialect: postgres shifts by an interval of
// seconds, sqlite (used by the test harness) takes a datetime modifier.
func (r *ledgerRepository) localDayExpr() (string, interface{}) {
	offsetSeconds := r.zone.OffsetSeconds()
	switch r.db.Name() {
	case "sqlite":
		return "DATE(created_at, ?)", fmt.Sprintf("%+d seconds", offsetSeconds)
	default:
		return "(DATE(created_at + ? * INTERVAL '1 second'))::text", offsetSeconds
	}
}
