package analytics

import (
	"fmt"
	"time"

	"github.com/scribe-ops/backend/internal/domain/businesstime"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
	"github.com/scribe-ops/backend/internal/domain/valueobject"
)

// PeriodComparison pairs a current window anchored to "now" with the
// immediately preceding window of equal calendar length. The previous
// window's end always equals the current window's start.
type PeriodComparison struct {
	Current  valueobject.DualWindow
	Previous valueobject.DualWindow
}

// ResolvePeriodComparison computes current and previous windows for a
// symbolic calendar period. All boundary math runs in business-local time;
// the returned windows carry both representations.
func ResolvePeriodComparison(zone *businesstime.Zone, now time.Time, period string) (*PeriodComparison, error) {
	nowLocal := zone.ToLocal(now)
	loc := zone.Location()

	var start, prevStart time.Time
	var label, prevLabel string

	switch period {
	case "week":
		start = nowLocal.AddDate(0, 0, -7)
		prevStart = start.AddDate(0, 0, -7)
		label, prevLabel = "This Week", "Last Week"

	case "month":
		start = time.Date(nowLocal.Year(), nowLocal.Month(), 1, 0, 0, 0, 0, loc)
		prevStart = start.AddDate(0, -1, 0)
		label, prevLabel = "This Month", "Last Month"

	case "quarter":
		quarterMonth := time.Month(((int(nowLocal.Month())-1)/3)*3 + 1)
		start = time.Date(nowLocal.Year(), quarterMonth, 1, 0, 0, 0, 0, loc)
		prevStart = start.AddDate(0, -3, 0)
		label, prevLabel = "This Quarter", "Last Quarter"

	case "year":
		start = time.Date(nowLocal.Year(), time.January, 1, 0, 0, 0, 0, loc)
		prevStart = start.AddDate(-1, 0, 0)
		label, prevLabel = "This Year", "Last Year"

	default:
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("unknown period %q, expected week, month, quarter, or year", period),
			domainerror.ErrInvalidPeriod,
		)
	}

	return &PeriodComparison{
		Current:  valueobject.NewDualWindow(start, nowLocal, label),
		Previous: valueobject.NewDualWindow(prevStart, start, prevLabel),
	}, nil
}

// trendDays maps named trailing windows to their length in local days.
var trendDays = map[string]int{
	"1week":   7,
	"1month":  30,
	"3months": 90,
	"6months": 180,
}

// trendLabels maps named trailing windows to their display labels.
var trendLabels = map[string]string{
	"1week":   "Last 7 Days",
	"1month":  "Last 30 Days",
	"3months": "Last 3 Months",
	"6months": "Last 6 Months",
}

// TrendLabel returns the display label for a trend period name.
func TrendLabel(period string) string {
	if label, ok := trendLabels[period]; ok {
		return label
	}
	return "Last 30 Days"
}

// ResolveTrendWindow computes the window for a trend query: a named
// trailing range ending at "now", or a custom range. Custom bounds without
// an explicit offset are read as business-local civil time; both bounds are
// required and start must be strictly before end.
func ResolveTrendWindow(zone *businesstime.Zone, now time.Time, period, startDate, endDate string) (valueobject.DualWindow, error) {
	if period == "custom" {
		return resolveCustomWindow(zone, startDate, endDate)
	}

	days, ok := trendDays[period]
	if !ok {
		return valueobject.DualWindow{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("unknown period %q, expected 1week, 1month, 3months, 6months, or custom", period),
			domainerror.ErrInvalidPeriod,
		)
	}

	nowLocal := zone.ToLocal(now)
	return valueobject.NewDualWindow(nowLocal.AddDate(0, 0, -days), nowLocal, TrendLabel(period)), nil
}

func resolveCustomWindow(zone *businesstime.Zone, startDate, endDate string) (valueobject.DualWindow, error) {
	if startDate == "" || endDate == "" {
		return valueobject.DualWindow{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingRangeForm,
			"custom period requires both startDate and endDate",
			domainerror.ErrInvalidRange,
		)
	}

	start, err := zone.ParseLocal(startDate)
	if err != nil {
		return valueobject.DualWindow{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateInput,
			fmt.Sprintf("invalid startDate %q", startDate),
			domainerror.ErrInvalidRange,
		)
	}

	end, err := zone.ParseLocal(endDate)
	if err != nil {
		return valueobject.DualWindow{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateInput,
			fmt.Sprintf("invalid endDate %q", endDate),
			domainerror.ErrInvalidRange,
		)
	}

	if !start.Before(end) {
		return valueobject.DualWindow{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidRange,
			"startDate must be strictly before endDate",
			domainerror.ErrInvalidRange,
		)
	}

	return valueobject.NewDualWindow(zone.ToLocal(start), zone.ToLocal(end), TrendLabel("custom")), nil
}
