package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/scribe-ops/backend/internal/domain/businesstime"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test fixture %q: %v", value, err)
	}
	return parsed
}

func TestResolvePeriodComparisonMonth(t *testing.T) {
	zone := businesstime.NewZone("EAT", 3)
	now := mustParse(t, "2024-03-15T10:00:00+03:00")

	comparison, err := ResolvePeriodComparison(zone, now, "month")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := comparison.Current.LocalStart.Format(time.RFC3339); got != "2024-03-01T00:00:00+03:00" {
		t.Errorf("current start = %s", got)
	}
	if got := comparison.Current.LocalEnd.Format(time.RFC3339); got != "2024-03-15T10:00:00+03:00" {
		t.Errorf("current end = %s", got)
	}
	if got := comparison.Previous.LocalStart.Format(time.RFC3339); got != "2024-02-01T00:00:00+03:00" {
		t.Errorf("previous start = %s", got)
	}
	if got := comparison.Previous.LocalEnd.Format(time.RFC3339); got != "2024-03-01T00:00:00+03:00" {
		t.Errorf("previous end = %s", got)
	}
	if comparison.Current.Label != "This Month" || comparison.Previous.Label != "Last Month" {
		t.Errorf("labels = %q / %q", comparison.Current.Label, comparison.Previous.Label)
	}

	// UTC bounds are the same instants.
	if !comparison.Current.UTCStart.Equal(comparison.Current.LocalStart) {
		t.Error("UTC and local starts drifted apart")
	}
	if comparison.Current.UTCStart.Location() != time.UTC {
		t.Error("UTCStart not expressed in UTC")
	}
}

func TestResolvePeriodComparisonWindows(t *testing.T) {
	zone := businesstime.NewZone("EAT", 3)
	now := mustParse(t, "2024-05-20T16:45:00+03:00")

	tests := []struct {
		period        string
		currentStart  string
		previousStart string
	}{
		{"week", "2024-05-13T16:45:00+03:00", "2024-05-06T16:45:00+03:00"},
		{"month", "2024-05-01T00:00:00+03:00", "2024-04-01T00:00:00+03:00"},
		{"quarter", "2024-04-01T00:00:00+03:00", "2024-01-01T00:00:00+03:00"},
		{"year", "2024-01-01T00:00:00+03:00", "2023-01-01T00:00:00+03:00"},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			comparison, err := ResolvePeriodComparison(zone, now, tt.period)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := comparison.Current.LocalStart.Format(time.RFC3339); got != tt.currentStart {
				t.Errorf("current start = %s, want %s", got, tt.currentStart)
			}
			if got := comparison.Previous.LocalStart.Format(time.RFC3339); got != tt.previousStart {
				t.Errorf("previous start = %s, want %s", got, tt.previousStart)
			}

			// Contiguous, non-overlapping: previous end == current start.
			if !comparison.Previous.LocalEnd.Equal(comparison.Current.LocalStart) {
				t.Errorf("previous end %v != current start %v",
					comparison.Previous.LocalEnd, comparison.Current.LocalStart)
			}
			if !comparison.Current.LocalEnd.Equal(zone.ToLocal(now)) {
				t.Errorf("current end %v != now", comparison.Current.LocalEnd)
			}
		})
	}
}

func TestResolvePeriodComparisonInvalid(t *testing.T) {
	zone := businesstime.NewZone("EAT", 3)

	_, err := ResolvePeriodComparison(zone, time.Now(), "fortnight")
	if !errors.Is(err, domainerror.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}

	var analyticsErr *domainerror.AnalyticsError
	if !errors.As(err, &analyticsErr) || analyticsErr.Code != domainerror.ErrCodeInvalidPeriod {
		t.Errorf("expected code %s, got %+v", domainerror.ErrCodeInvalidPeriod, err)
	}
}

func TestResolveTrendWindowNamed(t *testing.T) {
	zone := businesstime.NewZone("EAT", 3)
	now := mustParse(t, "2024-06-30T12:00:00+03:00")

	tests := []struct {
		period string
		days   int
		label  string
	}{
		{"1week", 7, "Last 7 Days"},
		{"1month", 30, "Last 30 Days"},
		{"3months", 90, "Last 3 Months"},
		{"6months", 180, "Last 6 Months"},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			window, err := ResolveTrendWindow(zone, now, tt.period, "", "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			wantStart := zone.ToLocal(now).AddDate(0, 0, -tt.days)
			if !window.LocalStart.Equal(wantStart) {
				t.Errorf("start = %v, want %v", window.LocalStart, wantStart)
			}
			if !window.LocalEnd.Equal(zone.ToLocal(now)) {
				t.Errorf("end = %v, want now", window.LocalEnd)
			}
			if window.Label != tt.label {
				t.Errorf("label = %q, want %q", window.Label, tt.label)
			}
			if window.LocalDays() != tt.days {
				t.Errorf("LocalDays = %d, want %d", window.LocalDays(), tt.days)
			}
		})
	}
}

func TestResolveTrendWindowCustom(t *testing.T) {
	zone := businesstime.NewZone("EAT", 3)
	now := time.Now()

	t.Run("offsetless bounds assumed local", func(t *testing.T) {
		window, err := ResolveTrendWindow(zone, now, "custom", "2024-01-01", "2024-01-08")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := window.UTCStart.Format(time.RFC3339); got != "2023-12-31T21:00:00Z" {
			t.Errorf("UTC start = %s", got)
		}
		if window.LocalDays() != 7 {
			t.Errorf("LocalDays = %d, want 7", window.LocalDays())
		}
	})

	t.Run("missing bound", func(t *testing.T) {
		_, err := ResolveTrendWindow(zone, now, "custom", "2024-01-01", "")
		if !errors.Is(err, domainerror.ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := ResolveTrendWindow(zone, now, "custom", "2024-01-01", "2024-01-01")
		if !errors.Is(err, domainerror.ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := ResolveTrendWindow(zone, now, "custom", "2024-02-01", "2024-01-01")
		if !errors.Is(err, domainerror.ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("unparsable bound", func(t *testing.T) {
		_, err := ResolveTrendWindow(zone, now, "custom", "01/01/2024", "2024-02-01")
		if !errors.Is(err, domainerror.ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("unknown period", func(t *testing.T) {
		_, err := ResolveTrendWindow(zone, now, "2weeks", "", "")
		if !errors.Is(err, domainerror.ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod, got %v", err)
		}
	})
}
