package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{"growth", "300", "100", "200"},
		{"decline", "50", "200", "-75"},
		{"flat", "120", "120", "0"},
		{"previous zero current positive", "100", "0", "100"},
		{"both zero", "0", "0", "0"},
		{"rounded to two places", "1", "3", "-66.67"},
		{"fractional growth", "105.5", "100", "5.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := decimal.RequireFromString(tt.current)
			previous := decimal.RequireFromString(tt.previous)
			want := decimal.RequireFromString(tt.want)

			got := PercentageChange(current, previous)
			if !got.Equal(want) {
				t.Errorf("PercentageChange(%s, %s) = %s, want %s",
					tt.current, tt.previous, got, want)
			}
		})
	}
}

func TestAveragePerDay(t *testing.T) {
	tests := []struct {
		name  string
		total string
		days  int
		want  string
	}{
		{"even split", "100", 4, "25"},
		{"rounded", "100", 3, "33.33"},
		{"zero days floored to one", "100", 0, "100"},
		{"negative days floored to one", "100", -5, "100"},
		{"zero total", "0", 30, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			want := decimal.RequireFromString(tt.want)

			days := tt.days
			got := AveragePerDay(total, days)
			if !got.Equal(want) {
				t.Errorf("AveragePerDay(%s, %d) = %s, want %s",
					tt.total, days, got, want)
			}
		})
	}
}
