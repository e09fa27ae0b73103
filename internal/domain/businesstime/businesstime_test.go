package businesstime

import (
	"testing"
	"time"
)

func TestParseLocal(t *testing.T) {
	zone := NewZone("EAT", 3)

	tests := []struct {
		name    string
		input   string
		wantUTC string
		wantErr bool
	}{
		{
			name:    "offsetless datetime assumed local",
			input:   "2024-03-15T10:00:00",
			wantUTC: "2024-03-15T07:00:00Z",
		},
		{
			name:    "offsetless minutes precision",
			input:   "2024-03-15T10:00",
			wantUTC: "2024-03-15T07:00:00Z",
		},
		{
			name:    "date only assumed local midnight",
			input:   "2024-03-15",
			wantUTC: "2024-03-14T21:00:00Z",
		},
		{
			name:    "explicit offset honored",
			input:   "2024-03-15T10:00:00+05:00",
			wantUTC: "2024-03-15T05:00:00Z",
		},
		{
			name:    "explicit zulu honored",
			input:   "2024-03-15T10:00:00Z",
			wantUTC: "2024-03-15T10:00:00Z",
		},
		{
			name:    "garbage rejected",
			input:   "15/03/2024",
			wantErr: true,
		},
		{
			name:    "empty rejected",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := zone.ParseLocal(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLocal(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLocal(%q) unexpected error: %v", tt.input, err)
			}
			want, _ := time.Parse(time.RFC3339, tt.wantUTC)
			if !got.Equal(want) {
				t.Errorf("ParseLocal(%q) = %v, want instant %v", tt.input, got, want)
			}
		})
	}
}

func TestLocalRoundTrip(t *testing.T) {
	zone := NewZone("EAT", 3)

	// A local civil time converted to UTC and back yields the original
	// civil time and offset.
	original := "2024-03-15T10:30:00+03:00"
	parsed, err := zone.ParseLocal(original)
	if err != nil {
		t.Fatalf("ParseLocal: %v", err)
	}

	utc := zone.ToUTC(parsed)
	if utc.Location() != time.UTC {
		t.Errorf("ToUTC location = %v, want UTC", utc.Location())
	}

	if got := zone.FormatLocal(utc); got != original {
		t.Errorf("round trip = %q, want %q", got, original)
	}
}

func TestDayBounds(t *testing.T) {
	zone := NewZone("EAT", 3)

	// 2024-03-15T22:30Z is already 2024-03-16T01:30 local.
	instant, _ := time.Parse(time.RFC3339, "2024-03-15T22:30:00Z")

	start := zone.StartOfDay(instant)
	if got := start.Format(time.RFC3339); got != "2024-03-16T00:00:00+03:00" {
		t.Errorf("StartOfDay = %q", got)
	}

	end := zone.EndOfDay(instant)
	if got := end.Format(time.RFC3339); got != "2024-03-16T23:59:59+03:00" {
		t.Errorf("EndOfDay = %q", got)
	}

	if got := zone.FormatLocalDate(instant); got != "2024-03-16" {
		t.Errorf("FormatLocalDate = %q, want local day after UTC day", got)
	}
}
