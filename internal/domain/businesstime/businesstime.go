// Package businesstime converts between the fixed-offset civil timezone the
// business operates in and the UTC instants used for storage and querying.
package businesstime

import (
	"fmt"
	"time"
)

// Zone is a fixed-offset civil timezone with no daylight-saving rules.
// Stored instants and query boundaries are always UTC; everything the user
// sees or types is civil time in this zone.
type Zone struct {
	loc *time.Location
}

// NewZone creates a Zone with the given name and whole-hour UTC offset.
func NewZone(name string, offsetHours int) *Zone {
	return &Zone{loc: time.FixedZone(name, offsetHours*3600)}
}

// Location returns the underlying fixed-offset location.
func (z *Zone) Location() *time.Location {
	return z.loc
}

// OffsetSeconds returns the zone's UTC offset in seconds.
func (z *Zone) OffsetSeconds() int {
	_, offset := time.Now().In(z.loc).Zone()
	return offset
}

// ToLocal expresses an instant in the business timezone.
func (z *Zone) ToLocal(t time.Time) time.Time {
	return t.In(z.loc)
}

// ToUTC expresses an instant in UTC.
func (z *Zone) ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// layouts without a UTC offset are interpreted as business-local civil time.
var offsetless = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseLocal parses an ISO-8601 string. If the input carries an explicit
// offset it is honored; otherwise the value is read as business-local civil
// time. The returned instant can be converted with ToUTC before storage.
func (z *Zone) ParseLocal(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range offsetless {
		if t, err := time.ParseInLocation(layout, value, z.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 datetime %q", value)
}

// FormatLocal renders an instant as an ISO-8601 string in business-local
// civil time, offset included.
func (z *Zone) FormatLocal(t time.Time) string {
	return t.In(z.loc).Format(time.RFC3339)
}

// FormatLocalDate renders an instant as a business-local calendar date.
func (z *Zone) FormatLocalDate(t time.Time) string {
	return t.In(z.loc).Format("2006-01-02")
}

// StartOfDay returns local midnight of the local calendar day containing t.
func (z *Zone) StartOfDay(t time.Time) time.Time {
	lt := t.In(z.loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, z.loc)
}

// EndOfDay returns 23:59:59 of the local calendar day containing t. Invoice
// ranges are end-inclusive, so an end date given without a time component is
// stretched to cover its whole local day.
func (z *Zone) EndOfDay(t time.Time) time.Time {
	lt := t.In(z.loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 23, 59, 59, 0, z.loc)
}
