// Package valueobject defines immutable value types shared across the domain.
package valueobject

import "time"

// DualWindow is a time window carried in both representations at once: UTC
// bounds for querying the ledger and business-local bounds for display and
// day-count math. Keeping the pair in one value prevents the two from
// drifting apart as windows are passed around.
type DualWindow struct {
	UTCStart   time.Time
	UTCEnd     time.Time
	LocalStart time.Time
	LocalEnd   time.Time
	Label      string
}

// NewDualWindow builds a DualWindow from local bounds, deriving UTC bounds.
func NewDualWindow(localStart, localEnd time.Time, label string) DualWindow {
	return DualWindow{
		UTCStart:   localStart.UTC(),
		UTCEnd:     localEnd.UTC(),
		LocalStart: localStart,
		LocalEnd:   localEnd,
		Label:      label,
	}
}

// LocalDays returns the window length in whole local days, floored at 1.
// Per-day averages divide by this, so UTC/local day-boundary misalignment
// never produces an off-by-one or a division by zero.
func (w DualWindow) LocalDays() int {
	days := int(w.LocalEnd.Sub(w.LocalStart).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
