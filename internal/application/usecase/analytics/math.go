package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentageChange returns the relative difference between current and
// previous as a percentage rounded to two places. A zero previous value
// yields 100 when current is positive ("grew from nothing") and 0 otherwise,
// so the division can never blow up.
func PercentageChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

// AveragePerDay divides a window total by its length in whole local days,
// rounded to two places. The divisor floors at 1 so a window shorter than a
// day never divides by zero.
func AveragePerDay(total decimal.Decimal, windowDays int) decimal.Decimal {
	if windowDays < 1 {
		windowDays = 1
	}
	return total.Div(decimal.NewFromInt(int64(windowDays))).Round(2)
}
