// Package currency formats integer-cent amounts for display. Conversion to
// the secondary display currency uses a fixed multiplicative constant from
// configuration; it is a presentation convenience, not a live exchange rate.
package currency

import "fmt"

// FormatUSD renders cents as a dollar string, e.g. 5000 -> "$50.00".
// All arithmetic stays in integers so repeated format/parse cycles cannot
// accumulate floating-point drift.
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// ConvertCents applies the fixed secondary-currency rate to an amount in
// cents and returns whole minor units of the target currency.
func ConvertCents(cents int64, rate float64) int64 {
	if rate <= 0 {
		return 0
	}
	converted := float64(cents) * rate
	if converted >= 0 {
		return int64(converted + 0.5)
	}
	return int64(converted - 0.5)
}
