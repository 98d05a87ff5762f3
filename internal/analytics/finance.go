package analytics

// MonthBucket is one month of the yearly financial rollup. Amounts are
// integer cents.
type MonthBucket struct {
	Month        int   `json:"month"` // 1..12
	RevenueCents int64 `json:"revenue_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	NetCents     int64 `json:"net_cents"`
}

// YearlyFinancials is the monthly financial view for one selected year.
type YearlyFinancials struct {
	Year              int           `json:"year"`
	Months            []MonthBucket `json:"months"`
	TotalRevenueCents int64         `json:"total_revenue_cents"`
	TotalExpenseCents int64         `json:"total_expense_cents"`
}

// MonthlyFinancials builds the 12 monthly buckets for a year. Expenses come
// from the actual per-month payout sums. Payments are not timestamped in the
// data model, so revenue is approximated by splitting the portfolio's total
// revenue evenly across the 12 months; this is documented behavior, not a
// bug to fix here. Remainder cents are spread over the first months so the
// buckets always sum back to the exact total.
func MonthlyFinancials(year int, totalRevenueCents int64, monthlyExpenseCents [12]int64) YearlyFinancials {
	f := YearlyFinancials{
		Year:              year,
		Months:            make([]MonthBucket, 12),
		TotalRevenueCents: totalRevenueCents,
	}

	base := totalRevenueCents / 12
	remainder := totalRevenueCents % 12

	for i := 0; i < 12; i++ {
		revenue := base
		if int64(i) < remainder {
			revenue++
		}
		expense := monthlyExpenseCents[i]

		f.Months[i] = MonthBucket{
			Month:        i + 1,
			RevenueCents: revenue,
			ExpenseCents: expense,
			NetCents:     revenue - expense,
		}
		f.TotalExpenseCents += expense
	}

	return f
}
