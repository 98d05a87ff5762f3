package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyFinancials_EvenSplit(t *testing.T) {
	t.Parallel()

	var expenses [12]int64
	f := MonthlyFinancials(2026, 120000, expenses)

	assert.Equal(t, 2026, f.Year)
	assert.Len(t, f.Months, 12)
	for i, m := range f.Months {
		assert.Equal(t, i+1, m.Month)
		assert.Equal(t, int64(10000), m.RevenueCents)
		assert.Equal(t, int64(10000), m.NetCents)
	}
}

func TestMonthlyFinancials_RemainderCentsPreserveTotal(t *testing.T) {
	t.Parallel()

	var expenses [12]int64
	// 100001 / 12 leaves a 5-cent remainder.
	f := MonthlyFinancials(2026, 100001, expenses)

	var sum int64
	for _, m := range f.Months {
		sum += m.RevenueCents
	}
	assert.Equal(t, int64(100001), sum, "monthly buckets must sum back to the exact total")

	// The first months absorb the extra cents.
	assert.Equal(t, f.Months[0].RevenueCents, f.Months[4].RevenueCents)
	assert.Equal(t, f.Months[0].RevenueCents-1, f.Months[5].RevenueCents)
}

func TestMonthlyFinancials_ExpensesAndNet(t *testing.T) {
	t.Parallel()

	var expenses [12]int64
	expenses[0] = 30000
	expenses[6] = 45000

	f := MonthlyFinancials(2026, 240000, expenses)

	assert.Equal(t, int64(75000), f.TotalExpenseCents)
	assert.Equal(t, int64(20000-30000), f.Months[0].NetCents)
	assert.Equal(t, int64(20000-45000), f.Months[6].NetCents)
	assert.Equal(t, int64(20000), f.Months[1].NetCents)
}

func TestMonthlyFinancials_ZeroRevenue(t *testing.T) {
	t.Parallel()

	var expenses [12]int64
	expenses[3] = 10000

	f := MonthlyFinancials(2026, 0, expenses)

	assert.Equal(t, int64(0), f.TotalRevenueCents)
	assert.Equal(t, int64(-10000), f.Months[3].NetCents)
}
