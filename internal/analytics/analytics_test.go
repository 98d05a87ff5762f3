package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aplyease_backend/internal/models"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testConfig() Config {
	return Config{
		ActivityWindowDays: 14,
		Now:                func() time.Time { return testNow },
	}
}

func appWithStatus(status models.ApplicationStatus, daysAgo int) models.JobApplication {
	return models.JobApplication{
		Status:      status,
		DateApplied: testNow.AddDate(0, 0, -daysAgo),
	}
}

func intPtr(v int) *int { return &v }

func TestComputeClientMetrics_NoApplications(t *testing.T) {
	t.Parallel()

	m := ComputeClientMetrics("c1", nil, BillingSnapshot{ApplicationsRemaining: intPtr(10)}, testConfig())

	assert.Equal(t, 0, m.TotalApplications)
	assert.Equal(t, 0.0, m.SuccessRate)
	assert.Equal(t, 0.0, m.RejectionRate)
	assert.False(t, m.HasRecentActivity)
}

func TestComputeClientMetrics_StatusBuckets(t *testing.T) {
	t.Parallel()

	apps := []models.JobApplication{
		appWithStatus(models.ApplicationStatusApplied, 1),
		appWithStatus(models.ApplicationStatusScreening, 2),
		appWithStatus(models.ApplicationStatusOnHold, 3),
		appWithStatus(models.ApplicationStatusInterview, 4),
		appWithStatus(models.ApplicationStatusOffer, 5),
		appWithStatus(models.ApplicationStatusHired, 6),
		appWithStatus(models.ApplicationStatusRejected, 7),
	}

	m := ComputeClientMetrics("c1", apps, BillingSnapshot{ApplicationsRemaining: intPtr(20)}, testConfig())

	assert.Equal(t, 7, m.TotalApplications)
	assert.Equal(t, 3, m.InProgress)
	assert.Equal(t, 2, m.Interviews)
	assert.Equal(t, 1, m.Hired)
	assert.Equal(t, 1, m.Rejected)
	// Every application lands in exactly one bucket.
	assert.Equal(t, m.TotalApplications, m.InProgress+m.Interviews+m.Hired+m.Rejected)
}

func TestComputeClientMetrics_TypicalScenario(t *testing.T) {
	t.Parallel()

	// 10 applications: 3 hired, 2 rejected, 1 interview, 4 applied.
	apps := []models.JobApplication{
		appWithStatus(models.ApplicationStatusHired, 30),
		appWithStatus(models.ApplicationStatusHired, 25),
		appWithStatus(models.ApplicationStatusHired, 20),
		appWithStatus(models.ApplicationStatusRejected, 18),
		appWithStatus(models.ApplicationStatusRejected, 16),
		appWithStatus(models.ApplicationStatusInterview, 10),
		appWithStatus(models.ApplicationStatusApplied, 5),
		appWithStatus(models.ApplicationStatusApplied, 4),
		appWithStatus(models.ApplicationStatusApplied, 2),
		appWithStatus(models.ApplicationStatusApplied, 1),
	}

	m := ComputeClientMetrics("c1", apps, BillingSnapshot{
		ApplicationsRemaining: intPtr(8),
		AmountPaidCents:       500000,
	}, testConfig())

	assert.Equal(t, 30.0, m.SuccessRate)
	assert.Equal(t, 20.0, m.RejectionRate)
	assert.Equal(t, 4, m.InProgress)
	assert.Equal(t, 1, m.Interviews)
	assert.True(t, m.HasRecentActivity)
	assert.Equal(t, PriorityLow, m.Priority)
}

func TestComputeClientMetrics_RatesRoundedToOneDecimal(t *testing.T) {
	t.Parallel()

	// 1 hired of 3 -> 33.333...% rounds to 33.3.
	apps := []models.JobApplication{
		appWithStatus(models.ApplicationStatusHired, 1),
		appWithStatus(models.ApplicationStatusApplied, 2),
		appWithStatus(models.ApplicationStatusApplied, 3),
	}

	m := ComputeClientMetrics("c1", apps, BillingSnapshot{ApplicationsRemaining: intPtr(10)}, testConfig())

	assert.Equal(t, 33.3, m.SuccessRate)
}

func TestComputeClientMetrics_MissingBillingRow(t *testing.T) {
	t.Parallel()

	m := ComputeClientMetrics("c1", nil, BillingSnapshot{}, testConfig())

	assert.Equal(t, 0, m.ApplicationsRemaining)
	assert.Equal(t, PriorityHigh, m.Priority)
}

func TestHasRecentActivity_WindowBoundary(t *testing.T) {
	t.Parallel()

	cfg := testConfig()

	exactlyOnCutoff := []models.JobApplication{appWithStatus(models.ApplicationStatusApplied, 14)}
	assert.True(t, HasRecentActivity(exactlyOnCutoff, cfg), "application exactly on the cutoff counts as recent")

	justOutside := []models.JobApplication{appWithStatus(models.ApplicationStatusApplied, 15)}
	assert.False(t, HasRecentActivity(justOutside, cfg))

	assert.False(t, HasRecentActivity(nil, cfg))
}

func TestHasRecentActivity_MidnightDatesAgainstWallClockNow(t *testing.T) {
	t.Parallel()

	// Applied dates are stored at midnight UTC while the check runs at an
	// arbitrary wall-clock time; the cutoff-day application must still count.
	cfg := Config{
		ActivityWindowDays: 14,
		Now:                func() time.Time { return time.Date(2026, 3, 15, 17, 42, 3, 0, time.UTC) },
	}

	onCutoffDay := []models.JobApplication{{
		Status:      models.ApplicationStatusApplied,
		DateApplied: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}}
	assert.True(t, HasRecentActivity(onCutoffDay, cfg))

	beforeCutoffDay := []models.JobApplication{{
		Status:      models.ApplicationStatusApplied,
		DateApplied: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
	}}
	assert.False(t, HasRecentActivity(beforeCutoffDay, cfg))
}

func TestHasRecentActivity_CustomWindow(t *testing.T) {
	t.Parallel()

	cfg := Config{
		ActivityWindowDays: 7,
		Now:                func() time.Time { return testNow },
	}

	tenDaysAgo := []models.JobApplication{appWithStatus(models.ApplicationStatusApplied, 10)}
	assert.False(t, HasRecentActivity(tenDaysAgo, cfg))

	fiveDaysAgo := []models.JobApplication{appWithStatus(models.ApplicationStatusApplied, 5)}
	assert.True(t, HasRecentActivity(fiveDaysAgo, cfg))
}

func TestClassifyPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		remaining int
		active    bool
		want      PriorityTier
	}{
		{"exhausted quota", 0, true, PriorityHigh},
		{"two remaining with activity still high", 2, true, PriorityHigh},
		{"two remaining without activity", 2, false, PriorityHigh},
		{"five remaining without activity", 5, false, PriorityHigh},
		{"five remaining with activity", 5, true, PriorityMedium},
		{"plenty remaining without activity", 50, false, PriorityMedium},
		{"plenty remaining with activity", 50, true, PriorityLow},
		{"six remaining with activity", 6, true, PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPriority(tt.remaining, tt.active))
		})
	}
}

func TestClassifyPriority_Deterministic(t *testing.T) {
	t.Parallel()

	// Same inputs always give the same tier.
	for i := 0; i < 10; i++ {
		assert.Equal(t, PriorityHigh, ClassifyPriority(2, true))
	}
}

func TestAggregatePortfolio_Empty(t *testing.T) {
	t.Parallel()

	s := AggregatePortfolio(nil)

	assert.Equal(t, 0, s.TotalClients)
	assert.Equal(t, 0.0, s.AverageSuccessRate)
	assert.Equal(t, 0.0, s.AverageRejectionRate)
	assert.Empty(t, s.RankedClients)
}

func TestAggregatePortfolio_Totals(t *testing.T) {
	t.Parallel()

	clients := []ClientMetrics{
		{ClientID: "a", ApplicationsRemaining: 10, SuccessRate: 30.0, RejectionRate: 10.0, AmountPaidCents: 100000, AmountDueCents: 5000, Priority: PriorityLow},
		{ClientID: "b", ApplicationsRemaining: 2, SuccessRate: 20.0, RejectionRate: 40.0, AmountPaidCents: 50000, AmountDueCents: 0, Priority: PriorityHigh},
		{ClientID: "c", ApplicationsRemaining: 5, SuccessRate: 10.0, RejectionRate: 10.0, AmountPaidCents: 25000, AmountDueCents: 2500, Priority: PriorityMedium},
	}

	s := AggregatePortfolio(clients)

	assert.Equal(t, 3, s.TotalClients)
	assert.Equal(t, 1, s.HighPriorityCount)
	assert.Equal(t, 17, s.TotalApplicationsRemaining)
	assert.Equal(t, 20.0, s.AverageSuccessRate)
	assert.Equal(t, 20.0, s.AverageRejectionRate)
	assert.Equal(t, int64(175000), s.TotalRevenueCents)
	assert.Equal(t, int64(7500), s.TotalDueCents)
}

func TestAggregatePortfolio_RankingStableDescending(t *testing.T) {
	t.Parallel()

	clients := []ClientMetrics{
		{ClientID: "a", ApplicationsRemaining: 5},
		{ClientID: "b", ApplicationsRemaining: 10},
		{ClientID: "c", ApplicationsRemaining: 5},
		{ClientID: "d", ApplicationsRemaining: 7},
	}

	s := AggregatePortfolio(clients)

	ids := make([]string, len(s.RankedClients))
	for i, c := range s.RankedClients {
		ids[i] = c.ClientID
	}
	// Descending by remaining; a/c tie keeps input order.
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)

	// The input slice must not be reordered.
	assert.Equal(t, "a", clients[0].ClientID)
	assert.Equal(t, "b", clients[1].ClientID)
}
