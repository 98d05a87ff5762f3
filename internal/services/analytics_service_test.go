package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aplyease_backend/internal/config"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/repositories"
)

type fakePayoutRepo struct {
	payouts  map[string]*models.EmployeePayout
	byMonth  [12]int64
	sumCalls int
}

func newFakePayoutRepo() *fakePayoutRepo {
	return &fakePayoutRepo{payouts: make(map[string]*models.EmployeePayout)}
}

func (f *fakePayoutRepo) Create(p *models.EmployeePayout) error {
	f.payouts[p.ID] = p
	return nil
}

func (f *fakePayoutRepo) FindByID(id string) (*models.EmployeePayout, error) {
	p, ok := f.payouts[id]
	if !ok {
		return nil, repositories.ErrPayoutNotFound
	}
	return p, nil
}

func (f *fakePayoutRepo) FindByYear(year int) ([]models.EmployeePayout, error) {
	return nil, nil
}

func (f *fakePayoutRepo) FindByEmployee(employeeID string, limit, offset int) ([]models.EmployeePayout, error) {
	return nil, nil
}

func (f *fakePayoutRepo) MarkPaid(id string) error {
	p, ok := f.payouts[id]
	if !ok {
		return repositories.ErrPayoutNotFound
	}
	p.Status = models.PayoutStatusPaid
	return nil
}

func (f *fakePayoutRepo) SumByMonth(year int) ([12]int64, error) {
	f.sumCalls++
	return f.byMonth, nil
}

func testAppConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Analytics.ActivityWindowDays = 14
	cfg.Currency.SecondaryCode = "EUR"
	cfg.Currency.SecondaryRate = 0.92
	return cfg
}

func TestGetClientMetrics_FormatsMoney(t *testing.T) {
	t.Parallel()

	clientRepo := newFakeClientRepo()
	clientRepo.accounts["client-1"] = &models.ClientAccount{
		UserID:                "client-1",
		ApplicationsRemaining: 10,
		AmountPaidCents:       125050,
		AmountDueCents:        5000,
	}
	appRepo := newFakeAppRepo()
	appRepo.apps["a1"] = &models.JobApplication{
		BaseModel:   models.BaseModel{ID: "a1"},
		ClientID:    "client-1",
		Status:      models.ApplicationStatusHired,
		DateApplied: time.Now(),
	}

	svc := NewAnalyticsService(clientRepo, appRepo, newFakePayoutRepo(), testAppConfig())

	resp, err := svc.GetClientMetrics("client-1")
	require.NoError(t, err)

	assert.Equal(t, "$1250.50", resp.AmountPaidDisplay)
	assert.Equal(t, "$50.00", resp.AmountDueDisplay)
	assert.Equal(t, 1, resp.Hired)
	assert.Equal(t, 100.0, resp.SuccessRate)
}

func TestGetClientMetrics_MissingAccountDegradesToZero(t *testing.T) {
	t.Parallel()

	svc := NewAnalyticsService(newFakeClientRepo(), newFakeAppRepo(), newFakePayoutRepo(), testAppConfig())

	resp, err := svc.GetClientMetrics("unknown")
	require.NoError(t, err)

	assert.Equal(t, 0, resp.ApplicationsRemaining)
	assert.Equal(t, "$0.00", resp.AmountPaidDisplay)
}

func TestGetPortfolio_AggregatesAllAccounts(t *testing.T) {
	t.Parallel()

	clientRepo := newFakeClientRepo()
	clientRepo.accounts["c1"] = &models.ClientAccount{UserID: "c1", ApplicationsRemaining: 10, AmountPaidCents: 100000}
	clientRepo.accounts["c2"] = &models.ClientAccount{UserID: "c2", ApplicationsRemaining: 1, AmountPaidCents: 50000}

	svc := NewAnalyticsService(clientRepo, newFakeAppRepo(), newFakePayoutRepo(), testAppConfig())

	resp, err := svc.GetPortfolio()
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalClients)
	assert.Equal(t, 11, resp.TotalApplicationsRemaining)
	assert.Equal(t, int64(150000), resp.TotalRevenueCents)
	assert.Equal(t, "$1500.00", resp.TotalRevenueDisplay)
	require.Len(t, resp.RankedClients, 2)
	assert.Equal(t, "c1", resp.RankedClients[0].ClientID, "ranked descending by remaining quota")
}

func TestGetYearlyFinancials_UsesPayoutSums(t *testing.T) {
	t.Parallel()

	clientRepo := newFakeClientRepo()
	clientRepo.accounts["c1"] = &models.ClientAccount{UserID: "c1", AmountPaidCents: 120000}

	payoutRepo := newFakePayoutRepo()
	payoutRepo.byMonth[0] = 30000

	svc := NewAnalyticsService(clientRepo, newFakeAppRepo(), payoutRepo, testAppConfig())

	resp, err := svc.GetYearlyFinancials(2026)
	require.NoError(t, err)

	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 1, payoutRepo.sumCalls)
	assert.Equal(t, int64(10000), resp.Months[0].RevenueCents)
	assert.Equal(t, int64(-20000), resp.Months[0].NetCents)
	assert.Equal(t, "EUR", resp.SecondaryCurrency)
	assert.Equal(t, int64(110400), resp.TotalRevenueSecondaryCents)
}
