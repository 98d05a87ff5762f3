package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"aplyease_backend/internal/analytics"
	"aplyease_backend/internal/email"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/services/dto"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubUserRepo struct {
	cleaned int64
}

func (s *stubUserRepo) FindByID(id string) (*models.User, error)           { return nil, nil }
func (s *stubUserRepo) FindByEmail(email string) (*models.User, error)     { return nil, nil }
func (s *stubUserRepo) Create(user *models.User) error                     { return nil }
func (s *stubUserRepo) Update(user *models.User) error                     { return nil }
func (s *stubUserRepo) UpdateStatus(id string, st models.UserStatus) error { return nil }
func (s *stubUserRepo) Delete(userID string) error                         { return nil }
func (s *stubUserRepo) FindByRole(role models.UserRole, limit, offset int) ([]models.User, error) {
	return nil, nil
}
func (s *stubUserRepo) CountByRole(role models.UserRole) (int64, error) { return 0, nil }
func (s *stubUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	return nil, nil
}
func (s *stubUserRepo) CountAll() (int64, error)                        { return 0, nil }
func (s *stubUserRepo) CreateRefreshToken(t *models.RefreshToken) error { return nil }
func (s *stubUserRepo) FindRefreshToken(t string) (*models.RefreshToken, error) {
	return nil, nil
}
func (s *stubUserRepo) DeleteRefreshToken(t string) error           { return nil }
func (s *stubUserRepo) DeleteUserRefreshTokens(userID string) error { return nil }
func (s *stubUserRepo) CleanExpiredRefreshTokens() (int64, error)   { return s.cleaned, nil }

type stubAnalyticsService struct {
	ranked []analytics.ClientMetrics
}

func (s *stubAnalyticsService) GetClientMetrics(clientID string) (*dto.ClientMetricsResponse, error) {
	return nil, nil
}
func (s *stubAnalyticsService) GetPortfolio() (*dto.PortfolioResponse, error) { return nil, nil }
func (s *stubAnalyticsService) GetRankedClients() ([]analytics.ClientMetrics, error) {
	return s.ranked, nil
}
func (s *stubAnalyticsService) GetYearlyFinancials(year int) (*dto.FinancialsResponse, error) {
	return nil, nil
}

func TestMaintenanceWorker_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	w := NewMaintenanceWorker(&stubUserRepo{}, &stubAnalyticsService{}, &email.MockProvider{}, "admin@aplyease.com")
	w.Start(ctx)

	cancel()
	// Give the loops a moment to observe cancellation; goleak in TestMain
	// fails the package if they linger.
	time.Sleep(50 * time.Millisecond)
}

func TestMaintenanceWorker_NoAlertEmailSkipsAlertLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &email.MockProvider{}
	w := NewMaintenanceWorker(&stubUserRepo{}, &stubAnalyticsService{
		ranked: []analytics.ClientMetrics{{ClientID: "c1", Priority: analytics.PriorityHigh}},
	}, provider, "")
	w.Start(ctx)

	cancel()
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, provider.Sent)
}
