package services

import (
	"aplyease_backend/internal/analytics"
	"aplyease_backend/internal/config"
	"aplyease_backend/internal/currency"
	"aplyease_backend/internal/repositories"
	"aplyease_backend/internal/services/dto"
	"aplyease_backend/pkg/apperrors"
)

type AnalyticsService interface {
	GetClientMetrics(clientID string) (*dto.ClientMetricsResponse, error)
	GetPortfolio() (*dto.PortfolioResponse, error)
	GetRankedClients() ([]analytics.ClientMetrics, error)
	GetYearlyFinancials(year int) (*dto.FinancialsResponse, error)
}

type analyticsService struct {
	clientRepo repositories.ClientRepository
	appRepo    repositories.ApplicationRepository
	payoutRepo repositories.PayoutRepository
	cfg        analytics.Config
	appCfg     *config.Config
}

func NewAnalyticsService(
	clientRepo repositories.ClientRepository,
	appRepo repositories.ApplicationRepository,
	payoutRepo repositories.PayoutRepository,
	appCfg *config.Config,
) AnalyticsService {
	return &analyticsService{
		clientRepo: clientRepo,
		appRepo:    appRepo,
		payoutRepo: payoutRepo,
		cfg:        analytics.Config{ActivityWindowDays: appCfg.Analytics.ActivityWindowDays},
		appCfg:     appCfg,
	}
}

// GetClientMetrics loads one client's snapshot and runs the aggregator over
// it. The computation itself is pure; concurrent requests are safe without
// coordination.
func (s *analyticsService) GetClientMetrics(clientID string) (*dto.ClientMetricsResponse, error) {
	apps, err := s.appRepo.FindByClient(clientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	billing := analytics.BillingSnapshot{}
	account, err := s.clientRepo.FindByUserID(clientID)
	switch err {
	case nil:
		remaining := account.ApplicationsRemaining
		billing.ApplicationsRemaining = &remaining
		billing.AmountPaidCents = account.AmountPaidCents
		billing.AmountDueCents = account.AmountDueCents
	case repositories.ErrClientNotFound:
		// Missing billing data degrades to zeros; the dashboard must always
		// render a number.
	default:
		return nil, apperrors.InternalError(err)
	}

	metrics := analytics.ComputeClientMetrics(clientID, apps, billing, s.cfg)

	return &dto.ClientMetricsResponse{
		ClientMetrics:     metrics,
		AmountPaidDisplay: currency.FormatUSD(metrics.AmountPaidCents),
		AmountDueDisplay:  currency.FormatUSD(metrics.AmountDueCents),
	}, nil
}

func (s *analyticsService) GetPortfolio() (*dto.PortfolioResponse, error) {
	clients, err := s.collectClientMetrics()
	if err != nil {
		return nil, err
	}

	summary := analytics.AggregatePortfolio(clients)

	return &dto.PortfolioResponse{
		PortfolioSummary:    summary,
		TotalRevenueDisplay: currency.FormatUSD(summary.TotalRevenueCents),
		TotalDueDisplay:     currency.FormatUSD(summary.TotalDueCents),
	}, nil
}

func (s *analyticsService) GetRankedClients() ([]analytics.ClientMetrics, error) {
	clients, err := s.collectClientMetrics()
	if err != nil {
		return nil, err
	}
	return analytics.AggregatePortfolio(clients).RankedClients, nil
}

func (s *analyticsService) GetYearlyFinancials(year int) (*dto.FinancialsResponse, error) {
	clients, err := s.collectClientMetrics()
	if err != nil {
		return nil, err
	}
	summary := analytics.AggregatePortfolio(clients)

	expenses, err := s.payoutRepo.SumByMonth(year)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	financials := analytics.MonthlyFinancials(year, summary.TotalRevenueCents, expenses)
	rate := s.appCfg.Currency.SecondaryRate

	return &dto.FinancialsResponse{
		YearlyFinancials:           financials,
		SecondaryCurrency:          s.appCfg.Currency.SecondaryCode,
		TotalRevenueSecondaryCents: currency.ConvertCents(financials.TotalRevenueCents, rate),
		TotalExpenseSecondaryCents: currency.ConvertCents(financials.TotalExpenseCents, rate),
	}, nil
}

// collectClientMetrics builds the per-client metrics for every client
// account, preserving the repository's stable ordering for tie-breaks.
func (s *analyticsService) collectClientMetrics() ([]analytics.ClientMetrics, error) {
	accounts, err := s.clientRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	metrics := make([]analytics.ClientMetrics, 0, len(accounts))
	for _, account := range accounts {
		apps, err := s.appRepo.FindByClient(account.UserID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		remaining := account.ApplicationsRemaining
		billing := analytics.BillingSnapshot{
			ApplicationsRemaining: &remaining,
			AmountPaidCents:       account.AmountPaidCents,
			AmountDueCents:        account.AmountDueCents,
		}
		metrics = append(metrics, analytics.ComputeClientMetrics(account.UserID, apps, billing, s.cfg))
	}

	return metrics, nil
}
