package dto

import "aplyease_backend/internal/analytics"

// ClientMetricsResponse decorates the aggregator output with the formatted
// money strings the dashboard renders directly.
type ClientMetricsResponse struct {
	analytics.ClientMetrics
	AmountPaidDisplay string `json:"amount_paid_display"`
	AmountDueDisplay  string `json:"amount_due_display"`
}

type PortfolioResponse struct {
	analytics.PortfolioSummary
	TotalRevenueDisplay string `json:"total_revenue_display"`
	TotalDueDisplay     string `json:"total_due_display"`
}

// FinancialsResponse adds the secondary display currency view. The
// conversion uses a fixed configured constant, not a live rate.
type FinancialsResponse struct {
	analytics.YearlyFinancials
	SecondaryCurrency          string `json:"secondary_currency"`
	TotalRevenueSecondaryCents int64  `json:"total_revenue_secondary_cents"`
	TotalExpenseSecondaryCents int64  `json:"total_expense_secondary_cents"`
}
