// Package analytics computes per-client performance metrics, priority
// tiers and portfolio-level rollups for the dashboards. Everything in this
// package is a pure function over an in-memory snapshot: no locking, no
// shared state, safe to call from concurrent requests.
package analytics

import (
	"math"
	"sort"
	"time"

	"aplyease_backend/internal/models"
)

// DefaultActivityWindowDays is the lookback window used to decide whether a
// client has recent application activity. The exact length is a product
// knob, so it is injectable via Config rather than hard-coded at call sites.
const DefaultActivityWindowDays = 14

type PriorityTier string

const (
	PriorityHigh   PriorityTier = "high"
	PriorityMedium PriorityTier = "medium"
	PriorityLow    PriorityTier = "low"
)

// Config carries the tunables of the aggregator.
type Config struct {
	ActivityWindowDays int
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (c Config) windowDays() int {
	if c.ActivityWindowDays > 0 {
		return c.ActivityWindowDays
	}
	return DefaultActivityWindowDays
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// BillingSnapshot is the subset of ClientAccount the aggregator reads.
// ApplicationsRemaining is a pointer so a missing billing row degrades to
// zero (maximally urgent) instead of crashing the dashboard.
type BillingSnapshot struct {
	ApplicationsRemaining *int
	AmountPaidCents       int64
	AmountDueCents        int64
}

// ClientMetrics is the per-client summary consumed by the dashboard views.
type ClientMetrics struct {
	ClientID              string       `json:"client_id"`
	TotalApplications     int          `json:"total_applications"`
	InProgress            int          `json:"in_progress"`
	Interviews            int          `json:"interviews"`
	Hired                 int          `json:"hired"`
	Rejected              int          `json:"rejected"`
	RejectionRate         float64      `json:"rejection_rate"`
	SuccessRate           float64      `json:"success_rate"`
	ApplicationsRemaining int          `json:"applications_remaining"`
	AmountPaidCents       int64        `json:"amount_paid_cents"`
	AmountDueCents        int64        `json:"amount_due_cents"`
	HasRecentActivity     bool         `json:"has_recent_activity"`
	Priority              PriorityTier `json:"priority"`
}

// ComputeClientMetrics derives the summary statistics and priority tier for
// one client from its raw application rows and billing snapshot.
func ComputeClientMetrics(clientID string, apps []models.JobApplication, billing BillingSnapshot, cfg Config) ClientMetrics {
	m := ClientMetrics{
		ClientID:        clientID,
		AmountPaidCents: billing.AmountPaidCents,
		AmountDueCents:  billing.AmountDueCents,
	}
	if billing.ApplicationsRemaining != nil {
		m.ApplicationsRemaining = *billing.ApplicationsRemaining
	}

	for _, app := range apps {
		m.TotalApplications++
		switch app.Status {
		case models.ApplicationStatusApplied, models.ApplicationStatusScreening, models.ApplicationStatusOnHold:
			m.InProgress++
		case models.ApplicationStatusInterview, models.ApplicationStatusOffer:
			m.Interviews++
		case models.ApplicationStatusHired:
			m.Hired++
		case models.ApplicationStatusRejected:
			m.Rejected++
		}
	}

	if m.TotalApplications > 0 {
		m.RejectionRate = roundRate(float64(m.Rejected) / float64(m.TotalApplications) * 100)
		m.SuccessRate = roundRate(float64(m.Hired) / float64(m.TotalApplications) * 100)
	}

	m.HasRecentActivity = HasRecentActivity(apps, cfg)
	m.Priority = ClassifyPriority(m.ApplicationsRemaining, m.HasRecentActivity)
	return m
}

// HasRecentActivity reports whether at least one application was applied
// inside the lookback window ending now. DateApplied values are calendar
// dates at midnight UTC, so the cutoff is truncated to its calendar date:
// an application exactly on the cutoff day counts as recent regardless of
// the wall-clock time of the check.
func HasRecentActivity(apps []models.JobApplication, cfg Config) bool {
	d := cfg.now().AddDate(0, 0, -cfg.windowDays())
	cutoff := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	for _, app := range apps {
		if !app.DateApplied.Before(cutoff) {
			return true
		}
	}
	return false
}

// ClassifyPriority maps quota and activity state to a tier. Rules are
// evaluated top to bottom and the first match wins, so a client with two
// applications left is High regardless of activity.
func ClassifyPriority(applicationsRemaining int, hasRecentActivity bool) PriorityTier {
	switch {
	case applicationsRemaining <= 2:
		return PriorityHigh
	case applicationsRemaining <= 5 && !hasRecentActivity:
		return PriorityHigh
	case applicationsRemaining <= 5:
		return PriorityMedium
	case !hasRecentActivity:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// PortfolioSummary aggregates the metrics of all clients visible to the caller.
type PortfolioSummary struct {
	TotalClients               int             `json:"total_clients"`
	HighPriorityCount          int             `json:"high_priority_count"`
	TotalApplicationsRemaining int             `json:"total_applications_remaining"`
	AverageSuccessRate         float64         `json:"average_success_rate"`
	AverageRejectionRate       float64         `json:"average_rejection_rate"`
	TotalRevenueCents          int64           `json:"total_revenue_cents"`
	TotalDueCents              int64           `json:"total_due_cents"`
	RankedClients              []ClientMetrics `json:"ranked_clients"`
}

// AggregatePortfolio rolls the per-client metrics up into portfolio totals
// and a ranked view sorted descending by remaining quota. The sort is
// stable: ties keep their original relative order for chart rendering.
func AggregatePortfolio(clients []ClientMetrics) PortfolioSummary {
	s := PortfolioSummary{TotalClients: len(clients)}

	var successSum, rejectionSum float64
	for _, c := range clients {
		if c.Priority == PriorityHigh {
			s.HighPriorityCount++
		}
		s.TotalApplicationsRemaining += c.ApplicationsRemaining
		s.TotalRevenueCents += c.AmountPaidCents
		s.TotalDueCents += c.AmountDueCents
		successSum += c.SuccessRate
		rejectionSum += c.RejectionRate
	}

	if len(clients) > 0 {
		s.AverageSuccessRate = roundRate(successSum / float64(len(clients)))
		s.AverageRejectionRate = roundRate(rejectionSum / float64(len(clients)))
	}

	ranked := make([]ClientMetrics, len(clients))
	copy(ranked, clients)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ApplicationsRemaining > ranked[j].ApplicationsRemaining
	})
	s.RankedClients = ranked

	return s
}

// roundRate rounds a percentage to one decimal place.
func roundRate(v float64) float64 {
	return math.Round(v*10) / 10
}
