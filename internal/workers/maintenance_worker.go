package workers

import (
	"context"
	"time"

	"aplyease_backend/internal/analytics"
	"aplyease_backend/internal/email"
	"aplyease_backend/internal/logger"
	"aplyease_backend/internal/repositories"
	"aplyease_backend/internal/services"
)

const (
	tokenCleanupInterval  = 6 * time.Hour
	priorityAlertInterval = 24 * time.Hour
)

// MaintenanceWorker runs the periodic background jobs: expired refresh-token
// cleanup and the daily high-priority client alert.
type MaintenanceWorker struct {
	userRepo         repositories.UserRepository
	analyticsService services.AnalyticsService
	emailProv        email.Provider
	alertEmail       string
}

func NewMaintenanceWorker(
	userRepo repositories.UserRepository,
	analyticsService services.AnalyticsService,
	emailProv email.Provider,
	alertEmail string,
) *MaintenanceWorker {
	return &MaintenanceWorker{
		userRepo:         userRepo,
		analyticsService: analyticsService,
		emailProv:        emailProv,
		alertEmail:       alertEmail,
	}
}

// Start launches the background loops. They stop when ctx is cancelled.
func (w *MaintenanceWorker) Start(ctx context.Context) {
	go w.cleanExpiredTokens(ctx)
	if w.alertEmail != "" {
		go w.sendPriorityAlerts(ctx)
	}
}

func (w *MaintenanceWorker) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("maintenance worker stopped", "job", "token_cleanup")
			return
		case <-ticker.C:
			removed, err := w.userRepo.CleanExpiredRefreshTokens()
			logger.WorkerLog("maintenance", "clean_expired_refresh_tokens", err)
			if err == nil && removed > 0 {
				logger.Info("removed expired refresh tokens", "count", removed)
			}
		}
	}
}

func (w *MaintenanceWorker) sendPriorityAlerts(ctx context.Context) {
	ticker := time.NewTicker(priorityAlertInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("maintenance worker stopped", "job", "priority_alert")
			return
		case <-ticker.C:
			clients, err := w.analyticsService.GetRankedClients()
			if err != nil {
				logger.WorkerLog("maintenance", "priority_alert", err)
				continue
			}

			high := 0
			for _, c := range clients {
				if c.Priority == analytics.PriorityHigh {
					high++
				}
			}
			if high == 0 {
				continue
			}

			err = w.emailProv.SendPriorityAlert(w.alertEmail, high)
			logger.WorkerLog("maintenance", "priority_alert", err)
		}
	}
}
