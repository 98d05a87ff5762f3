package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aplyease_backend/internal/middleware"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/services"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	analytics.Use(h.Authenticated())
	{
		analytics.GET("/clients/me", h.GetMyMetrics)

		staff := analytics.Group("")
		staff.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleEmployee))
		{
			staff.GET("/clients/:clientId", h.GetClientMetrics)
			staff.GET("/portfolio", h.GetPortfolio)
			staff.GET("/clients", h.GetRankedClients)
		}

		admin := analytics.Group("")
		admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.GET("/financials", h.GetYearlyFinancials)
		}
	}
}

// GetMyMetrics returns the dashboard metrics for the calling client.
func (h *AnalyticsHandler) GetMyMetrics(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	metrics, err := h.analyticsService.GetClientMetrics(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *AnalyticsHandler) GetClientMetrics(c *gin.Context) {
	metrics, err := h.analyticsService.GetClientMetrics(c.Param("clientId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *AnalyticsHandler) GetPortfolio(c *gin.Context) {
	summary, err := h.analyticsService.GetPortfolio()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetRankedClients serves the attention-ordered client list for the staff
// dashboard (highest remaining quota first).
func (h *AnalyticsHandler) GetRankedClients(c *gin.Context) {
	clients, err := h.analyticsService.GetRankedClients()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clients": clients,
		"total":   len(clients),
	})
}

func (h *AnalyticsHandler) GetYearlyFinancials(c *gin.Context) {
	year := ParseQueryInt(c, "year", time.Now().Year())

	financials, err := h.analyticsService.GetYearlyFinancials(year)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, financials)
}
