package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aplyease_backend/internal/middleware"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/services"
	"aplyease_backend/internal/services/dto"
)

type PayoutHandler struct {
	*BaseHandler
	payoutService services.PayoutService
}

func NewPayoutHandler(base *BaseHandler, payoutService services.PayoutService) *PayoutHandler {
	return &PayoutHandler{
		BaseHandler:   base,
		payoutService: payoutService,
	}
}

func (h *PayoutHandler) RegisterRoutes(r *gin.RouterGroup) {
	payouts := r.Group("/payouts")
	payouts.Use(h.Authenticated())
	{
		payouts.GET("/my", middleware.RequireRoles(models.UserRoleEmployee), h.GetMyPayouts)

		admin := payouts.Group("")
		admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.POST("", h.CreatePayout)
			admin.GET("", h.ListPayouts)
			admin.GET("/:payoutId", h.GetPayout)
			admin.PUT("/:payoutId/paid", h.MarkPaid)
		}
	}
}

func (h *PayoutHandler) CreatePayout(c *gin.Context) {
	var req dto.CreatePayoutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	payout, err := h.payoutService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payout)
}

func (h *PayoutHandler) GetPayout(c *gin.Context) {
	payout, err := h.payoutService.GetByID(c.Param("payoutId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payout)
}

func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	year := ParseQueryInt(c, "year", time.Now().Year())

	payouts, err := h.payoutService.ListByYear(year)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payouts": payouts,
		"total":   len(payouts),
		"year":    year,
	})
}

func (h *PayoutHandler) GetMyPayouts(c *gin.Context) {
	employeeID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	payouts, err := h.payoutService.ListByEmployee(employeeID, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payouts": payouts,
		"total":   len(payouts),
	})
}

func (h *PayoutHandler) MarkPaid(c *gin.Context) {
	payout, err := h.payoutService.MarkPaid(c.Param("payoutId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payout)
}
