package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aplyease_backend/internal/middleware"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/services"
	"aplyease_backend/internal/services/dto"
	"aplyease_backend/pkg/apperrors"
)

type ClientHandler struct {
	*BaseHandler
	clientService services.ClientService
}

func NewClientHandler(base *BaseHandler, clientService services.ClientService) *ClientHandler {
	return &ClientHandler{
		BaseHandler:   base,
		clientService: clientService,
	}
}

func (h *ClientHandler) RegisterRoutes(r *gin.RouterGroup) {
	clients := r.Group("/clients")
	clients.Use(h.Authenticated())
	{
		clients.GET("/me/account", h.GetMyAccount)

		staff := clients.Group("")
		staff.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleEmployee))
		{
			staff.GET("/:clientId/account", h.GetAccount)
		}

		admin := clients.Group("")
		admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.PUT("/:clientId/billing", h.UpdateBilling)
			admin.POST("/:clientId/quota", h.AddQuota)
		}
	}
}

// GetMyAccount lets a client see their own quota and billing state.
func (h *ClientHandler) GetMyAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	account, err := h.clientService.GetAccount(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *ClientHandler) GetAccount(c *gin.Context) {
	account, err := h.clientService.GetAccount(c.Param("clientId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *ClientHandler) UpdateBilling(c *gin.Context) {
	var req dto.UpdateBillingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	if req.AmountPaidCents == nil && req.AmountDueCents == nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("At least one billing field is required"))
		return
	}

	account, err := h.clientService.UpdateBilling(c.Param("clientId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *ClientHandler) AddQuota(c *gin.Context) {
	var req dto.AddQuotaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	account, err := h.clientService.AddQuota(c.Param("clientId"), req.Count)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
