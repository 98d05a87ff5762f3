package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aplyease_backend/internal/middleware"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/repositories"
	"aplyease_backend/internal/services"
	"aplyease_backend/internal/services/dto"
	"aplyease_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	apps := r.Group("/applications")
	apps.Use(h.Authenticated())
	{
		apps.GET("", h.ListApplications)
		apps.GET("/:appId", h.GetApplication)

		staff := apps.Group("")
		staff.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleEmployee))
		{
			staff.POST("", h.LogApplication)
			staff.PUT("/:appId", h.UpdateApplication)
			staff.PATCH("/:appId/status", h.UpdateStatus)
			staff.POST("/bulk-status", h.BulkUpdateStatus)
		}

		admin := apps.Group("")
		admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.DELETE("/:appId", h.DeleteApplication)
		}
	}
}

// LogApplication records one application against the client's quota. The
// employee performing the work is taken from the token, never from the body.
func (h *ApplicationHandler) LogApplication(c *gin.Context) {
	employeeID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.appService.Log(employeeID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.appService.GetByID(c.Param("appId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	criteria := repositories.ApplicationFilter{
		ClientID:   c.Query("client_id"),
		EmployeeID: c.Query("employee_id"),
		Status:     models.ApplicationStatus(c.Query("status")),
		Page:       page,
		PageSize:   pageSize,
	}

	// Clients only ever see their own rows regardless of filters sent.
	if role, _ := c.Get("role"); role == models.UserRoleClient || role == string(models.UserRoleClient) {
		criteria.ClientID = userID
	}

	if from := c.Query("date_from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("date_from must be YYYY-MM-DD"))
			return
		}
		criteria.DateFrom = &parsed
	}
	if to := c.Query("date_to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("date_to must be YYYY-MM-DD"))
			return
		}
		criteria.DateTo = &parsed
	}

	apps, total, err := h.appService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}

func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var req dto.UpdateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.appService.Update(c.Param("appId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.appService.UpdateStatus(c.Param("appId"), models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// BulkUpdateStatus always answers 200: the result body reports how many
// items succeeded and which failed.
func (h *ApplicationHandler) BulkUpdateStatus(c *gin.Context) {
	var req dto.BulkStatusUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result := h.appService.BulkUpdateStatus(&req)
	c.JSON(http.StatusOK, result)
}

func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.appService.Delete(c.Param("appId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
