package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aplyease_backend/internal/middleware"
	"aplyease_backend/internal/models"
	"aplyease_backend/internal/services"
	"aplyease_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/me")
	me.Use(h.Authenticated())
	{
		me.GET("", h.GetMe)
	}

	admin := r.Group("/admin/users")
	admin.Use(h.Authenticated(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListUsers)
		admin.GET("/:userId", h.GetUser)
		admin.PUT("/:userId", h.UpdateUser)
		admin.DELETE("/:userId", h.DeleteUser)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	offset := (page - 1) * pageSize

	if roleParam := c.Query("role"); roleParam != "" {
		users, err := h.userService.ListByRole(models.UserRole(roleParam), pageSize, offset)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"users": users,
			"total": len(users),
		})
		return
	}

	users, total, err := h.userService.List(pageSize, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":     users,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByID(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Param("userId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
