package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aplyease_backend/internal/handlers"
)

// RegisterRoutes mounts every handler group under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ClientHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)
		appHandlers.PayoutHandler.RegisterRoutes(api)
		appHandlers.ResumeHandler.RegisterRoutes(api)
	}
}
