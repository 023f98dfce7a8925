package routes

import (
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every route group: the public API, the
// secret-gated admin API and the two function endpoints at the root.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, adminSecret string) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
	}

	admin := ginRouter.Group("/api/v1/admin")
	admin.Use(middleware.AdminSecretMiddleware(adminSecret))
	{
		appHandlers.AdminHandler.RegisterRoutes(admin)
	}

	// function endpoints keep their original paths at the server root
	appHandlers.FunctionHandler.RegisterRoutes(ginRouter)
}
