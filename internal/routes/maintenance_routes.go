package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_api/internal/controllers"
	"fleet_api/internal/middleware"
)

func MaintenanceRoutes(r *gin.Engine, logs *controllers.LogController) {
	group := r.Group("/maintenance")
	group.Use(middleware.RequireAuth())
	{
		// Reads are open to any authenticated user.
		group.GET("", logs.GetMaintenanceLogs)

		// Writes are restricted to Fleet Manager.
		write := middleware.Authorize("maintenance:write")
		group.POST("", write, logs.AddMaintenanceLog)
		group.PUT("/:id", write, logs.UpdateMaintenanceLog)
		group.DELETE("/:id", write, logs.DeleteMaintenanceLog)
	}
}
