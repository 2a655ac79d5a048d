package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_api/internal/controllers"
	"fleet_api/internal/middleware"
)

func FuelRoutes(r *gin.Engine, logs *controllers.LogController) {
	group := r.Group("/fuel")
	group.Use(middleware.RequireAuth())
	{
		// Reads are open to any authenticated user.
		group.GET("", logs.GetFuelLogs)

		// Writes are restricted to Financial Analyst.
		write := middleware.Authorize("fuel:write")
		group.POST("", write, logs.AddFuelLog)
		group.PUT("/:id", write, logs.UpdateFuelLog)
		group.DELETE("/:id", write, logs.DeleteFuelLog)
	}
}
