package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_api/internal/controllers"
	"fleet_api/internal/middleware"
)

func VehicleRoutes(r *gin.Engine, vehicles *controllers.VehicleController) {
	group := r.Group("/vehicles")
	group.Use(middleware.RequireAuth())
	{
		// Reads are open to any authenticated user.
		group.GET("", vehicles.ListVehicles)
		group.GET("/positions", vehicles.VehiclePositions)
		group.GET("/:id/analytics", vehicles.VehicleAnalytics)

		// Writes are restricted to Fleet Manager.
		write := middleware.Authorize("vehicles:write")
		group.POST("", write, vehicles.CreateVehicle)
		group.PUT("/:id", write, vehicles.UpdateVehicle)
		group.DELETE("/:id", write, vehicles.DeleteVehicle)
		group.PATCH("/:id/retire", write, vehicles.RetireVehicle)
	}
}
