package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_api/internal/controllers"
	"fleet_api/internal/middleware"
)

func DriverRoutes(r *gin.Engine, drivers *controllers.DriverController) {
	group := r.Group("/drivers")
	group.Use(middleware.RequireAuth())
	{
		// Reads are open to any authenticated user.
		group.GET("", drivers.ListDrivers)

		// Writes are restricted to Safety Officer.
		write := middleware.Authorize("drivers:write")
		group.POST("", write, drivers.CreateDriver)
		group.PUT("/:id", write, drivers.UpdateDriver)
		group.PATCH("/:id/status", write, drivers.UpdateDriverStatus)
	}
}
