package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_api/internal/controllers"
	"fleet_api/internal/middleware"
)

func TripRoutes(r *gin.Engine, trips *controllers.TripController) {
	group := r.Group("/trips")
	group.Use(middleware.RequireAuth())
	{
		// Reads are open to any authenticated user.
		group.GET("", trips.ListTrips)

		// Writes and lifecycle transitions are restricted to Dispatcher.
		write := middleware.Authorize("trips:write")
		group.POST("", write, trips.CreateTrip)
		group.PUT("/:id", write, trips.UpdateTrip)
		group.DELETE("/:id", write, trips.DeleteTrip)
		group.PATCH("/:id/dispatch", write, trips.DispatchTrip)
		group.POST("/:id/complete", write, trips.FinishTrip)
		group.PATCH("/:id/cancel", write, trips.CancelTrip)
	}
}
