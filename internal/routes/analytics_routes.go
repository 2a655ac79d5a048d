package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_api/internal/controllers"
	"fleet_api/internal/middleware"
)

func AnalyticsRoutes(r *gin.Engine, analytics *controllers.AnalyticsController) {
	group := r.Group("/analytics")
	group.Use(middleware.RequireAuth())
	group.Use(middleware.Authorize("analytics:read"))
	{
		group.GET("/dashboard", analytics.Dashboard)
		group.GET("/daily-trips", analytics.DailyTrips)
		group.GET("/financial-evolution", analytics.FinancialEvolution)
		group.GET("/driver-metrics", analytics.DriverMetrics)
		group.GET("/bi", analytics.BusinessIntelligence)
		group.GET("/vehicle/:id", analytics.VehicleAnalytics)
		group.GET("/export", analytics.Export)
	}
}
