package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_api/internal/controllers"
	"fleet_api/internal/middleware"
	"fleet_api/internal/services"
)

// SetupRouter wires the services, controllers and route groups onto one
// engine. The database handle is injected here once and passed down
// explicitly.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
	}))

	tripService := services.NewTripService(db)
	analyticsService := services.NewAnalyticsService(db)

	auth := controllers.NewAuthController(db)
	vehicles := controllers.NewVehicleController(db, analyticsService)
	drivers := controllers.NewDriverController(db)
	trips := controllers.NewTripController(tripService)
	logs := controllers.NewLogController(db)
	analytics := controllers.NewAnalyticsController(analyticsService)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Fleet Management API is running"})
	})

	AuthRoutes(r, auth)
	VehicleRoutes(r, vehicles)
	DriverRoutes(r, drivers)
	TripRoutes(r, trips)
	MaintenanceRoutes(r, logs)
	FuelRoutes(r, logs)
	AnalyticsRoutes(r, analytics)

	return r
}
