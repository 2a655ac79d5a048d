package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_api/internal/controllers"
	"fleet_api/internal/middleware"
)

func AuthRoutes(r *gin.Engine, auth *controllers.AuthController) {
	group := r.Group("/auth")
	{
		group.POST("/register", auth.Register)
		group.POST("/login", auth.Login)
		group.POST("/forgot-password", auth.ForgotPassword)
		group.GET("/profile", middleware.RequireAuth(), auth.Profile)
	}
}
