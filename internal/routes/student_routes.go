package routes

import (
	"github.com/gin-gonic/gin"

	"dormhub/internal/auth"
	"dormhub/internal/controllers"
	"dormhub/internal/middleware"
	"dormhub/internal/models"
)

func StudentRoutes(r *gin.Engine, h *controllers.Handler, tokens *auth.TokenService) {
	students := r.Group("/students")
	students.Use(middleware.RequireAuth(tokens), middleware.RequireRole(models.RoleAdmin, models.RoleDormManager))
	{
		students.POST("", h.CreateStudent)
		students.POST("/:id/checkin", h.Checkin)
		students.POST("/:id/checkout", h.Checkout)
	}
}
