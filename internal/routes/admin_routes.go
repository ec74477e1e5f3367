package routes

import (
	"github.com/gin-gonic/gin"

	"dormhub/internal/auth"
	"dormhub/internal/controllers"
	"dormhub/internal/middleware"
	"dormhub/internal/models"
)

func AdminRoutes(r *gin.Engine, h *controllers.Handler, tokens *auth.TokenService) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(tokens), middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/users", h.CreateUser)
	}
}
