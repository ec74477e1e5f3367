package routes

import (
	"github.com/gin-gonic/gin"

	"dormhub/internal/auth"
	"dormhub/internal/controllers"
	"dormhub/internal/middleware"
	"dormhub/internal/models"
)

func TicketRoutes(r *gin.Engine, h *controllers.Handler, tokens *auth.TokenService) {
	tickets := r.Group("/tickets")
	tickets.Use(middleware.RequireAuth(tokens))
	{
		tickets.GET("", h.ListTickets)
		tickets.POST("", h.CreateTicket)
		tickets.PATCH("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleDormManager), h.UpdateTicket)
	}
}
