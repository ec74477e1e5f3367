package routes

import (
	"github.com/gin-gonic/gin"

	"dormhub/internal/auth"
	"dormhub/internal/controllers"
	"dormhub/internal/middleware"
	"dormhub/internal/models"
)

// HousingRoutes covers the building/room/bed hierarchy. Reads are open to
// any authenticated caller; writes need admin or dorm manager.
func HousingRoutes(r *gin.Engine, h *controllers.Handler, tokens *auth.TokenService) {
	authed := middleware.RequireAuth(tokens)
	manage := middleware.RequireRole(models.RoleAdmin, models.RoleDormManager)

	r.GET("/buildings", authed, h.ListBuildings)
	r.POST("/buildings", authed, manage, h.CreateBuilding)
	r.POST("/rooms", authed, manage, h.CreateRoom)
	r.POST("/beds", authed, manage, h.CreateBed)
}
