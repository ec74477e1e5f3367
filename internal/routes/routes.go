package routes

import (
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dormhub/internal/auth"
	"dormhub/internal/controllers"
)

// SetupRouter wires every endpoint group onto a fresh engine.
func SetupRouter(h *controllers.Handler, tokens *auth.TokenService) *gin.Engine {
	r := gin.New()

	// Request logging middleware
	r.Use(ginlogger.SetLogger())

	// Panics collapse to the opaque 500 body; detail stays server-side.
	r.Use(gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		logrus.WithField("panic", err).Error("recovered from handler panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	AuthRoutes(r, h)
	AdminRoutes(r, h, tokens)
	HousingRoutes(r, h, tokens)
	StudentRoutes(r, h, tokens)
	TicketRoutes(r, h, tokens)

	return r
}
