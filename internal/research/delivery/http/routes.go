package http

import (
	"github.com/gin-gonic/gin"

	"legal-research-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	research := rg.Group("/research")
	{
		research.POST("/plan", mw.RateLimit(), h.Plan)
		research.GET("/intents", h.Intents)
	}
}
