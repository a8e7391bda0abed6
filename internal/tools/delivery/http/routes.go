package http

import (
	"github.com/gin-gonic/gin"

	"legal-research-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tools := rg.Group("/tools")
	{
		tools.GET("", h.List)
		tools.POST("/:name", mw.RateLimit(), h.Execute)
	}
}
