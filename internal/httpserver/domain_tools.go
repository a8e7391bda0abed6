package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"legal-research-assistant/internal/middleware"
	toolsHTTP "legal-research-assistant/internal/tools/delivery/http"
)

// setupToolsDomain registers the tool registry routes. The registry is
// optional; without it the routes are simply not exposed.
func (srv HTTPServer) setupToolsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.toolRegistry == nil {
		srv.l.Infof(ctx, "Tool registry not configured, skipping tools routes")
		return nil
	}

	h := toolsHTTP.New(srv.l, srv.toolRegistry)

	// Registers /api/v1/tools and /api/v1/tools/:name
	toolsHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Tools domain registered")
	return nil
}
