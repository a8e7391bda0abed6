package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"legal-research-assistant/internal/middleware"
	researchHTTP "legal-research-assistant/internal/research/delivery/http"
)

// setupResearchDomain registers the research planning routes.
func (srv HTTPServer) setupResearchDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := researchHTTP.New(srv.l, srv.researchUC)

	// Registers /api/v1/research/plan and /api/v1/research/intents
	researchHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Research domain registered")
	return nil
}
