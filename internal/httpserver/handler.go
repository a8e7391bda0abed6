package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"legal-research-assistant/config"
	"legal-research-assistant/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, config.RateLimitConfig{
		RequestsPerSecond: srv.rateLimitRPS,
		Burst:             srv.rateLimitBurst,
	})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupResearchDomain(ctx, api, mw); err != nil {
		return err
	}

	if err := srv.setupToolsDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
