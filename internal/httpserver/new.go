package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"legal-research-assistant/internal/research"
	"legal-research-assistant/internal/tools"
	"legal-research-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Research domain
	researchUC research.UseCase

	// Tool registry
	toolRegistry *tools.Registry

	// Rate limiting
	rateLimitRPS   int
	rateLimitBurst int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ResearchUseCase research.UseCase
	ToolRegistry    *tools.Registry

	RateLimitRPS   int
	RateLimitBurst int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		researchUC:     cfg.ResearchUseCase,
		toolRegistry:   cfg.ToolRegistry,
		rateLimitRPS:   cfg.RateLimitRPS,
		rateLimitBurst: cfg.RateLimitBurst,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.researchUC == nil {
		return errors.New("research usecase is required")
	}
	return nil
}
