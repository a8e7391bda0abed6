package http

import (
	"github.com/gin-gonic/gin"

	"legal-research-assistant/internal/tools"
	"legal-research-assistant/pkg/log"
)

// Handler is the public interface for the tools HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Execute(c *gin.Context)
}

type handler struct {
	l        log.Logger
	registry *tools.Registry
}

// New creates a new HTTP handler for the tool registry.
func New(l log.Logger, registry *tools.Registry) *handler {
	return &handler{
		l:        l,
		registry: registry,
	}
}
