package http

import (
	"github.com/gin-gonic/gin"

	"legal-research-assistant/internal/research"
	"legal-research-assistant/pkg/log"
)

// Handler is the public interface for the research HTTP delivery layer.
type Handler interface {
	Plan(c *gin.Context)
	Intents(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc research.UseCase
}

// New creates a new HTTP handler for the research domain.
func New(l log.Logger, uc research.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
