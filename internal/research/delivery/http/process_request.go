package http

import (
	"github.com/gin-gonic/gin"

	"legal-research-assistant/internal/middleware"
	"legal-research-assistant/internal/model"
)

// processPlanReq binds and validates the plan request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// buildScope derives the request scope from headers and the request ID
// middleware. The user ID is optional; the service has no auth layer.
func buildScope(c *gin.Context) model.Scope {
	return model.Scope{
		UserID:    c.GetHeader("X-User-ID"),
		RequestID: c.GetString(middleware.RequestIDKey),
	}
}
