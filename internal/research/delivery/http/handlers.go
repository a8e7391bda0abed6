package http

import (
	"github.com/gin-gonic/gin"

	"legal-research-assistant/pkg/response"
)

// Plan godoc
// @Summary     Build a research plan
// @Description Classifies a free-text legal question, routes it to knowledge domains, and returns ready-to-dispatch query parameters per endpoint.
// @Tags        Research
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Question and effort budget"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/research/plan [POST]
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Plan(ctx, buildScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Plan: %v", err)
		if mapped, known := h.mapError(err); known {
			response.Error(c, mapped, nil)
		} else {
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// Intents godoc
// @Summary     List known intents
// @Description Returns the static intent routing table: every recognized intent name with the endpoints it dispatches to.
// @Tags        Research
// @Produce     json
// @Success     200 {object} intentsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/research/intents [GET]
func (h *handler) Intents(c *gin.Context) {
	ctx := c.Request.Context()

	routes := h.uc.KnownIntents(ctx)
	response.OK(c, h.newIntentsResp(routes))
}
