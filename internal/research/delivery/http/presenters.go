package http

import (
	"legal-research-assistant/internal/intent"
	"legal-research-assistant/internal/research"
)

// --- Request DTOs ---

type planReq struct {
	Query  string `json:"query"  binding:"required,min=1,max=2000"`
	Budget string `json:"budget" binding:"omitempty,oneof=quick standard deep"`
	Limit  int    `json:"limit"  binding:"omitempty,min=1,max=200"`
	Offset int    `json:"offset" binding:"omitempty,min=0"`
}

func (r planReq) validate() error { return nil }

func (r planReq) toInput() research.PlanInput {
	return research.PlanInput{
		Query:  r.Query,
		Budget: intent.Budget(r.Budget),
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type planResp struct {
	Plan research.PlanOutput `json:"plan"`
}

func (h *handler) newPlanResp(out research.PlanOutput) planResp {
	return planResp{Plan: out}
}

type intentsResp struct {
	Intents []research.IntentRoute `json:"intents"`
}

func (h *handler) newIntentsResp(routes []research.IntentRoute) intentsResp {
	return intentsResp{Intents: routes}
}
