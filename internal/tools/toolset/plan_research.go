package toolset

import (
	"context"
	"fmt"

	"legal-research-assistant/internal/intent"
	"legal-research-assistant/internal/model"
	"legal-research-assistant/internal/research"
	"legal-research-assistant/internal/tools"
)

// PlanResearchTool exposes the full planning pipeline as a callable tool.
type PlanResearchTool struct {
	uc research.UseCase
}

// NewPlanResearchTool creates a new plan research tool.
func NewPlanResearchTool(uc research.UseCase) tools.Tool {
	return &PlanResearchTool{uc: uc}
}

func (t *PlanResearchTool) Name() string {
	return "plan_research"
}

func (t *PlanResearchTool) Description() string {
	return "Build a full research plan for a legal question: intent, optimized search query, and per-endpoint query parameters."
}

func (t *PlanResearchTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Free-text legal question",
			},
			"budget": map[string]interface{}{
				"type":        "string",
				"description": "Effort tier: quick, standard, or deep (default quick)",
				"enum":        []string{"quick", "standard", "deep"},
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Per-endpoint page size override",
			},
		},
		"required": []string{"query"},
	}
}

func (t *PlanResearchTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	input := research.PlanInput{Query: query}
	if b, ok := params["budget"].(string); ok && b != "" {
		input.Budget = intent.Budget(b)
	}
	if l, ok := params["limit"].(float64); ok {
		input.Limit = int(l)
	}

	sc := model.Scope{UserID: "agent"}
	output, err := t.uc.Plan(ctx, sc, input)
	if err != nil {
		return nil, fmt.Errorf("planning failed: %w", err)
	}

	return output, nil
}
