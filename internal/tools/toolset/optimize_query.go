package toolset

import (
	"context"
	"fmt"

	"legal-research-assistant/internal/intent"
	"legal-research-assistant/internal/tools"
)

type queryOptimizer interface {
	Optimize(ctx context.Context, userQuery string, it intent.Intent, budget intent.Budget) string
}

// OptimizeQueryTool compresses a verbose question into a keyword search query.
type OptimizeQueryTool struct {
	optimizer queryOptimizer
}

// NewOptimizeQueryTool creates a new optimize query tool.
func NewOptimizeQueryTool(optimizer queryOptimizer) tools.Tool {
	return &OptimizeQueryTool{optimizer: optimizer}
}

func (t *OptimizeQueryTool) Name() string {
	return "optimize_query"
}

func (t *OptimizeQueryTool) Description() string {
	return "Compress a verbose legal question into a short keyword query for full-text search. Quick budget returns the question verbatim."
}

func (t *OptimizeQueryTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Free-text legal question",
			},
			"budget": map[string]interface{}{
				"type":        "string",
				"description": "Effort tier: quick, standard, or deep (default standard)",
				"enum":        []string{"quick", "standard", "deep"},
			},
		},
		"required": []string{"query"},
	}
}

func (t *OptimizeQueryTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	budget := intent.BudgetStandard
	if b, ok := params["budget"].(string); ok && b != "" {
		budget = intent.Budget(b)
	}

	optimized := t.optimizer.Optimize(ctx, query, intent.Intent{}, budget)

	return map[string]interface{}{
		"search_query": optimized,
	}, nil
}
