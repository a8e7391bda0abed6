package toolset

import (
	"context"
	"fmt"

	"legal-research-assistant/internal/intent"
	"legal-research-assistant/internal/tools"
)

type queryClassifier interface {
	Classify(ctx context.Context, query string, budget intent.Budget) (intent.Intent, error)
}

// ClassifyQueryTool exposes intent classification as a callable tool.
type ClassifyQueryTool struct {
	classifier queryClassifier
}

// NewClassifyQueryTool creates a new classify query tool.
func NewClassifyQueryTool(classifier queryClassifier) tools.Tool {
	return &ClassifyQueryTool{classifier: classifier}
}

func (t *ClassifyQueryTool) Name() string {
	return "classify_query"
}

func (t *ClassifyQueryTool) Description() string {
	return "Classify a legal question into an intent with domains, document sections, and extracted slots."
}

func (t *ClassifyQueryTool) Parameters() map[string]interface{} {
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
		},
		"required": []string{"query"},
	}
}

func (t *ClassifyQueryTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	budget := intent.BudgetQuick
	if b, ok := params["budget"].(string); ok && b != "" {
		budget = intent.Budget(b)
	}

	it, err := t.classifier.Classify(ctx, query, budget)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	return it, nil
}
