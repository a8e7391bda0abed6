package search

import (
	"context"
	"encoding/json"
	"strings"

	"legal-research-assistant/internal/intent"
	"legal-research-assistant/pkg/log"
)

// Optimizer compresses a verbose natural-language question into a short
// keyword query, with the external model as an optional assist. It never
// fails: any error returns the user's query verbatim.
type Optimizer struct {
	svc intent.CompletionService
	l   log.Logger
}

// NewOptimizer creates an Optimizer around the injected completion service.
func NewOptimizer(svc intent.CompletionService, l log.Logger) *Optimizer {
	return &Optimizer{
		svc: svc,
		l:   l,
	}
}

type optimizedQuery struct {
	SearchQuery string `json:"search_query"`
}

// Optimize returns a keyword query for full-text search backends. A quick
// budget returns userQuery unchanged with zero network calls; that bypass is
// a hard requirement, not an optimization.
func (o *Optimizer) Optimize(ctx context.Context, userQuery string, it intent.Intent, budget intent.Budget) string {
	if budget == intent.BudgetQuick || userQuery == "" {
		return userQuery
	}

	text, err := o.svc.Complete(ctx, buildOptimizePrompt(userQuery), intent.FormatHintJSON)
	if err != nil {
		o.l.Warnf(ctx, "Optimize: completion failed, using query verbatim: %v", err)
		return userQuery
	}

	result := parseOptimized(text)
	if result == "" {
		return userQuery
	}
	return result
}

// parseOptimized extracts the keyword query from model output: the
// search_query field when a JSON object is present, the raw text otherwise,
// with surrounding quotes trimmed either way. A JSON object without a usable
// search_query yields "" so the caller falls back to the verbatim query.
func parseOptimized(text string) string {
	candidate := strings.TrimSpace(text)

	var parsed optimizedQuery
	if err := json.Unmarshal([]byte(intent.ExtractJSON(text)), &parsed); err == nil {
		candidate = parsed.SearchQuery
	}

	candidate = strings.Trim(candidate, "\"'`«»")
	return strings.TrimSpace(candidate)
}
