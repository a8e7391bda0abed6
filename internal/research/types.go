package research

import (
	"legal-research-assistant/internal/intent"
	"legal-research-assistant/internal/search"
)

// PlanInput is the input for building a research plan.
type PlanInput struct {
	Query  string        // Free-text legal question
	Budget intent.Budget // Effort tier; empty defaults to quick
	Limit  int           // Per-endpoint page size override (optional)
	Offset int           // Per-endpoint page offset override (optional)
}

// Dispatch is one ready-to-send (endpoint, query parameters) pair.
type Dispatch struct {
	Endpoint string             `json:"endpoint"`
	Params   search.QueryParams `json:"params"`
}

// PlanOutput is the finished research plan. The actual dispatching to source
// adapters is the caller's concern.
type PlanOutput struct {
	ID          string        `json:"id"`
	Query       string        `json:"query"`
	SearchQuery string        `json:"search_query"`
	Intent      intent.Intent `json:"intent"`
	Dispatches  []Dispatch    `json:"dispatches"`
	Cached      bool          `json:"cached"`
}

// IntentRoute pairs a known intent name with its endpoint list.
type IntentRoute struct {
	Intent    string   `json:"intent"`
	Endpoints []string `json:"endpoints"`
}
