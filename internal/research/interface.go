package research

import (
	"context"

	"legal-research-assistant/internal/model"
)

// UseCase defines the business logic interface for the research domain.
type UseCase interface {
	// Plan classifies the query, routes it to knowledge domains, and returns
	// a ready-to-dispatch set of (endpoint, query parameters) pairs.
	Plan(ctx context.Context, sc model.Scope, input PlanInput) (PlanOutput, error)

	// KnownIntents lists the intent names in the static routing table.
	KnownIntents(ctx context.Context) []IntentRoute
}
