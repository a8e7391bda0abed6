package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"legal-research-assistant/internal/intent"
	"legal-research-assistant/internal/model"
	"legal-research-assistant/internal/research"
	"legal-research-assistant/internal/search"
)

// Plan classifies the query, routes it, and assembles per-endpoint query
// parameters. Results are memoized per (query, budget); limit/offset
// overrides are applied after the cache so they never fragment it.
func (uc *implUseCase) Plan(ctx context.Context, sc model.Scope, input research.PlanInput) (research.PlanOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return research.PlanOutput{}, research.ErrEmptyQuery
	}

	budget := input.Budget
	if budget == "" {
		budget = intent.BudgetQuick
	}

	key := cacheKey(query, budget)
	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Infof(ctx, "Plan: cache hit for user=%s budget=%s", sc.UserID, budget)
		cached.Cached = true
		applyPageOverrides(&cached, input.Limit, input.Offset)
		return cached, nil
	}

	uc.l.Infof(ctx, "Plan: user=%s budget=%s query=%q", sc.UserID, budget, query)

	it, err := uc.classifier.Classify(ctx, query, budget)
	if err != nil {
		return research.PlanOutput{}, err
	}

	if it.TimeRange == nil && uc.dateMath != nil {
		if r, ok := uc.dateMath.RangeFromPhrase(query, time.Now()); ok {
			it.TimeRange = &intent.TimeRange{
				From: r.From.Format("2006-01-02"),
				To:   r.To.Format("2006-01-02"),
			}
		}
	}

	searchQuery := uc.optimizer.Optimize(ctx, query, it, budget)
	params := search.Build(it, searchQuery)

	endpoints := search.SelectEndpoints(it)
	dispatches := make([]research.Dispatch, 0, len(endpoints))
	for _, endpoint := range endpoints {
		dispatches = append(dispatches, research.Dispatch{
			Endpoint: endpoint,
			Params:   params,
		})
	}

	out := research.PlanOutput{
		ID:          uuid.NewString(),
		Query:       query,
		SearchQuery: searchQuery,
		Intent:      it,
		Dispatches:  dispatches,
	}
	uc.cache.Add(key, out)

	uc.l.Infof(ctx, "Plan: intent=%s endpoints=%v confidence=%.2f", it.Intent, endpoints, it.Confidence)

	applyPageOverrides(&out, input.Limit, input.Offset)
	return out, nil
}

// KnownIntents lists the static routing table sorted by intent name.
func (uc *implUseCase) KnownIntents(ctx context.Context) []research.IntentRoute {
	table := search.KnownIntents()

	routes := make([]research.IntentRoute, 0, len(table))
	for name, endpoints := range table {
		routes = append(routes, research.IntentRoute{Intent: name, Endpoints: endpoints})
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Intent < routes[j].Intent })

	return routes
}

func cacheKey(query string, budget intent.Budget) string {
	return string(budget) + "|" + strings.ToLower(query)
}

// applyPageOverrides is copy-on-write: the dispatch slice backing array is
// shared with the cached entry, so overrides go onto a fresh slice and never
// mutate what the cache holds.
func applyPageOverrides(out *research.PlanOutput, limit, offset int) {
	if limit <= 0 && offset <= 0 {
		return
	}

	dispatches := make([]research.Dispatch, len(out.Dispatches))
	copy(dispatches, out.Dispatches)
	for i := range dispatches {
		if limit > 0 {
			dispatches[i].Params.Limit = limit
		}
		if offset > 0 {
			dispatches[i].Params.Offset = offset
		}
	}
	out.Dispatches = dispatches
}
