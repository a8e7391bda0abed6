package search

import "legal-research-assistant/internal/intent"

// intentEndpoints maps known intent names to a fixed ordered endpoint list.
// The table takes precedence over the domains-derived fallback whenever both
// would apply. Read-only after initialization.
var intentEndpoints = map[string][]string{
	intent.IntentGeneralSearch:             {intent.DomainCourt, intent.DomainNPA, intent.DomainECHR},
	intent.IntentTaxDispute:                {intent.DomainCourt, intent.DomainNPA},
	intent.IntentLaborDispute:              {intent.DomainCourt, intent.DomainECHR},
	intent.IntentConsumerDispute:           {intent.DomainCourt, intent.DomainNPA},
	intent.IntentSupremeCourtPosition:      {intent.DomainCourt},
	intent.IntentProceduralDeadlines:       {intent.DomainCourt, intent.DomainNPA},
	intent.IntentJurisdictionAndCompetence: {intent.DomainCourt},
	intent.IntentEvidenceAndStandards:      {intent.DomainCourt, intent.DomainECHR},
	intent.IntentInterimMeasures:           {intent.DomainCourt},
	intent.IntentAmountsAndCosts:           {intent.DomainCourt, intent.DomainNPA},
	intent.IntentTwoSidedPractice:          {intent.DomainCourt},
	intent.IntentParliamentSearch:          {intent.DomainParliament},
	intent.IntentRegistrySearch:            {intent.DomainRegistry},
}

// knownEndpoints recognizes domain names for the fallback path.
var knownEndpoints = map[string]struct{}{
	intent.DomainCourt:      {},
	intent.DomainNPA:        {},
	intent.DomainECHR:       {},
	intent.DomainParliament: {},
	intent.DomainRegistry:   {},
}

// SelectEndpoints maps a finished Intent to a non-empty ordered endpoint
// list: static table first, then the intent's own domains, then court.
func SelectEndpoints(it intent.Intent) []string {
	if endpoints, ok := intentEndpoints[it.Intent]; ok {
		return append([]string(nil), endpoints...)
	}

	var out []string
	for _, d := range it.Domains {
		if _, ok := knownEndpoints[d]; ok {
			out = append(out, d)
		}
	}
	if len(out) > 0 {
		return out
	}

	return []string{intent.DomainCourt}
}

// KnownIntents returns the intent names present in the routing table, with
// their endpoint lists. Used by the delivery layer for UI autocomplete.
func KnownIntents() map[string][]string {
	out := make(map[string][]string, len(intentEndpoints))
	for name, endpoints := range intentEndpoints {
		out[name] = append([]string(nil), endpoints...)
	}
	return out
}
