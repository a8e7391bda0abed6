package search

import (
	"reflect"
	"testing"

	"legal-research-assistant/internal/intent"
)

func TestSelectEndpoints(t *testing.T) {
	tests := []struct {
		name string
		it   intent.Intent
		want []string
	}{
		{
			name: "table entry wins over domains",
			it: intent.Intent{
				Intent:  intent.IntentLaborDispute,
				Domains: []string{intent.DomainRegistry},
			},
			want: []string{intent.DomainCourt, intent.DomainECHR},
		},
		{
			name: "parliament search routes to parliament only",
			it:   intent.Intent{Intent: intent.IntentParliamentSearch},
			want: []string{intent.DomainParliament},
		},
		{
			name: "unknown intent falls back to its domains",
			it: intent.Intent{
				Intent:  "crypto_regulation",
				Domains: []string{intent.DomainNPA, intent.DomainECHR},
			},
			want: []string{intent.DomainNPA, intent.DomainECHR},
		},
		{
			name: "unknown domains filtered out of fallback",
			it: intent.Intent{
				Intent:  "crypto_regulation",
				Domains: []string{"blockchain", intent.DomainNPA},
			},
			want: []string{intent.DomainNPA},
		},
		{
			name: "nothing usable defaults to court",
			it:   intent.Intent{Intent: "crypto_regulation", Domains: []string{"blockchain"}},
			want: []string{intent.DomainCourt},
		},
		{
			name: "empty intent defaults to court",
			it:   intent.Intent{},
			want: []string{intent.DomainCourt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectEndpoints(tt.it)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SelectEndpoints() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectEndpointsReturnsCopy(t *testing.T) {
	got := SelectEndpoints(intent.Intent{Intent: intent.IntentGeneralSearch})
	got[0] = "mutated"

	again := SelectEndpoints(intent.Intent{Intent: intent.IntentGeneralSearch})
	if again[0] != intent.DomainCourt {
		t.Error("SelectEndpoints must not expose the internal table")
	}
}

func TestKnownIntents(t *testing.T) {
	table := KnownIntents()

	if len(table) == 0 {
		t.Fatal("routing table must not be empty")
	}
	for name, endpoints := range table {
		if len(endpoints) == 0 {
			t.Errorf("intent %q has no endpoints", name)
		}
	}

	// Mutating the returned map must not affect subsequent calls.
	table[intent.IntentTaxDispute] = nil
	if got := KnownIntents()[intent.IntentTaxDispute]; len(got) == 0 {
		t.Error("KnownIntents must return a copy")
	}
}
