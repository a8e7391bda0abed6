package intent

import (
	"context"
	"encoding/json"
	"fmt"

	"legal-research-assistant/pkg/log"
)

// CompletionService is the single outbound dependency of the model-assisted
// path. Retry, key rotation, and cost accounting live behind it; errors of
// any kind are opaque here and always trigger the heuristic fallback.
type CompletionService interface {
	Complete(ctx context.Context, prompt string, formatHint string) (string, error)
}

// Classifier runs the two-tier classification: heuristic for quick budgets,
// model-assisted with guaranteed heuristic fallback for standard/deep.
type Classifier struct {
	svc CompletionService
	l   log.Logger
}

// NewClassifier creates a Classifier around the injected completion service.
func NewClassifier(svc CompletionService, l log.Logger) *Classifier {
	return &Classifier{
		svc: svc,
		l:   l,
	}
}

// Classify dispatches on budget. An unrecognized budget is a contract
// violation and fails fast rather than guessing.
func (c *Classifier) Classify(ctx context.Context, query string, budget Budget) (Intent, error) {
	switch budget {
	case BudgetQuick:
		return Sanitize(ClassifyQuick(query)), nil
	case BudgetStandard, BudgetDeep:
		return c.ClassifyDeep(ctx, query, budget)
	default:
		return Intent{}, fmt.Errorf("%w: %q", ErrUnknownBudget, budget)
	}
}

// rawIntent is the untyped decoding target for model output. Confidence is a
// pointer so an omitted field can be told apart from an explicit zero.
type rawIntent struct {
	Intent           string     `json:"intent"`
	Confidence       *float64   `json:"confidence"`
	Domains          []string   `json:"domains"`
	RequiredEntities []string   `json:"required_entities"`
	Sections         []string   `json:"sections"`
	TimeRange        *TimeRange `json:"time_range"`
	ReasoningBudget  string     `json:"reasoning_budget"`
	Slots            *Slots     `json:"slots"`
}

// ClassifyDeep builds a structured-extraction prompt, invokes the completion
// service once, and sanitizes whatever comes back. Any transport or parse
// failure delegates to ClassifyQuick with the same query; no retry happens
// here.
func (c *Classifier) ClassifyDeep(ctx context.Context, query string, budget Budget) (Intent, error) {
	if budget != BudgetStandard && budget != BudgetDeep {
		return Intent{}, fmt.Errorf("%w: %q", ErrUnknownBudget, budget)
	}

	text, err := c.svc.Complete(ctx, BuildClassifyPrompt(query), FormatHintJSON)
	if err != nil {
		c.l.Warnf(ctx, "ClassifyDeep: completion failed, falling back to heuristic: %v", err)
		return Sanitize(ClassifyQuick(query)), nil
	}

	var raw rawIntent
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &raw); err != nil {
		c.l.Warnf(ctx, "ClassifyDeep: unparseable model output, falling back to heuristic: %v", err)
		return Sanitize(ClassifyQuick(query)), nil
	}

	return Sanitize(c.fromRaw(raw, budget)), nil
}

// fromRaw fills omitted fields with defaults and converts the untyped model
// payload into an Intent. Enum enforcement is the sanitizer's job, not done
// here.
func (c *Classifier) fromRaw(raw rawIntent, budget Budget) Intent {
	out := Intent{
		Intent:           raw.Intent,
		Confidence:       ModelDefaultConfidence,
		Domains:          raw.Domains,
		RequiredEntities: raw.RequiredEntities,
		TimeRange:        raw.TimeRange,
		ReasoningBudget:  budget,
		Slots:            raw.Slots,
	}

	if out.Intent == "" {
		out.Intent = IntentGeneralSearch
	}

	if raw.Confidence != nil {
		conf := *raw.Confidence
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		out.Confidence = conf
	}

	for _, s := range raw.Sections {
		out.Sections = append(out.Sections, SectionType(s))
	}

	if b := Budget(raw.ReasoningBudget); b == BudgetQuick || b == BudgetStandard || b == BudgetDeep {
		out.ReasoningBudget = b
	}

	return out
}
