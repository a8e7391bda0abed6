package intent

import (
	"context"
	"errors"
	"testing"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockCompletion counts calls so tests can assert the zero-network paths.
type mockCompletion struct {
	response string
	err      error
	calls    int
}

func (m *mockCompletion) Complete(ctx context.Context, prompt, formatHint string) (string, error) {
	m.calls++
	return m.response, m.err
}

func TestClassifyQuickBudgetSkipsModel(t *testing.T) {
	svc := &mockCompletion{err: errors.New("must not be called")}
	c := NewClassifier(svc, &mockLogger{})

	got, err := c.Classify(context.Background(), "оскарження податкового повідомлення-рішення", BudgetQuick)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.calls != 0 {
		t.Errorf("completion service called %d times, want 0", svc.calls)
	}
	if got.Intent != IntentTaxDispute {
		t.Errorf("intent = %q, want %q", got.Intent, IntentTaxDispute)
	}
}

func TestClassifyUnknownBudget(t *testing.T) {
	c := NewClassifier(&mockCompletion{}, &mockLogger{})

	_, err := c.Classify(context.Background(), "будь-який запит", Budget("turbo"))
	if !errors.Is(err, ErrUnknownBudget) {
		t.Fatalf("error = %v, want ErrUnknownBudget", err)
	}
}

func TestClassifyDeepFallbackOnCompletionError(t *testing.T) {
	svc := &mockCompletion{err: errors.New("provider down")}
	c := NewClassifier(svc, &mockLogger{})

	got, err := c.Classify(context.Background(), "незаконне звільнення з роботи", BudgetStandard)
	if err != nil {
		t.Fatalf("classification must never fail on provider errors, got %v", err)
	}
	if svc.calls != 1 {
		t.Errorf("completion service called %d times, want 1", svc.calls)
	}
	if got.Intent != IntentLaborDispute {
		t.Errorf("fallback intent = %q, want %q", got.Intent, IntentLaborDispute)
	}
	if got.Confidence != HeuristicConfidence {
		t.Errorf("fallback confidence = %v, want %v", got.Confidence, HeuristicConfidence)
	}
}

func TestClassifyDeepFallbackOnGarbageOutput(t *testing.T) {
	svc := &mockCompletion{response: "I am sorry, I cannot help with that."}
	c := NewClassifier(svc, &mockLogger{})

	got, err := c.Classify(context.Background(), "стягнення судового збору", BudgetDeep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Confidence != HeuristicConfidence {
		t.Errorf("confidence = %v, want heuristic fallback %v", got.Confidence, HeuristicConfidence)
	}
}

func TestClassifyDeepParsesModelOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "bare object",
			response: `{"intent": "tax_dispute", "confidence": 0.92, "domains": ["court", "npa"]}`,
		},
		{
			name: "fenced code block",
			response: "```json\n{\"intent\": \"tax_dispute\", \"confidence\": 0.92, \"domains\": [\"court\", \"npa\"]}\n```",
		},
		{
			name:     "object wrapped in prose",
			response: `Here is the classification: {"intent": "tax_dispute", "confidence": 0.92, "domains": ["court", "npa"]} Hope it helps.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCompletion{response: tt.response}
			c := NewClassifier(svc, &mockLogger{})

			got, err := c.Classify(context.Background(), "податковий спір", BudgetStandard)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Intent != IntentTaxDispute {
				t.Errorf("intent = %q, want %q", got.Intent, IntentTaxDispute)
			}
			if got.Confidence != 0.92 {
				t.Errorf("confidence = %v, want 0.92", got.Confidence)
			}
			if got.ReasoningBudget != BudgetStandard {
				t.Errorf("budget = %q, want %q", got.ReasoningBudget, BudgetStandard)
			}
			if len(got.Sections) == 0 {
				t.Error("sections must be defaulted, not empty")
			}
		})
	}
}

func TestClassifyDeepConfidenceHandling(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
	}{
		{"omitted defaults", `{"intent": "general_search"}`, ModelDefaultConfidence},
		{"explicit zero kept", `{"intent": "general_search", "confidence": 0}`, 0},
		{"above one clamped", `{"intent": "general_search", "confidence": 1.7}`, 1},
		{"below zero clamped", `{"intent": "general_search", "confidence": -0.3}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCompletion{response: tt.response}
			c := NewClassifier(svc, &mockLogger{})

			got, err := c.Classify(context.Background(), "запит", BudgetStandard)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Confidence != tt.want {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.want)
			}
		})
	}
}

func TestClassifyDeepBudgetEcho(t *testing.T) {
	t.Run("model budget wins when valid", func(t *testing.T) {
		svc := &mockCompletion{response: `{"intent": "general_search", "reasoning_budget": "deep"}`}
		c := NewClassifier(svc, &mockLogger{})

		got, _ := c.Classify(context.Background(), "запит", BudgetStandard)
		if got.ReasoningBudget != BudgetDeep {
			t.Errorf("budget = %q, want %q", got.ReasoningBudget, BudgetDeep)
		}
	})

	t.Run("invalid model budget replaced with requested", func(t *testing.T) {
		svc := &mockCompletion{response: `{"intent": "general_search", "reasoning_budget": "ultra"}`}
		c := NewClassifier(svc, &mockLogger{})

		got, _ := c.Classify(context.Background(), "запит", BudgetDeep)
		if got.ReasoningBudget != BudgetDeep {
			t.Errorf("budget = %q, want %q", got.ReasoningBudget, BudgetDeep)
		}
	})
}
