package search

import (
	"context"
	"errors"
	"testing"

	"legal-research-assistant/internal/intent"
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

const verboseQuery = "Яка позиція Верховного Суду щодо поновлення строку на апеляційне оскарження?"

func TestOptimizeQuickBudgetBypass(t *testing.T) {
	svc := &mockCompletion{err: errors.New("must not be called")}
	o := NewOptimizer(svc, &mockLogger{})

	got := o.Optimize(context.Background(), verboseQuery, intent.Intent{}, intent.BudgetQuick)

	if got != verboseQuery {
		t.Errorf("quick budget must return the query verbatim, got %q", got)
	}
	if svc.calls != 0 {
		t.Errorf("completion service called %d times, want 0", svc.calls)
	}
}

func TestOptimizeModelResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "json object",
			response: `{"search_query": "поновлення строку апеляційне оскарження"}`,
			want:     "поновлення строку апеляційне оскарження",
		},
		{
			name:     "fenced json",
			response: "```json\n{\"search_query\": \"поновлення строку апеляційне оскарження\"}\n```",
			want:     "поновлення строку апеляційне оскарження",
		},
		{
			name:     "plain text with quotes trimmed",
			response: `"поновлення строку апеляційне оскарження"`,
			want:     "поновлення строку апеляційне оскарження",
		},
		{
			name:     "guillemets trimmed",
			response: "«поновлення строку»",
			want:     "поновлення строку",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCompletion{response: tt.response}
			o := NewOptimizer(svc, &mockLogger{})

			got := o.Optimize(context.Background(), verboseQuery, intent.Intent{}, intent.BudgetStandard)
			if got != tt.want {
				t.Errorf("Optimize() = %q, want %q", got, tt.want)
			}
			if svc.calls != 1 {
				t.Errorf("completion service called %d times, want 1", svc.calls)
			}
		})
	}
}

func TestOptimizeFallsBackVerbatim(t *testing.T) {
	tests := []struct {
		name string
		svc  *mockCompletion
	}{
		{"completion error", &mockCompletion{err: errors.New("provider down")}},
		{"empty response", &mockCompletion{response: ""}},
		{"whitespace response", &mockCompletion{response: "   \n  "}},
		{"empty search_query field", &mockCompletion{response: `{"search_query": ""}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOptimizer(tt.svc, &mockLogger{})

			got := o.Optimize(context.Background(), verboseQuery, intent.Intent{}, intent.BudgetDeep)
			if got != verboseQuery {
				t.Errorf("Optimize() = %q, want the query verbatim", got)
			}
		})
	}
}

func TestOptimizeEmptyQuery(t *testing.T) {
	svc := &mockCompletion{response: `{"search_query": "щось"}`}
	o := NewOptimizer(svc, &mockLogger{})

	if got := o.Optimize(context.Background(), "", intent.Intent{}, intent.BudgetStandard); got != "" {
		t.Errorf("empty query must stay empty, got %q", got)
	}
	if svc.calls != 0 {
		t.Errorf("completion service called %d times, want 0", svc.calls)
	}
}
