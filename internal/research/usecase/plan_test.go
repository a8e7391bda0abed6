package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"legal-research-assistant/internal/intent"
	"legal-research-assistant/internal/model"
	"legal-research-assistant/internal/research"
	"legal-research-assistant/internal/search"
	"legal-research-assistant/pkg/datemath"
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

func newTestUseCase(t *testing.T, svc *mockCompletion) *implUseCase {
	t.Helper()

	l := &mockLogger{}
	dateMath, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}

	return New(l, intent.NewClassifier(svc, l), search.NewOptimizer(svc, l), dateMath, 16)
}

func TestPlanEmptyQuery(t *testing.T) {
	uc := newTestUseCase(t, &mockCompletion{})

	_, err := uc.Plan(context.Background(), model.Scope{}, research.PlanInput{Query: "   "})
	if !errors.Is(err, research.ErrEmptyQuery) {
		t.Fatalf("error = %v, want ErrEmptyQuery", err)
	}
}

func TestPlanQuickBudget(t *testing.T) {
	svc := &mockCompletion{err: errors.New("must not be called")}
	uc := newTestUseCase(t, svc)

	out, err := uc.Plan(context.Background(), model.Scope{UserID: "u1"}, research.PlanInput{
		Query:  "Оскарження податкового повідомлення-рішення ДПС",
		Budget: intent.BudgetQuick,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if svc.calls != 0 {
		t.Errorf("completion service called %d times, want 0", svc.calls)
	}
	if out.ID == "" {
		t.Error("plan ID must be set")
	}
	if out.Cached {
		t.Error("first plan must not be cached")
	}
	if out.Intent.Intent != intent.IntentTaxDispute {
		t.Errorf("intent = %q, want %q", out.Intent.Intent, intent.IntentTaxDispute)
	}
	if out.SearchQuery != out.Query {
		t.Errorf("quick budget must keep the query verbatim, got %q", out.SearchQuery)
	}

	wantEndpoints := []string{intent.DomainCourt, intent.DomainNPA}
	if len(out.Dispatches) != len(wantEndpoints) {
		t.Fatalf("dispatches = %d, want %d", len(out.Dispatches), len(wantEndpoints))
	}
	for i, d := range out.Dispatches {
		if d.Endpoint != wantEndpoints[i] {
			t.Errorf("dispatch %d endpoint = %q, want %q", i, d.Endpoint, wantEndpoints[i])
		}
		if d.Params.Limit != search.DefaultLimit {
			t.Errorf("dispatch %d limit = %d, want %d", i, d.Params.Limit, search.DefaultLimit)
		}
	}
}

func TestPlanDefaultsBudgetToQuick(t *testing.T) {
	svc := &mockCompletion{err: errors.New("must not be called")}
	uc := newTestUseCase(t, svc)

	_, err := uc.Plan(context.Background(), model.Scope{}, research.PlanInput{Query: "будь-яке питання"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.calls != 0 {
		t.Errorf("completion service called %d times, want 0", svc.calls)
	}
}

func TestPlanCaching(t *testing.T) {
	uc := newTestUseCase(t, &mockCompletion{})
	in := research.PlanInput{Query: "поновлення строку на апеляційне оскарження", Budget: intent.BudgetQuick}

	first, err := uc.Plan(context.Background(), model.Scope{}, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Plan(context.Background(), model.Scope{}, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.Cached {
		t.Error("second identical plan must come from cache")
	}
	if second.ID != first.ID {
		t.Errorf("cached plan ID = %q, want %q", second.ID, first.ID)
	}

	// A different budget is a different cache entry.
	third, err := uc.Plan(context.Background(), model.Scope{}, research.PlanInput{
		Query:  in.Query,
		Budget: intent.BudgetStandard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.Cached {
		t.Error("different budget must not hit the quick-budget cache entry")
	}
}

func TestPlanPageOverridesNotCached(t *testing.T) {
	uc := newTestUseCase(t, &mockCompletion{})
	base := research.PlanInput{Query: "трудовий спір про звільнення", Budget: intent.BudgetQuick}

	withOverride := base
	withOverride.Limit = 10
	withOverride.Offset = 20

	out, err := uc.Plan(context.Background(), model.Scope{}, withOverride)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range out.Dispatches {
		if d.Params.Limit != 10 || d.Params.Offset != 20 {
			t.Errorf("override not applied: limit=%d offset=%d", d.Params.Limit, d.Params.Offset)
		}
	}

	// The cached entry must keep the defaults.
	plain, err := uc.Plan(context.Background(), model.Scope{}, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plain.Cached {
		t.Fatal("expected cache hit")
	}
	for _, d := range plain.Dispatches {
		if d.Params.Limit != search.DefaultLimit || d.Params.Offset != 0 {
			t.Errorf("cache polluted by overrides: limit=%d offset=%d", d.Params.Limit, d.Params.Offset)
		}
	}
}

func TestPlanOverridesOnCacheHitKeepEntryClean(t *testing.T) {
	uc := newTestUseCase(t, &mockCompletion{})
	base := research.PlanInput{Query: "забезпечення позову шляхом арешту майна", Budget: intent.BudgetQuick}

	if _, err := uc.Plan(context.Background(), model.Scope{}, base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Overrides applied on a cache hit must not write through to the entry.
	withOverride := base
	withOverride.Limit = 5
	hit, err := uc.Plan(context.Background(), model.Scope{}, withOverride)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit.Cached {
		t.Fatal("expected cache hit")
	}
	for _, d := range hit.Dispatches {
		if d.Params.Limit != 5 {
			t.Errorf("override not applied on hit: limit=%d", d.Params.Limit)
		}
	}

	plain, err := uc.Plan(context.Background(), model.Scope{}, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range plain.Dispatches {
		if d.Params.Limit != search.DefaultLimit {
			t.Errorf("cache polluted via hit-path overrides: limit=%d", d.Params.Limit)
		}
	}
}

func TestPlanResolvesRelativeTimeRange(t *testing.T) {
	uc := newTestUseCase(t, &mockCompletion{})

	out, err := uc.Plan(context.Background(), model.Scope{}, research.PlanInput{
		Query:  "судова практика про стягнення пені за останні 2 роки",
		Budget: intent.BudgetQuick,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Intent.TimeRange == nil {
		t.Fatal("expected a resolved time range")
	}
	if len(out.Dispatches) == 0 {
		t.Fatal("expected dispatches")
	}
	if got := len(out.Dispatches[0].Params.Where); got != 2 {
		t.Errorf("where clauses = %d, want 2", got)
	}
}

func TestKnownIntentsSorted(t *testing.T) {
	uc := newTestUseCase(t, &mockCompletion{})

	routes := uc.KnownIntents(context.Background())
	if len(routes) == 0 {
		t.Fatal("expected non-empty routing table")
	}

	names := make([]string, len(routes))
	for i, r := range routes {
		names[i] = r.Intent
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("routes not sorted: %v", names)
	}
	for _, r := range routes {
		if len(r.Endpoints) == 0 {
			t.Errorf("intent %q has no endpoints", r.Intent)
		}
	}
}
