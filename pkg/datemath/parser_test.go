package datemath

import (
	"testing"
	"time"
)

func mustParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func TestNewParserInvalidTimezone(t *testing.T) {
	if _, err := NewParser("Mars/Olympus_Mons"); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestRangeFromPhrase(t *testing.T) {
	p := mustParser(t)
	base := time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		query    string
		wantFrom string
		wantTo   string
	}{
		{
			name:     "last N years",
			query:    "судова практика за останні 2 роки",
			wantFrom: "2024-08-25",
			wantTo:   "2026-08-25",
		},
		{
			name:     "last year singular",
			query:    "рішення за останній рік",
			wantFrom: "2025-08-25",
			wantTo:   "2026-08-25",
		},
		{
			name:     "last N months",
			query:    "постанови за останні 6 місяців",
			wantFrom: "2026-02-25",
			wantTo:   "2026-08-25",
		},
		{
			name:     "last week",
			query:    "новини за останній тиждень",
			wantFrom: "2026-08-18",
			wantTo:   "2026-08-25",
		},
		{
			name:     "specific year",
			query:    "практика за 2023 рік",
			wantFrom: "2023-01-01",
			wantTo:   "2023-12-31",
		},
		{
			name:     "in year form",
			query:    "рішення у 2022 році",
			wantFrom: "2022-01-01",
			wantTo:   "2022-12-31",
		},
		{
			name:     "since year",
			query:    "практика з 2020 року",
			wantFrom: "2020-01-01",
			wantTo:   "2026-08-25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.RangeFromPhrase(tt.query, base)
			if !ok {
				t.Fatalf("no range found in %q", tt.query)
			}
			if f := got.From.Format("2006-01-02"); f != tt.wantFrom {
				t.Errorf("from = %s, want %s", f, tt.wantFrom)
			}
			if to := got.To.Format("2006-01-02"); to != tt.wantTo {
				t.Errorf("to = %s, want %s", to, tt.wantTo)
			}
		})
	}
}

func TestRangeFromPhraseNoSignal(t *testing.T) {
	p := mustParser(t)
	base := time.Now()

	queries := []string{
		"поновлення строку на апеляційне оскарження",
		"справа № 2020 про стягнення боргу",
		"стаття 625 ЦК України",
		"",
	}

	for _, q := range queries {
		if _, ok := p.RangeFromPhrase(q, base); ok {
			t.Errorf("query %q must not yield a time range", q)
		}
	}
}
