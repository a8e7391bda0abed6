package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative time-range phrases in user queries to absolute
// date windows.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "Europe/Kyiv".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	// "за останні 3 роки", "за останній рік", "останні 6 місяців"
	lastNRe = regexp.MustCompile(`останн(?:і|ій|ього|іх)\s*(\d*)\s*(рік|роки|років|року|місяць|місяці|місяців|день|дні|днів|тижні|тиждень|тижнів)`)
	// "з 2020 року", "після 2019"
	sinceYearRe = regexp.MustCompile(`(?:^|\s)(?:з|після)\s+(\d{4})(?:\s*року)?`)
	// "у 2023 році", "за 2023 рік"
	inYearRe = regexp.MustCompile(`(?:^|\s)(?:у|в|за)\s+(\d{4})\s*р(?:оці|ік)`)
)

// RangeFromPhrase scans a lowercase query for a relative time-range phrase
// and resolves it against baseTime. Reports ok=false when the query carries
// no time signal.
func (p *Parser) RangeFromPhrase(query string, baseTime time.Time) (Range, bool) {
	query = strings.ToLower(query)
	base := baseTime.In(p.location)

	if m := lastNRe.FindStringSubmatch(query); m != nil {
		amount := 1
		if m[1] != "" {
			amount, _ = strconv.Atoi(m[1])
		}
		from := base
		switch {
		case strings.HasPrefix(m[2], "рік") || strings.HasPrefix(m[2], "рок"):
			from = base.AddDate(-amount, 0, 0)
		case strings.HasPrefix(m[2], "місяц"):
			from = base.AddDate(0, -amount, 0)
		case strings.HasPrefix(m[2], "тиж"):
			from = base.AddDate(0, 0, -amount*7)
		default:
			from = base.AddDate(0, 0, -amount)
		}
		return Range{From: p.startOfDay(from), To: p.endOfDay(base)}, true
	}

	if m := inYearRe.FindStringSubmatch(query); m != nil {
		year, _ := strconv.Atoi(m[1])
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, p.location)
		to := time.Date(year, time.December, 31, 23, 59, 59, 0, p.location)
		return Range{From: from, To: to}, true
	}

	if m := sinceYearRe.FindStringSubmatch(query); m != nil {
		year, _ := strconv.Atoi(m[1])
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, p.location)
		return Range{From: from, To: p.endOfDay(base)}, true
	}

	return Range{}, false
}

// startOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// endOfDay returns 23:59:59 of the given day.
func (p *Parser) endOfDay(t time.Time) time.Time {
	return p.startOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
