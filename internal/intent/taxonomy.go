package intent

import "strings"

// sectionTypes is the closed section taxonomy. Anything outside this set is
// dropped during sanitization.
var sectionTypes = map[SectionType]struct{}{
	SectionFacts:          {},
	SectionClaims:         {},
	SectionCourtReasoning: {},
	SectionDecision:       {},
	SectionLawReferences:  {},
	SectionAmounts:        {},
}

// NormalizeSection canonicalizes a free-form section name against the closed
// taxonomy. Matching is case-insensitive.
func NormalizeSection(raw string) (SectionType, bool) {
	s := SectionType(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := sectionTypes[s]
	return s, ok
}

// normalizeSections maps every element through NormalizeSection and drops the
// unmatched ones. Returns nil when nothing survives.
func normalizeSections(raw []SectionType) []SectionType {
	var out []SectionType
	for _, r := range raw {
		if s, ok := NormalizeSection(string(r)); ok {
			out = append(out, s)
		}
	}
	return out
}

// Court-level synonym groups, checked in priority order: a Grand Chamber
// marker wins over a Supreme Court marker, which wins over plain cassation,
// and so on. The order matters because queries like "касаційний цивільний суд"
// contain the bare cassation marker too.
var courtLevelSynonyms = []struct {
	level   string
	markers []string
}{
	{CourtLevelGrandChamber, []string{"велика палата", "великої палати", "вп вс", "grand chamber", "grandchamber"}},
	{CourtLevelSC, []string{
		"верховний суд", "верховного суду", "верховному суду",
		"касаційний цивільний суд", "касаційний господарський суд",
		"касаційний адміністративний суд", "касаційний кримінальний суд",
		"кцс вс", "кгс вс", "ккс вс",
		"supreme court", "supreme",
	}},
	{CourtLevelCassation, []string{"касац", "cassation"}},
	{CourtLevelAppeal, []string{"апеляц", "appeal"}},
	{CourtLevelFirstInstance, []string{"перша інстанція", "першої інстанції", "суд першої інстанції", "first instance"}},
}

// canonicalCourtLevels pass through NormalizeCourtLevel unchanged.
var canonicalCourtLevels = map[string]struct{}{
	CourtLevelFirstInstance: {},
	CourtLevelAppeal:        {},
	CourtLevelCassation:     {},
	CourtLevelSC:            {},
	CourtLevelGrandChamber:  {},
}

// NormalizeCourtLevel canonicalizes a free-form court level. Unrecognized
// values report ok=false and are dropped by the sanitizer.
func NormalizeCourtLevel(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	lowered := strings.ToLower(trimmed)
	for _, group := range courtLevelSynonyms {
		for _, marker := range group.markers {
			if strings.Contains(lowered, marker) {
				return group.level, true
			}
		}
	}

	if _, ok := canonicalCourtLevels[trimmed]; ok {
		return trimmed, true
	}

	return "", false
}
