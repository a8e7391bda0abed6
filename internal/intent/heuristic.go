package intent

import "strings"

// heuristicRule binds a keyword cluster to a classification outcome.
// Rules are evaluated in slice order with first-match-wins semantics; the
// ordering is part of the contract, so extend the table rather than
// re-sorting it.
type heuristicRule struct {
	intent   string
	keywords []string
	domains  []string
	sections []SectionType
}

// heuristicRules is the priority-ordered rule table. Specific clusters come
// first; broad case-category clusters (tax, labor, consumer) come last so an
// overlapping hit resolves to the more specific intent.
var heuristicRules = []heuristicRule{
	{
		intent: IntentSupremeCourtPosition,
		keywords: []string{
			"правова позиція", "правовий висновок",
			"позиція верховного суду", "позиція вс",
			"висновок верховного суду", "висновок великої палати",
		},
		domains:  []string{DomainCourt},
		sections: []SectionType{SectionCourtReasoning},
	},
	{
		intent: IntentProceduralDeadlines,
		keywords: []string{
			"поновлення строку", "пропущений строк", "пропуск строку",
			"процесуальний строк", "процесуальні строки",
			"строк на оскарження", "строк подання",
			"позовна давність", "позовної давності",
		},
		domains:  []string{DomainCourt, DomainNPA},
		sections: []SectionType{SectionCourtReasoning, SectionDecision, SectionLawReferences},
	},
	{
		intent: IntentJurisdictionAndCompetence,
		keywords: []string{
			"підсудність", "підсудності", "юрисдикці",
			"підвідомчість", "компетенція суду", "який суд розглядає",
		},
		domains:  []string{DomainCourt},
		sections: []SectionType{SectionCourtReasoning, SectionDecision},
	},
	{
		intent: IntentEvidenceAndStandards,
		keywords: []string{
			"доказ", "доведення", "стандарт доказування",
			"належність і допустимість", "експертиз",
		},
		domains:  []string{DomainCourt, DomainECHR},
		sections: []SectionType{SectionCourtReasoning},
	},
	{
		intent: IntentInterimMeasures,
		keywords: []string{
			"забезпечення позову", "заходи забезпечення",
			"арешт майна", "арешт коштів",
			"заборона вчиняти", "зустрічне забезпечення",
		},
		domains:  []string{DomainCourt},
		sections: []SectionType{SectionCourtReasoning, SectionDecision},
	},
	{
		intent: IntentAmountsAndCosts,
		keywords: []string{
			"інфляційні втрати", "3% річних", "3 % річних", "три проценти річних",
			"стягнення пені", "розмір неустойки",
			"судовий збір", "судові витрати", "правнича допомога",
			"моральна шкода", "моральної шкоди",
		},
		domains:  []string{DomainCourt, DomainNPA},
		sections: []SectionType{SectionCourtReasoning, SectionDecision, SectionAmounts},
	},
	{
		intent: IntentTwoSidedPractice,
		keywords: []string{
			"суперечлива практика", "неоднакова практика",
			"різні підходи", "розбіжності в практиці",
			"неоднакове застосування", "на користь обох сторін",
		},
		domains:  []string{DomainCourt},
		sections: []SectionType{SectionCourtReasoning},
	},
	{
		intent: IntentParliamentSearch,
		keywords: []string{
			"законопроект", "законопроєкт", "верховна рада", "верховної ради",
			"народний депутат", "народного депутата", "комітет вру",
			"порядок денний", "пленарне засідання",
		},
		domains:  []string{DomainParliament},
		sections: []SectionType{SectionLawReferences},
	},
	{
		intent: IntentRegistrySearch,
		keywords: []string{
			"єдрпоу", "бенефіціар", "кінцевий бенефіціарний власник",
			"статутний капітал", "реєстраційні дані", "витяг з реєстру",
		},
		domains:  []string{DomainRegistry},
		sections: []SectionType{SectionFacts},
	},
	{
		intent: IntentConsumerDispute,
		keywords: []string{
			"захист прав споживачів", "споживач",
			"прострочення поставки", "повернення товару", "неякісний товар",
		},
		domains:  []string{DomainCourt, DomainNPA},
		sections: []SectionType{SectionCourtReasoning, SectionDecision},
	},
	{
		intent: IntentTaxDispute,
		keywords: []string{
			"податков", "податкове повідомлення-рішення", "ппр",
			"дпс", "митниц", "донарахування",
		},
		domains:  []string{DomainCourt, DomainNPA},
		sections: []SectionType{SectionCourtReasoning, SectionDecision},
	},
	{
		intent: IntentLaborDispute,
		keywords: []string{
			"звільнення", "поновлення на роботі", "трудов",
			"заробітна плата", "заробітної плати", "вихідна допомога",
		},
		domains:  []string{DomainCourt, DomainECHR},
		sections: []SectionType{SectionCourtReasoning, SectionDecision},
	},
}

// ClassifyQuick is the deterministic, network-free classifier and the
// guaranteed fallback for the model-assisted path. It never fails: any input
// yields a well-formed Intent with non-empty sections and domains.
func ClassifyQuick(query string) Intent {
	lowered := strings.ToLower(query)

	out := Intent{
		Intent:          IntentGeneralSearch,
		Confidence:      HeuristicConfidence,
		Domains:         DefaultDomains(),
		Sections:        DefaultSections(),
		ReasoningBudget: BudgetQuick,
	}

	for _, rule := range heuristicRules {
		if containsAny(lowered, rule.keywords) {
			out.Intent = rule.intent
			out.Domains = append([]string(nil), rule.domains...)
			out.Sections = append([]SectionType(nil), rule.sections...)
			break
		}
	}

	if slots := extractSlots(lowered); !slots.Empty() {
		out.Slots = &slots
	}

	return out
}

// procedureCodes maps lowercase procedure-code markers to canonical codes.
// Longer markers come first so "кас україни" is not shadowed.
var procedureCodes = []struct {
	marker string
	code   string
}{
	{"кодекс адміністративного судочинства", "КАС"},
	{"кас україни", "КАС"},
	{"купап", "КУпАП"},
	{"цпк", "ЦПК"},
	{"гпк", "ГПК"},
	{"кпк", "КПК"},
}

var desiredOutputs = []struct {
	marker string
	output string
}{
	{"у вигляді тез", OutputThesis},
	{"тези", OutputThesis},
	{"чек-лист", OutputChecklist},
	{"чекліст", OutputChecklist},
	{"покроков", OutputChecklist},
	{"алгоритм дій", OutputChecklist},
	{"таблиц", OutputTable},
	{"добірк", OutputCollection},
	{"підбірк", OutputCollection},
	{"порівня", OutputComparison},
}

// extractSlots scans a lowercase query for slot markers. Runs independently
// of intent matching, so a tax question still yields its court-level slot.
func extractSlots(lowered string) Slots {
	var slots Slots

	for _, pc := range procedureCodes {
		if strings.Contains(lowered, pc.marker) {
			slots.ProcedureCode = pc.code
			break
		}
	}

	if level, ok := NormalizeCourtLevel(lowered); ok {
		slots.CourtLevel = level
	}

	for _, do := range desiredOutputs {
		if strings.Contains(lowered, do.marker) {
			slots.DesiredOutput = do.output
			break
		}
	}

	money := MoneyTerms{
		Penalty:      containsAny(lowered, []string{"пеня", "пені", "пеню", "неустойк", "штраф"}),
		Inflation:    strings.Contains(lowered, "інфляційн"),
		ThreePercent: containsAny(lowered, []string{"3% річних", "3 % річних", "три проценти річних", "трьох процентів річних"}),
		LegalFees:    containsAny(lowered, []string{"судовий збір", "судового збору", "судові витрати", "правнича допомога", "правничу допомогу"}),
	}
	if !money.Empty() {
		slots.MoneyTerms = &money
	}

	return slots
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
