package intent

// Budget is the caller-chosen effort tier, trading latency/cost for
// classification quality.
type Budget string

const (
	BudgetQuick    Budget = "quick"
	BudgetStandard Budget = "standard"
	BudgetDeep     Budget = "deep"
)

// SectionType is a closed category of document content used to scope what
// should be extracted from a found document.
type SectionType string

const (
	SectionFacts          SectionType = "FACTS"
	SectionClaims         SectionType = "CLAIMS"
	SectionCourtReasoning SectionType = "COURT_REASONING"
	SectionDecision       SectionType = "DECISION"
	SectionLawReferences  SectionType = "LAW_REFERENCES"
	SectionAmounts        SectionType = "AMOUNTS"
)

// Knowledge domains a query can be routed to. The Domains field of an Intent
// stays []string so forward-compatible values from the model survive routing.
const (
	DomainCourt      = "court"
	DomainNPA        = "npa"
	DomainECHR       = "echr"
	DomainParliament = "parliament"
	DomainRegistry   = "registry"
)

// Canonical court levels for the court_level slot.
const (
	CourtLevelFirstInstance = "first_instance"
	CourtLevelAppeal        = "appeal"
	CourtLevelCassation     = "cassation"
	CourtLevelSC            = "SC"
	CourtLevelGrandChamber  = "GrandChamber"
)

// Desired output shapes for the desired_output slot.
const (
	OutputThesis     = "thesis"
	OutputChecklist  = "checklist"
	OutputTable      = "table"
	OutputCollection = "collection"
	OutputComparison = "comparison"
)

// Known intent names. The model may invent names outside this set; unknown
// names are legal and fall back to generic routing.
const (
	IntentGeneralSearch            = "general_search"
	IntentTaxDispute               = "tax_dispute"
	IntentLaborDispute             = "labor_dispute"
	IntentConsumerDispute          = "consumer_dispute"
	IntentSupremeCourtPosition     = "supreme_court_position"
	IntentProceduralDeadlines      = "procedural_deadlines"
	IntentJurisdictionAndCompetence = "jurisdiction_and_competence"
	IntentEvidenceAndStandards     = "evidence_and_standards"
	IntentInterimMeasures          = "interim_measures"
	IntentAmountsAndCosts          = "amounts_and_costs"
	IntentTwoSidedPractice         = "two_sided_practice"
	IntentParliamentSearch         = "parliament_search"
	IntentRegistrySearch           = "registry_search"
)

// TimeRange bounds a query to a publication period. Dates are ISO-8601
// (YYYY-MM-DD) strings as they travel to the search backends unchanged.
type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MoneyTerms flags the monetary claim components mentioned in the query.
// Each flag is independent; several may be set at once.
type MoneyTerms struct {
	Penalty      bool `json:"penalty,omitempty"`
	Inflation    bool `json:"inflation,omitempty"`
	ThreePercent bool `json:"three_percent,omitempty"`
	LegalFees    bool `json:"legal_fees,omitempty"`
}

// Empty reports whether no money-term flag is asserted.
func (m MoneyTerms) Empty() bool {
	return !m.Penalty && !m.Inflation && !m.ThreePercent && !m.LegalFees
}

// Slots is the optional bag of structured attributes extracted from a query.
type Slots struct {
	ProcedureCode string        `json:"procedure_code,omitempty"`
	CourtLevel    string        `json:"court_level,omitempty"`
	CaseCategory  string        `json:"case_category,omitempty"`
	LawArticle    string        `json:"law_article,omitempty"`
	SectionFocus  []SectionType `json:"section_focus,omitempty"`
	MoneyTerms    *MoneyTerms   `json:"money_terms,omitempty"`
	DesiredOutput string        `json:"desired_output,omitempty"`
}

// Empty reports whether no slot field is populated.
func (s Slots) Empty() bool {
	return s.ProcedureCode == "" &&
		s.CourtLevel == "" &&
		s.CaseCategory == "" &&
		s.LawArticle == "" &&
		len(s.SectionFocus) == 0 &&
		(s.MoneyTerms == nil || s.MoneyTerms.Empty()) &&
		s.DesiredOutput == ""
}

// Intent is the structured interpretation of a user's free-text legal
// question. It is immutable once sanitized: constructed per query, passed
// through exactly one classifier and the sanitizer, then consumed by the
// router/builder/optimizer.
type Intent struct {
	Intent           string        `json:"intent"`
	Confidence       float64       `json:"confidence"`
	Domains          []string      `json:"domains"`
	RequiredEntities []string      `json:"required_entities,omitempty"`
	Sections         []SectionType `json:"sections"`
	TimeRange        *TimeRange    `json:"time_range,omitempty"`
	ReasoningBudget  Budget        `json:"reasoning_budget"`
	Slots            *Slots        `json:"slots,omitempty"`
}

// DefaultSections is the substitute used whenever a sections list is empty or
// entirely invalid after normalization.
func DefaultSections() []SectionType {
	return []SectionType{SectionCourtReasoning, SectionDecision}
}

// DefaultDomains is the substitute used when no domain signal is present.
func DefaultDomains() []string {
	return []string{DomainCourt}
}
