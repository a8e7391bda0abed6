package intent

// Fixed confidence constants. These are configuration values, not tunables:
// the heuristic path always reports 0.6, and a model response that omits
// confidence defaults to 0.7.
const (
	HeuristicConfidence    = 0.6
	ModelDefaultConfidence = 0.7
)

// FormatHintJSON tells the completion service the expected response shape.
const FormatHintJSON = "json_object"

// classifySystemPrompt instructs the model to return one JSON object with the
// Intent schema. Vocabularies here must stay in sync with the constants in
// types.go.
const classifySystemPrompt = `You are a legal query classifier for a Ukrainian legal research system.
Analyze the user's question and return ONE JSON object. No markdown, no code blocks, no explanation text.

Schema:
{
  "intent": "general_search|tax_dispute|labor_dispute|consumer_dispute|supreme_court_position|procedural_deadlines|jurisdiction_and_competence|evidence_and_standards|interim_measures|amounts_and_costs|two_sided_practice|parliament_search|registry_search",
  "confidence": 0.0-1.0,
  "domains": ["court"|"npa"|"echr"|"parliament"|"registry", ...],
  "required_entities": ["law_article", "seller", ...],
  "sections": ["FACTS"|"CLAIMS"|"COURT_REASONING"|"DECISION"|"LAW_REFERENCES"|"AMOUNTS", ...],
  "time_range": {"from": "YYYY-MM-DD", "to": "YYYY-MM-DD"},
  "reasoning_budget": "quick|standard|deep",
  "slots": {
    "procedure_code": "ЦПК|ГПК|КАС|КПК|КУпАП",
    "court_level": "first_instance|appeal|cassation|SC|GrandChamber",
    "case_category": "...",
    "law_article": "...",
    "section_focus": ["COURT_REASONING", ...],
    "money_terms": {"penalty": true, "inflation": true, "three_percent": true, "legal_fees": true},
    "desired_output": "thesis|checklist|table|collection|comparison"
  }
}

RULES:
1. "domains" must be ordered by relevance and non-empty.
2. "sections" describes what to extract from found documents; default to ["COURT_REASONING","DECISION"].
3. Omit "time_range" and "slots" entirely when the query gives no signal for them.
4. In "money_terms" include only the flags that are asserted.
5. Return ONLY the JSON object.

Question:`

// BuildClassifyPrompt builds the structured-extraction prompt for a query.
func BuildClassifyPrompt(query string) string {
	return classifySystemPrompt + "\n" + query
}
