package search

// Query DSL field and operator names.
const (
	FieldDatePubl = "date_publ"
	OpGTE         = "$gte"
	OpLTE         = "$lte"
	OrderDesc     = "desc"
)

// DefaultLimit is the page size used when the caller does not override it.
const DefaultLimit = 50

// optimizeSystemPrompt compresses a verbose question into a short keyword
// query for full-text search backends.
const optimizeSystemPrompt = `You compress verbose legal questions into short keyword queries for a full-text search engine.

RULES:
1. Strip interrogative and filler words (яка, який, чи, щодо, how, what, ...).
2. Keep legal terms, entity names, article numbers, and amounts.
3. Return at most 15 keywords.
4. Respond with JSON: {"search_query": "..."}

EXAMPLES:
Q: Яка позиція Верховного Суду щодо поновлення строку на апеляційне оскарження?
A: {"search_query": "поновлення строку апеляційне оскарження Верховний Суд"}

Q: Чи можна стягнути пеню та 3% річних одночасно за прострочення грошового зобов'язання?
A: {"search_query": "пеня 3% річних прострочення грошового зобов'язання одночасне стягнення"}

Q: What is the limitation period for labor disputes about unpaid wages?
A: {"search_query": "limitation period labor dispute unpaid wages"}

Now compress the following question:`

func buildOptimizePrompt(userQuery string) string {
	return optimizeSystemPrompt + "\n" + userQuery
}
