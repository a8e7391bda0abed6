package search

// WhereClause is a single filter condition in the domain-query DSL understood
// by the downstream source adapters.
type WhereClause struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// QueryMeta carries the non-filter parts of a query: free-text search, entity
// hints, and sort order.
type QueryMeta struct {
	Search         string            `json:"search,omitempty"`
	SearchEntities []string          `json:"search_entities,omitempty"`
	Order          map[string]string `json:"order"`
}

// QueryParams is the ready-to-dispatch query for one endpoint. Limit and
// Offset carry defaults the caller may override before dispatch.
type QueryParams struct {
	Where  []WhereClause `json:"where,omitempty"`
	Meta   QueryMeta     `json:"meta"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}
