package search

import "legal-research-assistant/internal/intent"

// Build turns an Intent plus an optional free-text search string into
// domain-query parameters. Pure: the same Intent always yields the same
// params, and limit/offset overrides are the caller's business.
func Build(it intent.Intent, searchText string) QueryParams {
	params := QueryParams{
		Meta: QueryMeta{
			Order: map[string]string{FieldDatePubl: OrderDesc},
		},
		Limit:  DefaultLimit,
		Offset: 0,
	}

	if searchText != "" {
		params.Meta.Search = searchText
	}

	if it.TimeRange != nil {
		params.Where = append(params.Where,
			WhereClause{Field: FieldDatePubl, Operator: OpGTE, Value: it.TimeRange.From},
			WhereClause{Field: FieldDatePubl, Operator: OpLTE, Value: it.TimeRange.To},
		)
	}

	if len(it.RequiredEntities) > 0 {
		params.Meta.SearchEntities = append([]string(nil), it.RequiredEntities...)
	}

	return params
}
